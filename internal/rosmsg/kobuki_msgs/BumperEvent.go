// Package kobuki_msgs is automatically generated from the message definition "kobuki_msgs/BumperEvent.msg"
package kobuki_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

const (
	LEFT     uint8 = 0
	CENTER   uint8 = 1
	RIGHT    uint8 = 2
	RELEASED uint8 = 0
	PRESSED  uint8 = 1
)

type _MsgBumperEvent struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgBumperEvent) Text() string {
	return t.text
}

func (t *_MsgBumperEvent) Name() string {
	return t.name
}

func (t *_MsgBumperEvent) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgBumperEvent) NewMessage() ros.Message {
	m := new(BumperEvent)
	m.Bumper = 0
	m.State = 0
	return m
}

var (
	MsgBumperEvent = &_MsgBumperEvent{
		`uint8 LEFT   = 0
uint8 CENTER = 1
uint8 RIGHT  = 2
uint8 RELEASED = 0
uint8 PRESSED  = 1
uint8 bumper
uint8 state
`,
		"kobuki_msgs/BumperEvent",
		"ffe360cd50f14f9251d9844083e72ac5",
	}
)

type BumperEvent struct {
	Bumper uint8 `rosmsg:"bumper:uint8"`
	State  uint8 `rosmsg:"state:uint8"`
}

func (m *BumperEvent) Type() ros.MessageType {
	return MsgBumperEvent
}

func (m *BumperEvent) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, m.Bumper)
	binary.Write(buf, binary.LittleEndian, m.State)
	return err
}

func (m *BumperEvent) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = binary.Read(buf, binary.LittleEndian, &m.Bumper); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.State); err != nil {
		return err
	}
	return err
}
