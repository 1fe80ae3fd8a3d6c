// Package cmvision is automatically generated from the message definition "cmvision/Blob.msg"
package cmvision

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"
)

type _MsgBlob struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgBlob) Text() string {
	return t.text
}

func (t *_MsgBlob) Name() string {
	return t.name
}

func (t *_MsgBlob) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgBlob) NewMessage() ros.Message {
	m := new(Blob)
	m.Name = ""
	m.Red = 0
	m.Green = 0
	m.Blue = 0
	m.Area = 0
	m.X = 0
	m.Y = 0
	m.Left = 0
	m.Right = 0
	m.Top = 0
	m.Bottom = 0
	return m
}

var (
	MsgBlob = &_MsgBlob{
		`string name
uint32 red
uint32 green
uint32 blue
uint32 area
uint32 x
uint32 y
uint32 left
uint32 right
uint32 top
uint32 bottom
`,
		"cmvision/Blob",
		"4b9d58fede89a6e254c678818159f6c9",
	}
)

type Blob struct {
	Name   string `rosmsg:"name:string"`
	Red    uint32 `rosmsg:"red:uint32"`
	Green  uint32 `rosmsg:"green:uint32"`
	Blue   uint32 `rosmsg:"blue:uint32"`
	Area   uint32 `rosmsg:"area:uint32"`
	X      uint32 `rosmsg:"x:uint32"`
	Y      uint32 `rosmsg:"y:uint32"`
	Left   uint32 `rosmsg:"left:uint32"`
	Right  uint32 `rosmsg:"right:uint32"`
	Top    uint32 `rosmsg:"top:uint32"`
	Bottom uint32 `rosmsg:"bottom:uint32"`
}

func (m *Blob) Type() ros.MessageType {
	return MsgBlob
}

func (m *Blob) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	binary.Write(buf, binary.LittleEndian, uint32(len([]byte(m.Name))))
	buf.Write([]byte(m.Name))
	binary.Write(buf, binary.LittleEndian, m.Red)
	binary.Write(buf, binary.LittleEndian, m.Green)
	binary.Write(buf, binary.LittleEndian, m.Blue)
	binary.Write(buf, binary.LittleEndian, m.Area)
	binary.Write(buf, binary.LittleEndian, m.X)
	binary.Write(buf, binary.LittleEndian, m.Y)
	binary.Write(buf, binary.LittleEndian, m.Left)
	binary.Write(buf, binary.LittleEndian, m.Right)
	binary.Write(buf, binary.LittleEndian, m.Top)
	binary.Write(buf, binary.LittleEndian, m.Bottom)
	return err
}

func (m *Blob) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		data := make([]byte, int(size))
		if err = binary.Read(buf, binary.LittleEndian, data); err != nil {
			return err
		}
		m.Name = string(data)
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Red); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Green); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Blue); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Area); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.X); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Y); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Left); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Right); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Top); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Bottom); err != nil {
		return err
	}
	return err
}
