// Package cmvision is automatically generated from the message definition "cmvision/Blobs.msg"
package cmvision

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"

	"github.com/apogee-robotics/seeker/internal/rosmsg/std_msgs"
)

type _MsgBlobs struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgBlobs) Text() string {
	return t.text
}

func (t *_MsgBlobs) Name() string {
	return t.name
}

func (t *_MsgBlobs) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgBlobs) NewMessage() ros.Message {
	m := new(Blobs)
	m.Header = std_msgs.Header{}
	m.ImageWidth = 0
	m.ImageHeight = 0
	m.BlobCount = 0
	m.Blobs = []Blob{}
	return m
}

var (
	MsgBlobs = &_MsgBlobs{
		`Header header
uint32 image_width
uint32 image_height
uint32 blob_count
Blob[] blobs
`,
		"cmvision/Blobs",
		"9095431d60142fc813f87d8cc9018af4",
	}
)

type Blobs struct {
	Header      std_msgs.Header `rosmsg:"header:Header"`
	ImageWidth  uint32          `rosmsg:"image_width:uint32"`
	ImageHeight uint32          `rosmsg:"image_height:uint32"`
	BlobCount   uint32          `rosmsg:"blob_count:uint32"`
	Blobs       []Blob          `rosmsg:"blobs:Blob[]"`
}

func (m *Blobs) Type() ros.MessageType {
	return MsgBlobs
}

func (m *Blobs) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.ImageWidth)
	binary.Write(buf, binary.LittleEndian, m.ImageHeight)
	binary.Write(buf, binary.LittleEndian, m.BlobCount)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Blobs)))
	for _, e := range m.Blobs {
		if err = e.Serialize(buf); err != nil {
			return err
		}
	}
	return err
}

func (m *Blobs) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.ImageWidth); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.ImageHeight); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.BlobCount); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Blobs = make([]Blob, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Blobs[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	return err
}
