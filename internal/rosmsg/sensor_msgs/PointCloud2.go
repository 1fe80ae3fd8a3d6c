// Package sensor_msgs is automatically generated from the message definition "sensor_msgs/PointCloud2.msg"
package sensor_msgs

import (
	"bytes"
	"encoding/binary"

	"github.com/akio/rosgo/ros"

	"github.com/apogee-robotics/seeker/internal/rosmsg/std_msgs"
)

type _MsgPointCloud2 struct {
	text   string
	name   string
	md5sum string
}

func (t *_MsgPointCloud2) Text() string {
	return t.text
}

func (t *_MsgPointCloud2) Name() string {
	return t.name
}

func (t *_MsgPointCloud2) MD5Sum() string {
	return t.md5sum
}

func (t *_MsgPointCloud2) NewMessage() ros.Message {
	m := new(PointCloud2)
	m.Header = std_msgs.Header{}
	m.Height = 0
	m.Width = 0
	m.Fields = []PointField{}
	m.IsBigendian = false
	m.PointStep = 0
	m.RowStep = 0
	m.Data = []uint8{}
	m.IsDense = false
	return m
}

var (
	MsgPointCloud2 = &_MsgPointCloud2{
		`Header header
uint32 height
uint32 width
PointField[] fields
bool    is_bigendian
uint32  point_step
uint32  row_step
uint8[] data
bool is_dense
`,
		"sensor_msgs/PointCloud2",
		"1158d486dd51d683ce2f1be655c3c181",
	}
)

type PointCloud2 struct {
	Header      std_msgs.Header `rosmsg:"header:Header"`
	Height      uint32          `rosmsg:"height:uint32"`
	Width       uint32          `rosmsg:"width:uint32"`
	Fields      []PointField    `rosmsg:"fields:PointField[]"`
	IsBigendian bool            `rosmsg:"is_bigendian:bool"`
	PointStep   uint32          `rosmsg:"point_step:uint32"`
	RowStep     uint32          `rosmsg:"row_step:uint32"`
	Data        []uint8         `rosmsg:"data:uint8[]"`
	IsDense     bool            `rosmsg:"is_dense:bool"`
}

func (m *PointCloud2) Type() ros.MessageType {
	return MsgPointCloud2
}

func (m *PointCloud2) Serialize(buf *bytes.Buffer) error {
	var err error = nil
	if err = m.Header.Serialize(buf); err != nil {
		return err
	}
	binary.Write(buf, binary.LittleEndian, m.Height)
	binary.Write(buf, binary.LittleEndian, m.Width)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Fields)))
	for _, e := range m.Fields {
		if err = e.Serialize(buf); err != nil {
			return err
		}
	}
	binary.Write(buf, binary.LittleEndian, m.IsBigendian)
	binary.Write(buf, binary.LittleEndian, m.PointStep)
	binary.Write(buf, binary.LittleEndian, m.RowStep)
	binary.Write(buf, binary.LittleEndian, uint32(len(m.Data)))
	for _, e := range m.Data {
		binary.Write(buf, binary.LittleEndian, e)
	}
	binary.Write(buf, binary.LittleEndian, m.IsDense)
	return err
}

func (m *PointCloud2) Deserialize(buf *bytes.Reader) error {
	var err error = nil
	if err = m.Header.Deserialize(buf); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Height); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.Width); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Fields = make([]PointField, int(size))
		for i := 0; i < int(size); i++ {
			if err = m.Fields[i].Deserialize(buf); err != nil {
				return err
			}
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.IsBigendian); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.PointStep); err != nil {
		return err
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.RowStep); err != nil {
		return err
	}
	{
		var size uint32
		if err = binary.Read(buf, binary.LittleEndian, &size); err != nil {
			return err
		}
		m.Data = make([]uint8, int(size))
		if err = binary.Read(buf, binary.LittleEndian, m.Data); err != nil {
			return err
		}
	}
	if err = binary.Read(buf, binary.LittleEndian, &m.IsDense); err != nil {
		return err
	}
	return err
}
