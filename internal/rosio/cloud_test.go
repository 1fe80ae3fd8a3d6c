package rosio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/apogee-robotics/seeker/internal/rosmsg/sensor_msgs"
)

// makeCloud encodes a width*height grid of xyz points where z walks up by
// 0.1 per point, in the standard 16-byte x/y/z/pad layout.
func makeCloud(width, height uint32) *sensor_msgs.PointCloud2 {
	const step = 16
	msg := &sensor_msgs.PointCloud2{
		Height: height,
		Width:  width,
		Fields: []sensor_msgs.PointField{
			{Name: "x", Offset: 0, Datatype: sensor_msgs.FLOAT32, Count: 1},
			{Name: "y", Offset: 4, Datatype: sensor_msgs.FLOAT32, Count: 1},
			{Name: "z", Offset: 8, Datatype: sensor_msgs.FLOAT32, Count: 1},
		},
		PointStep: step,
		RowStep:   width * step,
		Data:      make([]uint8, int(width*height)*step),
	}
	for i := 0; i < int(width*height); i++ {
		off := i * step
		binary.LittleEndian.PutUint32(msg.Data[off:], math.Float32bits(float32(i)))
		binary.LittleEndian.PutUint32(msg.Data[off+4:], math.Float32bits(float32(-i)))
		binary.LittleEndian.PutUint32(msg.Data[off+8:], math.Float32bits(float32(i)*0.1))
	}
	return msg
}

func TestDecodeCloudRoundTrip(t *testing.T) {
	grid, err := DecodeCloud(makeCloud(4, 3))
	if err != nil {
		t.Fatal(err)
	}
	if grid.Width != 4 || grid.Height != 3 {
		t.Fatalf("grid is %dx%d, want 4x3", grid.Width, grid.Height)
	}
	if len(grid.Points) != 12 {
		t.Fatalf("got %d points, want 12", len(grid.Points))
	}

	pt, ok := grid.At(2, 1)
	if !ok {
		t.Fatal("point (2,1) should be present")
	}
	i := float32(2*4 + 1)
	if pt.X != i || pt.Y != -i || pt.Z != i*0.1 {
		t.Errorf("point (2,1) = %+v", pt)
	}
}

func TestDecodeCloudToleratesTruncatedData(t *testing.T) {
	msg := makeCloud(4, 3)
	msg.Data = msg.Data[:len(msg.Data)/2]

	grid, err := DecodeCloud(msg)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid.Points) != 6 {
		t.Fatalf("got %d points, want 6 from half the data", len(grid.Points))
	}
	if _, ok := grid.At(2, 3); ok {
		t.Error("lookup past the truncation should report absence")
	}
}

func TestDecodeCloudDefaultsRowStep(t *testing.T) {
	msg := makeCloud(4, 3)
	msg.RowStep = 0

	grid, err := DecodeCloud(msg)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid.Points) != 12 {
		t.Fatalf("got %d points, want 12", len(grid.Points))
	}
}

func TestDecodeCloudRejectsBadClouds(t *testing.T) {
	bigendian := makeCloud(2, 2)
	bigendian.IsBigendian = true

	missingZ := makeCloud(2, 2)
	missingZ.Fields = missingZ.Fields[:2]

	doubleZ := makeCloud(2, 2)
	doubleZ.Fields[2].Datatype = sensor_msgs.FLOAT64

	zeroStep := makeCloud(2, 2)
	zeroStep.PointStep = 0

	offsetPastStep := makeCloud(2, 2)
	offsetPastStep.Fields[2].Offset = 20

	for name, msg := range map[string]*sensor_msgs.PointCloud2{
		"big endian":       bigendian,
		"missing z":        missingZ,
		"non-float32 z":    doubleZ,
		"zero point step":  zeroStep,
		"offset past step": offsetPastStep,
	} {
		if _, err := DecodeCloud(msg); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}
