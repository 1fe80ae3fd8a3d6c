package rosio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/apogee-robotics/seeker/internal/rosmsg/sensor_msgs"
	"github.com/apogee-robotics/seeker/internal/seeker"
)

// DecodeCloud converts a sensor_msgs/PointCloud2 into the depth scanner's
// point grid. The cloud must carry little-endian float32 x/y/z fields.
// Truncated data is tolerated: the returned grid simply holds fewer points
// than width*height, and lookups past the end report absence.
func DecodeCloud(msg *sensor_msgs.PointCloud2) (*seeker.PointGrid, error) {
	if msg.IsBigendian {
		return nil, fmt.Errorf("big-endian point clouds are not supported")
	}

	xOff, yOff, zOff := -1, -1, -1
	for _, f := range msg.Fields {
		if f.Datatype != sensor_msgs.FLOAT32 {
			continue
		}
		switch f.Name {
		case "x":
			xOff = int(f.Offset)
		case "y":
			yOff = int(f.Offset)
		case "z":
			zOff = int(f.Offset)
		}
	}
	if xOff < 0 || yOff < 0 || zOff < 0 {
		return nil, fmt.Errorf("cloud is missing float32 x/y/z fields")
	}

	width := int(msg.Width)
	height := int(msg.Height)
	step := int(msg.PointStep)
	if width < 1 || height < 1 || step < 1 {
		return nil, fmt.Errorf("invalid cloud geometry: %dx%d step=%d", width, height, step)
	}
	if xOff+4 > step || yOff+4 > step || zOff+4 > step {
		return nil, fmt.Errorf("field offsets exceed point_step %d", step)
	}
	rowStep := int(msg.RowStep)
	if rowStep == 0 {
		rowStep = width * step
	}

	grid := &seeker.PointGrid{
		Width:  width,
		Height: height,
		Points: make([]seeker.Point3, 0, width*height),
	}
	for row := 0; row < height; row++ {
		base := row * rowStep
		for col := 0; col < width; col++ {
			off := base + col*step
			if off+step > len(msg.Data) {
				return grid, nil
			}
			grid.Points = append(grid.Points, seeker.Point3{
				X: float32At(msg.Data, off+xOff),
				Y: float32At(msg.Data, off+yOff),
				Z: float32At(msg.Data, off+zOff),
			})
		}
	}
	return grid, nil
}

func float32At(data []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
}
