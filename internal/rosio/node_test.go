package rosio

import (
	"testing"

	"github.com/apogee-robotics/seeker/internal/rosmsg/cmvision"
)

func TestConvertBlobs(t *testing.T) {
	msg := &cmvision.Blobs{
		BlobCount: 2,
		Blobs: []cmvision.Blob{
			{Red: 185, Green: 66, Blue: 36, X: 320, Y: 240, Area: 4000},
			{Red: 238, Green: 114, Blue: 76, X: 10, Y: 20, Area: 5},
		},
	}

	f := convertBlobs(msg)
	if len(f.Blobs) != 2 {
		t.Fatalf("got %d blobs, want 2", len(f.Blobs))
	}
	b := f.Blobs[0]
	if b.Red != 185 || b.Green != 66 || b.Blue != 36 {
		t.Errorf("signature = (%d,%d,%d)", b.Red, b.Green, b.Blue)
	}
	if b.X != 320 || b.Y != 240 || b.Area != 4000 {
		t.Errorf("geometry = %+v", b)
	}
}

func TestConvertBlobsEmpty(t *testing.T) {
	if f := convertBlobs(&cmvision.Blobs{}); len(f.Blobs) != 0 {
		t.Errorf("got %d blobs, want 0", len(f.Blobs))
	}
}
