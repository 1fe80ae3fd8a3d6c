package seeker

import (
	"math"
	"testing"
)

func sigBlob(sig ColorSignature, x float64, area int) BlobDetection {
	return BlobDetection{Red: sig.Red, Green: sig.Green, Blue: sig.Blue, X: x, Y: 100, Area: area}
}

func TestProcessFrameAggregatesMatchingBlobs(t *testing.T) {
	cfg := DefaultConfig()
	core := NewRobotCore()
	agg := NewBlobAggregator(cfg, core)
	sig := cfg.Signatures[cfg.ActiveSignature]

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{
		sigBlob(sig, 400, 2000),
		sigBlob(sig, 440, 2000),
	}})

	p := core.Snapshot()
	if !p.GoalFound {
		t.Fatal("expected goal found for area above bound")
	}
	if p.BlobArea != 4000 {
		t.Errorf("BlobArea = %d, want 4000", p.BlobArea)
	}
	// Area-weighted mean column 420, shifted to image-center coordinates.
	want := (400.0*2000+440.0*2000)/4000 - float64(cfg.ImageWidth)/2
	if math.Abs(p.CentroidX-want) > 1e-9 {
		t.Errorf("CentroidX = %v, want %v", p.CentroidX, want)
	}
}

func TestProcessFrameIgnoresOtherSignatures(t *testing.T) {
	cfg := DefaultConfig()
	core := NewRobotCore()
	agg := NewBlobAggregator(cfg, core)
	active := cfg.Signatures[cfg.ActiveSignature]
	other := cfg.Signatures[0]

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{
		sigBlob(other, 100, 50000),
		sigBlob(active, 320, 2000),
	}})

	p := core.Snapshot()
	if p.GoalFound {
		t.Error("foreign-signature area should not count toward the goal")
	}
	if p.BlobArea != 2000 {
		t.Errorf("BlobArea = %d, want 2000", p.BlobArea)
	}
}

func TestProcessFrameAreaBoundIsExclusive(t *testing.T) {
	cfg := DefaultConfig()
	core := NewRobotCore()
	agg := NewBlobAggregator(cfg, core)
	sig := cfg.Signatures[cfg.ActiveSignature]

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{sigBlob(sig, 320, cfg.GoalAreaBound)}})
	if core.Snapshot().GoalFound {
		t.Error("area equal to the bound should not count as found")
	}

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{sigBlob(sig, 320, cfg.GoalAreaBound + 1)}})
	if !core.Snapshot().GoalFound {
		t.Error("area one above the bound should count as found")
	}
}

func TestProcessFrameEmptyFrameChangesNothing(t *testing.T) {
	cfg := DefaultConfig()
	core := NewRobotCore()
	agg := NewBlobAggregator(cfg, core)
	sig := cfg.Signatures[cfg.ActiveSignature]

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{sigBlob(sig, 400, 5000)}})
	before := core.Snapshot()

	agg.ProcessFrame(BlobFrame{})

	after := core.Snapshot()
	if after.GoalFound != before.GoalFound || after.BlobArea != before.BlobArea || after.CentroidX != before.CentroidX {
		t.Errorf("empty frame mutated perception: before=%+v after=%+v", before, after)
	}
}

func TestProcessFrameGoalLossKeepsCentroid(t *testing.T) {
	cfg := DefaultConfig()
	core := NewRobotCore()
	agg := NewBlobAggregator(cfg, core)
	sig := cfg.Signatures[cfg.ActiveSignature]

	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{sigBlob(sig, 400, 5000)}})
	centroid := core.Snapshot().CentroidX

	// A populated frame with no matching blobs demotes the goal but the
	// last centroid stays readable.
	agg.ProcessFrame(BlobFrame{Blobs: []BlobDetection{sigBlob(cfg.Signatures[0], 100, 5000)}})

	p := core.Snapshot()
	if p.GoalFound {
		t.Error("goal should be lost")
	}
	if p.BlobArea != 0 {
		t.Errorf("BlobArea = %d, want 0", p.BlobArea)
	}
	if p.CentroidX != centroid {
		t.Errorf("CentroidX = %v, want stale value %v", p.CentroidX, centroid)
	}
}
