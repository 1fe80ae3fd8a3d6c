package seeker

import "testing"

func TestRobotCoreGoalLossKeepsCentroid(t *testing.T) {
	core := NewRobotCore()
	core.SetGoalSeen(-42.5, 5000)
	core.SetGoalLost(0)

	p := core.Snapshot()
	if p.GoalFound {
		t.Error("goal should be lost")
	}
	if p.CentroidX != -42.5 {
		t.Errorf("CentroidX = %v, want stale -42.5", p.CentroidX)
	}
}

func TestRobotCoreDepthVerdictRespectsLatch(t *testing.T) {
	core := NewRobotCore()

	core.ApplyDepthVerdict(true)
	if !core.Snapshot().ObstacleFound {
		t.Fatal("obstructed verdict should raise the flag")
	}
	core.ApplyDepthVerdict(false)
	if core.Snapshot().ObstacleFound {
		t.Fatal("clear verdict should retire the flag")
	}

	core.PressBumper(BumperCenter)
	core.ApplyDepthVerdict(false)
	if !core.Snapshot().ObstacleFound {
		t.Error("clear verdict must not retire the flag while the bumper is latched")
	}

	core.ReleaseBumper()
	core.ApplyDepthVerdict(false)
	if core.Snapshot().ObstacleFound {
		t.Error("clear verdict should retire the flag once the latch is gone")
	}
}

func TestInboxOverwritesPerSensor(t *testing.T) {
	in := NewInbox()

	in.PutBlobs(&BlobFrame{Blobs: []BlobDetection{{Area: 1}}})
	in.PutBlobs(&BlobFrame{Blobs: []BlobDetection{{Area: 2}}})

	f := in.TakeBlobs()
	if f == nil || f.Blobs[0].Area != 2 {
		t.Errorf("TakeBlobs = %+v, want the newest frame", f)
	}
	if in.TakeBlobs() != nil {
		t.Error("second take should return nil")
	}
}

func TestInboxSensorSlotsAreIndependent(t *testing.T) {
	in := NewInbox()

	in.PutCloud(&PointGrid{Width: 1, Height: 1, Points: make([]Point3, 1)})
	in.PutContact(&ContactEvent{Pressed: true})

	if in.TakeBlobs() != nil {
		t.Error("blob slot should be empty")
	}
	if in.TakeCloud() == nil {
		t.Error("cloud slot should hold the delivery")
	}
	if ev := in.TakeContact(); ev == nil || !ev.Pressed {
		t.Errorf("TakeContact = %+v", ev)
	}
}
