// Command seeksim drives the seeker controller through a scripted sensor
// scenario on a mock clock: search, sight the goal, hit an obstacle, escape
// off the bumper, and finally arrive. No ROS master is needed, so it doubles
// as a smoke test for the full decision loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	_ "modernc.org/sqlite"

	"github.com/apogee-robotics/seeker/internal/seeker"
	"github.com/apogee-robotics/seeker/internal/telemetry"
	"github.com/apogee-robotics/seeker/internal/timeutil"
)

var (
	dbFile  = flag.String("db", "", "Record the run to this telemetry database")
	verbose = flag.Bool("v", false, "Print every velocity command, not just state changes")
)

// printSink logs commands as the controller emits them.
type printSink struct {
	count int
}

func (s *printSink) Send(cmd seeker.VelocityCommand) {
	s.count++
	if *verbose {
		log.Printf("  cmd linear=%+.3f angular=%+.3f", cmd.Linear, cmd.Angular)
	}
}

// sim couples the controller to a mock clock so a tick and its time step
// always move together.
type sim struct {
	cfg        seeker.Config
	clock      *timeutil.MockClock
	controller *seeker.Controller
}

// tick advances time by one control interval and evaluates one cycle.
func (s *sim) tick() {
	s.clock.Advance(s.cfg.TickInterval)
	s.controller.Tick()
}

// run ticks n times, reporting state changes as they happen.
func (s *sim) run(n int) {
	state := s.controller.State()
	for i := 0; i < n; i++ {
		s.tick()
		if next := s.controller.State(); next != state {
			log.Printf("state %s -> %s after %d ticks", state, next, i+1)
			state = next
		}
	}
}

// goalFrame builds a blob frame for the active signature with the given
// total area, centered at pixel x.
func (s *sim) goalFrame(area int, x float64) *seeker.BlobFrame {
	sig := s.cfg.Signatures[s.cfg.ActiveSignature]
	return &seeker.BlobFrame{Blobs: []seeker.BlobDetection{
		{Red: sig.Red, Green: sig.Green, Blue: sig.Blue, X: x, Y: 240, Area: area},
	}}
}

// cloud builds a full-size depth grid. With near set, every point in the
// scan band sits closer than the near-range bound.
func (s *sim) cloud(near bool) *seeker.PointGrid {
	z := float32(math.NaN())
	if near {
		z = float32(s.cfg.NearRangeMeters) / 2
	}
	g := &seeker.PointGrid{
		Width:  s.cfg.ImageWidth,
		Height: s.cfg.ImageHeight,
		Points: make([]seeker.Point3, s.cfg.ImageWidth*s.cfg.ImageHeight),
	}
	for i := range g.Points {
		g.Points[i] = seeker.Point3{Z: z}
	}
	return g
}

func main() {
	flag.Parse()

	cfg := seeker.DefaultConfig()
	clock := timeutil.NewMockClock(time.Now())
	sink := &printSink{}

	opts := seeker.ControllerOptions{Clock: clock}
	var store *telemetry.Store
	if *dbFile != "" {
		var err error
		store, err = telemetry.Open(*dbFile)
		if err != nil {
			log.Fatalf("failed to open telemetry store: %v", err)
		}
		defer store.Close()
		opts.Recorder = store
		log.Printf("recording run %s to %s", store.RunID(), *dbFile)
	}

	controller := seeker.NewController(cfg, sink, opts)
	s := &sim{cfg: cfg, clock: clock, controller: controller}
	inbox := controller.Inbox()

	log.Print("scenario: empty field, nothing to see")
	s.run(10)

	log.Print("scenario: goal enters the frame off to the right")
	inbox.PutBlobs(s.goalFrame(2*cfg.GoalAreaBound, 500))
	s.run(5)

	log.Print("scenario: goal drifts toward center while the robot closes in")
	inbox.PutBlobs(s.goalFrame(4*cfg.GoalAreaBound, 340))
	s.run(5)

	log.Print("scenario: obstacle fills the depth scan band")
	inbox.PutCloud(s.cloud(true))
	s.run(3)

	log.Print("scenario: bumper press")
	inbox.PutContact(&seeker.ContactEvent{Pressed: true, Location: seeker.BumperCenter})
	s.run(2)
	inbox.PutContact(&seeker.ContactEvent{Pressed: false, Location: seeker.BumperCenter})

	escapeTicks := int((cfg.RetreatDuration + cfg.RotateDuration + cfg.AdvanceDuration) / cfg.TickInterval)
	log.Printf("scenario: riding out the escape maneuver (%d ticks)", escapeTicks)
	s.run(escapeTicks + 2)

	log.Print("scenario: goal reacquired, large and dead ahead")
	inbox.PutBlobs(s.goalFrame(cfg.ArrivalArea()+1, float64(cfg.ImageWidth)/2))
	s.run(2)
	inbox.PutCloud(s.cloud(true))
	s.run(3)

	final := controller.State()
	log.Printf("final state: %s after %d commands", final, sink.count)
	if final != seeker.StateArrived {
		log.Fatal("scenario did not reach arrival")
	}

	if store != nil {
		transitions, err := store.ListTransitions(0)
		if err != nil {
			log.Fatalf("failed to read transitions: %v", err)
		}
		counts, err := store.CountCommands()
		if err != nil {
			log.Fatalf("failed to count commands: %v", err)
		}
		fmt.Println("\ntransitions:")
		for _, tr := range transitions {
			fmt.Printf("  %s -> %s (%s)\n", tr.From, tr.To, tr.Reason)
		}
		fmt.Println("commands by intent:")
		for intent, n := range counts {
			fmt.Printf("  %-8s %d\n", intent, n)
		}
	}
}
