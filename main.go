package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "modernc.org/sqlite"

	"github.com/apogee-robotics/seeker/internal/rosio"
	"github.com/apogee-robotics/seeker/internal/seeker"
	"github.com/apogee-robotics/seeker/internal/telemetry"
	"github.com/apogee-robotics/seeker/internal/version"
)

var (
	configPath = flag.String("config", "", "Path to a JSON tuning file overriding built-in defaults")
	listen     = flag.String("listen", ":8080", "Listen address for the status server")
	dbFile     = flag.String("db", "seeker_telemetry.db", "Telemetry database file (empty disables recording)")
	dryRun     = flag.Bool("dry-run", false, "Log velocity commands instead of publishing them")
	nodeName   = flag.String("node", "/seeker", "ROS node name")
)

// logSink prints commands instead of publishing them. Useful for watching
// the control loop react to live sensor streams without moving the robot.
type logSink struct{}

func (logSink) Send(cmd seeker.VelocityCommand) {
	log.Printf("cmd_vel linear=%.3f angular=%.3f", cmd.Linear, cmd.Angular)
}

func main() {
	flag.Parse()

	if *listen == "" {
		log.Fatal("Listen address is required")
	}
	log.Printf("seeker %s starting", version.String())

	cfg := seeker.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = seeker.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load tuning file: %v", err)
		}
	}

	roscfg := rosio.DefaultConfig()
	roscfg.NodeName = *nodeName
	node, err := rosio.NewNode(roscfg, os.Args)
	if err != nil {
		log.Fatalf("failed to create ros node: %v", err)
	}
	defer node.Shutdown()

	var sink seeker.CommandSink = node
	if *dryRun {
		log.Print("dry run: velocity commands will be logged, not published")
		sink = logSink{}
	}

	opts := seeker.ControllerOptions{}
	if *dbFile != "" {
		store, err := telemetry.Open(*dbFile)
		if err != nil {
			log.Fatalf("failed to open telemetry store: %v", err)
		}
		defer store.Close()
		opts.Recorder = store
		log.Printf("recording telemetry to %s (run %s)", *dbFile, store.RunID())
	}

	controller := seeker.NewController(cfg, sink, opts)
	node.Subscribe(controller.Inbox())

	var wg sync.WaitGroup
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// dispatch subscription callbacks until the node is shut down
	wg.Add(1)
	go func() {
		defer wg.Done()
		node.Spin()
		log.Print("ros dispatch routine terminated")
	}()

	// run the control loop until the context is cancelled
	wg.Add(1)
	go func() {
		defer wg.Done()
		controller.Run(ctx)
		log.Print("control loop terminated")
	}()

	// status server goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		ws := seeker.NewWebServer(*listen, controller)
		if err := ws.Start(ctx); err != nil {
			log.Printf("status server error: %v", err)
		}
		log.Print("status server routine stopped")
	}()

	// Spin blocks until Shutdown, so stop the node once the signal lands
	<-ctx.Done()
	node.Shutdown()

	wg.Wait()
	log.Print("Graceful shutdown complete")
}
