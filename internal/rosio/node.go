// Package rosio bridges the seeker core to ROS: subscriptions feed the
// sensor inbox and velocity commands are published as Twist messages.
package rosio

import (
	"fmt"
	"sync"

	"github.com/akio/rosgo/ros"

	"github.com/apogee-robotics/seeker/internal/monitoring"
	"github.com/apogee-robotics/seeker/internal/rosmsg/cmvision"
	"github.com/apogee-robotics/seeker/internal/rosmsg/geometry_msgs"
	"github.com/apogee-robotics/seeker/internal/rosmsg/kobuki_msgs"
	"github.com/apogee-robotics/seeker/internal/rosmsg/sensor_msgs"
	"github.com/apogee-robotics/seeker/internal/seeker"
)

// Config names the ROS connection points for the seeker node.
type Config struct {
	NodeName    string
	BlobsTopic  string
	CloudTopic  string
	BumperTopic string
	CmdVelTopic string
}

// DefaultConfig returns the turtlebot topic layout.
func DefaultConfig() Config {
	return Config{
		NodeName:    "/seeker",
		BlobsTopic:  "/blobs",
		CloudTopic:  "/camera/depth/points",
		BumperTopic: "/mobile_base/events/bumper",
		CmdVelTopic: "cmd_vel_mux/input/teleop",
	}
}

// Node owns the underlying ROS node. Subscription callbacks run on the
// node's dispatch goroutine (Spin) and only ever touch the inbox, so they
// never contend with the control tick for perception state.
type Node struct {
	cfg  Config
	node ros.Node
	pub  ros.Publisher
	stop sync.Once
}

// NewNode creates the ROS node and advertises the velocity topic. Sensor
// topics are wired separately with Subscribe, since the command sink must
// exist before the controller that owns the inbox.
func NewNode(cfg Config, args []string) (*Node, error) {
	node, err := ros.NewNode(cfg.NodeName, args)
	if err != nil {
		return nil, fmt.Errorf("failed to create ros node: %w", err)
	}
	node.Logger().SetSeverity(ros.LogLevelWarn)

	n := &Node{cfg: cfg, node: node}
	n.pub = node.NewPublisher(cfg.CmdVelTopic, geometry_msgs.MsgTwist)
	return n, nil
}

// Subscribe wires the three sensor topics into inbox.
func (n *Node) Subscribe(inbox *seeker.Inbox) {
	n.node.NewSubscriber(n.cfg.BlobsTopic, cmvision.MsgBlobs, func(msg *cmvision.Blobs) {
		inbox.PutBlobs(convertBlobs(msg))
	})
	n.node.NewSubscriber(n.cfg.CloudTopic, sensor_msgs.MsgPointCloud2, func(msg *sensor_msgs.PointCloud2) {
		grid, err := DecodeCloud(msg)
		if err != nil {
			monitoring.Logf("dropping depth frame: %v", err)
			return
		}
		inbox.PutCloud(grid)
	})
	n.node.NewSubscriber(n.cfg.BumperTopic, kobuki_msgs.MsgBumperEvent, func(msg *kobuki_msgs.BumperEvent) {
		inbox.PutContact(&seeker.ContactEvent{
			Pressed:  msg.State == kobuki_msgs.PRESSED,
			Location: msg.Bumper,
		})
	})
}

// Spin dispatches subscription callbacks until the node shuts down.
func (n *Node) Spin() {
	n.node.Spin()
}

// Send implements seeker.CommandSink by publishing a Twist.
func (n *Node) Send(cmd seeker.VelocityCommand) {
	var t geometry_msgs.Twist
	t.Linear.X = cmd.Linear
	t.Angular.Z = cmd.Angular
	n.pub.Publish(&t)
}

// Shutdown stops the ROS node and its subscriptions. Safe to call more
// than once.
func (n *Node) Shutdown() {
	n.stop.Do(n.node.Shutdown)
}

func convertBlobs(msg *cmvision.Blobs) *seeker.BlobFrame {
	f := &seeker.BlobFrame{Blobs: make([]seeker.BlobDetection, 0, len(msg.Blobs))}
	for _, b := range msg.Blobs {
		f.Blobs = append(f.Blobs, seeker.BlobDetection{
			Red:   uint8(b.Red),
			Green: uint8(b.Green),
			Blue:  uint8(b.Blue),
			X:     float64(b.X),
			Y:     float64(b.Y),
			Area:  int(b.Area),
		})
	}
	return f
}
