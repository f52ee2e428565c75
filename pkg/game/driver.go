// Package game holds the flight simulation: world state, keyboard-driven motion,
// star collection, HUD text and sound cues, advanced once per frame by a Driver.
package game

import (
	"context"
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-starfield/pkg/geometry"
)

// ErrAlreadyStarted is returned when Start is called more than once
var ErrAlreadyStarted = errors.New("frame driver already started")

// State is the frame driver's lifecycle state
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Scene is the set of collectibles being drawn. It mirrors World.Collectibles.
type Scene interface {
	Add(c *Collectible)
	Remove(c *Collectible)
}

// FrameRenderer draws one frame of the world
type FrameRenderer interface {
	Render(w *World)
}

// Options wires the driver to its outputs. Nil fields are replaced with no-ops,
// and a nil Volumes bounds collectibles by a unit cube.
type Options struct {
	Volumes  Volumes
	Scene    Scene
	Renderer FrameRenderer
	Text     TextSink
	Cues     CueSink
}

// Driver advances the world once per frame and handles keyboard input.
// All methods must be called from the thread running the scheduler.
type Driver struct {
	world  *World
	motion Motion
	spin   float32

	volumes  Volumes
	scene    Scene
	renderer FrameRenderer
	hud      HUD
	cues     CueSink

	state  State
	frames uint64
	cancel context.CancelFunc
}

// NewDriver creates a driver for world using settings for motion tuning
func NewDriver(world *World, settings Settings, opts Options) *Driver {
	d := &Driver{
		world:    world,
		motion:   NewMotion(settings),
		spin:     settings.Spin,
		volumes:  opts.Volumes,
		scene:    opts.Scene,
		renderer: opts.Renderer,
		cues:     opts.Cues,
		state:    StateUninitialized,
	}

	if d.volumes == nil {
		d.volumes = NewBoxVolumes(geometry.NewAABB(mgl32.Vec3{}, 0.5), settings.CameraExtent)
	}
	if d.scene == nil {
		d.scene = nopScene{}
	}
	if d.renderer == nil {
		d.renderer = nopRenderer{}
	}
	if d.cues == nil {
		d.cues = CueFunc(func(Cue) {})
	}

	text := opts.Text
	if text == nil {
		text = nopText{}
	}
	d.hud = NewHUD(text)

	return d
}

// World returns the world being driven
func (d *Driver) World() *World {
	return d.world
}

// State returns the lifecycle state
func (d *Driver) State() State {
	return d.state
}

// Frames returns the number of frames ticked so far
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Start populates the scene, shows the HUD, starts the music and hands Tick to
// the scheduler. It blocks until the scheduler returns. Cancellation through
// ctx or Stop is a normal exit and returns nil.
func (d *Driver) Start(ctx context.Context, scheduler Scheduler) error {
	if d.state != StateUninitialized {
		return ErrAlreadyStarted
	}

	for _, c := range d.world.Collectibles {
		d.scene.Add(c)
	}
	d.hud.Refresh(d.world)
	d.cues.Emit(CueMusic)

	ctx, d.cancel = context.WithCancel(ctx)
	defer d.cancel()

	d.state = StateRunning
	err := scheduler.Run(ctx, func() error {
		d.Tick()
		return nil
	})
	d.state = StateStopped

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop ends a running Start. It is a no-op before Start.
func (d *Driver) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
}

// Tick advances one frame: damp, move the camera, spin the collectibles,
// collect overlapped stars, render.
func (d *Driver) Tick() {
	w := d.world

	d.motion.Damp(w)
	w.Advance()
	w.Spin(d.spin)
	w.CheckCollisions(d.volumes, d.collect)
	d.renderer.Render(w)

	d.frames++
}

// collect keeps the scene in sync with the collection and announces the pickup
func (d *Driver) collect(c *Collectible) {
	d.scene.Remove(c)
	d.hud.Refresh(d.world)
	d.cues.Emit(CueCollect)
}

// KeyDown handles a key press or repeat
func (d *Driver) KeyDown(key string) {
	if d.world.HandleKeyDown(key, d.motion) {
		d.hud.Refresh(d.world)
	}
}

// KeyUp handles a key release
func (d *Driver) KeyUp(key string) {
	d.world.HandleKeyUp(key, d.motion)
}

type nopScene struct{}

func (nopScene) Add(*Collectible)    {}
func (nopScene) Remove(*Collectible) {}

type nopRenderer struct{}

func (nopRenderer) Render(*World) {}

type nopText struct{}

func (nopText) SetText(string, string) {}
