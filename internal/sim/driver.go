package sim

import (
	"fmt"

	"github.com/cresas/fiziksim2/internal/history"
	"github.com/cresas/fiziksim2/internal/physics"
)

// Step is the fixed simulated-time advance per tick, in seconds. It is a
// constant, not adaptive: fidelity is bounded but per-tick cost stays flat.
const Step = 0.1

// groundEpsilon is the height below which a tick counts as ground contact.
const groundEpsilon = 1e-9

// Phase is the driver's lifecycle state.
type Phase int

const (
	Idle Phase = iota
	Running
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Params are the initial conditions of a run. Velocity is downward positive.
type Params struct {
	InitialVelocity float64
	InitialHeight   float64
	Gravity         float64
	Mass            float64
}

// State is the live simulation state, recomputed each tick.
type State struct {
	Time         float64
	Height       float64
	Velocity     float64
	Displacement float64
}

// Observer is notified after every committed tick. Rendering subscribes here
// instead of being interleaved with the update step.
type Observer interface {
	OnTick(s State, r history.Record)
}

// Driver is the tick state machine: Idle/Stopped -start-> Running,
// Running -tick-> Running until ground contact stops it. The driver holds no
// timer; a Runner or the TUI schedules its ticks.
type Driver struct {
	params    Params
	phase     Phase
	ticks     int
	state     State
	store     *history.Store
	observers []Observer
}

func NewDriver(p Params, store *history.Store) *Driver {
	d := &Driver{params: p, store: store}
	d.Reset()
	return d
}

func (d *Driver) Phase() Phase           { return d.phase }
func (d *Driver) State() State           { return d.state }
func (d *Driver) Params() Params         { return d.params }
func (d *Driver) Store() *history.Store  { return d.store }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// SetParams replaces the initial conditions and reinitializes. Parameter
// edits are disabled while Running, so this is a no-op then.
func (d *Driver) SetParams(p Params) {
	if d.phase == Running {
		return
	}
	d.params = p
	d.Reset()
}

// Start launches a run. Starting while already Running is a no-op and
// returns false. Starting from Stopped restarts: history is cleared first.
func (d *Driver) Start() bool {
	if d.phase == Running {
		return false
	}
	d.Reset()
	d.phase = Running
	return true
}

// Tick advances simulated time by one Step, recomputes state, appends a
// record and notifies observers. The first tick whose height reaches ground
// level transitions the driver to Stopped. Ticks outside Running are ignored.
func (d *Driver) Tick() bool {
	if d.phase != Running {
		return false
	}

	d.ticks++
	t := float64(d.ticks) * Step
	k := physics.Evaluate(t, d.params.InitialVelocity, d.params.InitialHeight, d.params.Gravity)

	grounded := k.Height <= groundEpsilon
	if grounded {
		k.Height = 0
	}

	d.state = State{
		Time:         t,
		Height:       k.Height,
		Velocity:     k.Velocity,
		Displacement: k.Displacement,
	}

	rec := history.Record{
		Time:         physics.Round2(t),
		Height:       physics.Round2(k.Height),
		Velocity:     physics.Round2(k.Velocity),
		Acceleration: physics.Round2(d.params.Gravity),
		Displacement: physics.Round2(k.Displacement),
		Mass:         physics.Round2(d.params.Mass),
	}
	d.store.Append(rec)

	for _, o := range d.observers {
		o.OnTick(d.state, rec)
	}

	if grounded {
		d.phase = Stopped
	}
	return true
}

// Reset stops the driver, clears the history and restores the initial state
// from the current parameters.
func (d *Driver) Reset() {
	d.phase = Idle
	d.ticks = 0
	d.state = State{
		Height:   d.params.InitialHeight,
		Velocity: d.params.InitialVelocity,
	}
	d.store.Clear()
}

// RunToGround ticks until ground contact, bounded by maxTicks as a guard
// against near-zero gravity configurations.
func (d *Driver) RunToGround(maxTicks int) error {
	if !d.Start() {
		return fmt.Errorf("driver already running")
	}
	for i := 0; i < maxTicks; i++ {
		d.Tick()
		if d.phase != Running {
			return nil
		}
	}
	return fmt.Errorf("no ground contact after %d ticks", maxTicks)
}
