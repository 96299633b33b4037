// Package tipstate models the show/hide timing of a single tooltip widget.
//
// The browser runtime in pkg/md/client.js implements the same transitions;
// this package is the reference for them and lets the timing be tested
// without a DOM.
package tipstate

import (
	"sync"
	"time"
)

// HideDelay is how long a visible tooltip lingers after the pointer leaves.
const HideDelay = 100 * time.Millisecond

// State is the visibility state of one tooltip.
type State int

const (
	Hidden State = iota
	PendingShow
	Visible
	PendingHide
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case PendingShow:
		return "pending-show"
	case Visible:
		return "visible"
	case PendingHide:
		return "pending-hide"
	default:
		return "unknown"
	}
}

// Shown reports whether the tooltip is on screen in state s.
func (s State) Shown() bool {
	return s == Visible || s == PendingHide
}

// Event is a DOM interaction delivered to the machine.
type Event int

const (
	Enter        Event = iota // pointer entered the wrapper
	Leave                     // pointer left the wrapper
	Click                     // click on the wrapper
	ClickOutside              // click anywhere outside the wrapper
)

func (e Event) String() string {
	switch e {
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case Click:
		return "click"
	case ClickOutside:
		return "click-outside"
	default:
		return "unknown"
	}
}

// Trigger selects which events drive the machine.
type Trigger string

const (
	TriggerHover Trigger = "hover"
	TriggerClick Trigger = "click"
)

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler arms timers. The browser's setTimeout and time.AfterFunc both fit.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules with time.AfterFunc.
var SystemScheduler Scheduler = systemScheduler{}

// Config holds the per-widget parameters.
type Config struct {
	Trigger   Trigger
	Delay     time.Duration // show delay
	Scheduler Scheduler     // defaults to SystemScheduler

	// OnChange is called after every state change, outside the lock.
	OnChange func(from, to State)
}

// Machine is one tooltip's state. Transitions are serialised by a mutex so
// timer goroutines behave like callbacks on the browser event loop.
type Machine struct {
	mu    sync.Mutex
	cfg   Config
	state State
	timer Timer
	gen   uint64 // bumped whenever the pending timer is replaced or cancelled
}

// New returns a machine in the Hidden state.
func New(cfg Config) *Machine {
	if cfg.Trigger != TriggerClick {
		cfg.Trigger = TriggerHover
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = SystemScheduler
	}
	return &Machine{cfg: cfg}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Handle applies ev and returns the resulting state. Events that do not
// belong to the configured trigger mode are ignored.
func (m *Machine) Handle(ev Event) State {
	m.mu.Lock()
	from := m.state
	to := m.next(ev)
	m.mu.Unlock()

	m.notify(from, to)
	return to
}

// next computes and applies the transition for ev. Caller holds m.mu.
func (m *Machine) next(ev Event) State {
	switch m.cfg.Trigger {
	case TriggerClick:
		switch {
		case ev == Click && m.state == Hidden:
			m.arm(PendingShow, m.cfg.Delay)
		case ev == Click && m.state == PendingShow,
			ev == Click && m.state == Visible,
			ev == ClickOutside && m.state == PendingShow,
			ev == ClickOutside && m.state == Visible:
			m.cancel(Hidden)
		}
	default:
		switch {
		case ev == Enter && m.state == Hidden:
			m.arm(PendingShow, m.cfg.Delay)
		case ev == Enter && m.state == PendingHide:
			m.cancel(Visible)
		case ev == Leave && m.state == Visible:
			m.arm(PendingHide, HideDelay)
		case ev == Leave && m.state == PendingShow:
			m.cancel(Hidden)
		}
	}
	return m.state
}

// arm moves to a pending state and schedules its completion.
func (m *Machine) arm(pending State, d time.Duration) {
	m.stopTimer()
	m.state = pending
	gen := m.gen
	m.timer = m.cfg.Scheduler.AfterFunc(d, func() { m.fire(gen) })
}

// cancel drops any pending timer and moves straight to target.
func (m *Machine) cancel(target State) {
	m.stopTimer()
	m.state = target
}

func (m *Machine) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

// fire completes a pending transition. Callbacks from a timer that has since
// been replaced or cancelled carry an old generation and are dropped.
func (m *Machine) fire(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return
	}
	from := m.state
	switch from {
	case PendingShow:
		m.state = Visible
	case PendingHide:
		m.state = Hidden
	}
	m.timer = nil
	to := m.state
	m.mu.Unlock()

	m.notify(from, to)
}

func (m *Machine) notify(from, to State) {
	if from != to && m.cfg.OnChange != nil {
		m.cfg.OnChange(from, to)
	}
}

// Stop cancels any pending timer without changing state.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimer()
}
