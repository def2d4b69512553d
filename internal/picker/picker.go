// Package picker implements the two-step target/client selection flow as an
// explicit finite state machine.
//
// The machine itself knows nothing about terminals: it exposes Accept, Back
// and Dismiss transitions over the visible item list, which makes the flow
// testable without a UI host. The interactive driver in this package maps a
// real [huh] form onto those transitions.
package picker

import (
	"errors"

	"go.followtheprocess.codes/snip/internal/catalog"
)

// State is the current state of a selection flow.
type State int

// Selection flow states.
const (
	SelectingTarget State = iota // Step 1, choosing the target, initial state
	SelectingClient              // Step 2, choosing a client within the target
	Completed                    // Terminal, a (target, client) pair was chosen
	Cancelled                    // Terminal, the flow was dismissed
)

// String implements [fmt.Stringer] for [State].
func (s State) String() string {
	switch s {
	case SelectingTarget:
		return "SelectingTarget"
	case SelectingClient:
		return "SelectingClient"
	case Completed:
		return "Completed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ErrNoTargets is returned when a selection flow is requested against an
// empty catalog. The caller must report unavailability instead of showing
// any selection UI.
var ErrNoTargets = errors.New("no available targets")

// Picker is the two-step selection state machine.
//
// A Picker is single use: once it reaches a terminal state it stays there.
type Picker struct {
	onComplete func(catalog.Target, catalog.Client)
	targets    []catalog.Target
	target     catalog.Target
	client     catalog.Client
	state      State
}

// Option configures a [Picker].
type Option func(*Picker)

// OnComplete registers a hook invoked exactly once when the flow completes
// with an accepted (target, client) pair. It never fires on dismissal.
func OnComplete(fn func(catalog.Target, catalog.Client)) Option {
	return func(p *Picker) {
		p.onComplete = fn
	}
}

// New returns a new [Picker] over the given catalog, in the
// [SelectingTarget] state.
//
// It returns [ErrNoTargets] if the catalog contains no targets.
func New(c catalog.Catalog, options ...Option) (*Picker, error) {
	if len(c.Targets) == 0 {
		return nil, ErrNoTargets
	}

	picker := &Picker{
		targets: c.Targets,
		state:   SelectingTarget,
	}

	for _, option := range options {
		option(picker)
	}

	return picker, nil
}

// State returns the current state of the flow.
func (p *Picker) State() State {
	return p.state
}

// Targets returns the visible target list for step 1.
func (p *Picker) Targets() []catalog.Target {
	return p.targets
}

// Clients returns the visible client list for step 2: the clients belonging
// to the accepted target. It is empty unless the flow is in
// [SelectingClient].
func (p *Picker) Clients() []catalog.Client {
	if p.state != SelectingClient {
		return nil
	}

	return p.target.Clients
}

// BackAvailable reports whether the back affordance is currently shown, i.e.
// whether the flow is on step 2.
func (p *Picker) BackAvailable() bool {
	return p.state == SelectingClient
}

// Accept accepts the item at index i in the currently visible list.
//
// From [SelectingTarget] it moves to [SelectingClient] with that target's
// clients visible. From [SelectingClient] it completes the flow, firing the
// completion hook. Out of range indices and terminal states are no-ops.
func (p *Picker) Accept(i int) {
	switch p.state {
	case SelectingTarget:
		if i < 0 || i >= len(p.targets) {
			return
		}

		p.target = p.targets[i]
		p.state = SelectingClient
	case SelectingClient:
		if i < 0 || i >= len(p.target.Clients) {
			return
		}

		p.client = p.target.Clients[i]
		p.state = Completed

		if p.onComplete != nil {
			p.onComplete(p.target, p.client)
		}
	case Completed, Cancelled:
		// Terminal
	}
}

// Back returns the flow from [SelectingClient] to [SelectingTarget],
// restoring the full target list and removing the back affordance.
// In any other state it is a no-op.
func (p *Picker) Back() {
	if p.state != SelectingClient {
		return
	}

	p.target = catalog.Target{}
	p.state = SelectingTarget
}

// Dismiss cancels the flow from either selection step. No pair is emitted
// and the completion hook does not fire. Terminal states are unaffected.
func (p *Picker) Dismiss() {
	if p.state == SelectingTarget || p.state == SelectingClient {
		p.state = Cancelled
	}
}

// Selection returns the accepted (target, client) pair and a boolean
// reporting whether the flow actually completed.
func (p *Picker) Selection() (target catalog.Target, client catalog.Client, ok bool) {
	if p.state != Completed {
		return catalog.Target{}, catalog.Client{}, false
	}

	return p.target, p.client, true
}
