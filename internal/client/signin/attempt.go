package signin

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one execution of the flow. It is owned by the Orchestrator and
// only ever read through Status snapshots.
type Attempt struct {
	ID        uuid.UUID
	StartedAt time.Time

	state State
	token string
	done  chan struct{}
}

func newAttempt(id uuid.UUID, startedAt time.Time) *Attempt {
	return &Attempt{
		ID:        id,
		StartedAt: startedAt,
		state:     Initializing(),
		done:      make(chan struct{}),
	}
}

// Status is a read-only snapshot of the orchestrator. Before the first
// attempt AttemptID is uuid.Nil and State is Idle.
type Status struct {
	AttemptID  uuid.UUID
	StartedAt  time.Time
	State      State
	InProgress bool
	HasToken   bool
}

// Text is the status line for the presentation layer.
func (s Status) Text() string { return s.State.Message }

func (a *Attempt) status() Status {
	if a == nil {
		return Status{State: Idle()}
	}
	return Status{
		AttemptID:  a.ID,
		StartedAt:  a.StartedAt,
		State:      a.state,
		InProgress: !a.state.Terminal(),
		HasToken:   a.token != "",
	}
}
