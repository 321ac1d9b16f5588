package signin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/verify"
	"github.com/dmitrijs2005/onetap/internal/logging"
)

var (
	ErrAttemptInProgress = errors.New("sign-in already in progress")
	ErrMissingClientID   = errors.New("client id is required")
	ErrMissingEndpoint   = errors.New("verification endpoint is required")
)

var tracer = otel.Tracer("github.com/dmitrijs2005/onetap/internal/client/signin")

// Acquirer obtains an identity token. *credential.Acquirer satisfies it.
type Acquirer interface {
	Acquire(ctx context.Context, cfg credential.Config) credential.Result
}

// Verifier checks a token with the remote endpoint. *verify.Verifier
// satisfies it.
type Verifier interface {
	Verify(ctx context.Context, endpoint, token string) verify.Outcome
}

// Settings is the static configuration of the flow.
type Settings struct {
	ClientID string
	Endpoint string
}

type Option func(*Orchestrator)

func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// WithClock overrides time.Now for attempt timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// Orchestrator owns the current attempt and its state.
type Orchestrator struct {
	acquirer Acquirer
	verifier Verifier
	settings Settings
	log      logging.Logger
	now      func() time.Time

	mu      sync.Mutex
	current *Attempt
	subs    map[uint64]chan Status
	nextSub uint64
}

// New validates settings and builds an Orchestrator. Missing settings are a
// configuration error, reported here rather than as a failed attempt.
func New(a Acquirer, v Verifier, s Settings, opts ...Option) (*Orchestrator, error) {
	if strings.TrimSpace(s.ClientID) == "" {
		return nil, ErrMissingClientID
	}
	if strings.TrimSpace(s.Endpoint) == "" {
		return nil, ErrMissingEndpoint
	}
	o := &Orchestrator{
		acquirer: a,
		verifier: v,
		settings: s,
		log:      logging.Nop(),
		now:      time.Now,
		subs:     make(map[uint64]chan Status),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Start triggers a new attempt and returns as soon as it is initializing;
// the attempt itself runs on its own goroutine. While another attempt is in
// flight Start returns ErrAttemptInProgress together with the current status.
//
// ctx reaches both the credential provider and the verification call, so
// cancelling it ends the attempt in the failed state.
func (o *Orchestrator) Start(ctx context.Context) (Status, error) {
	_, st, err := o.start(ctx)
	return st, err
}

// SignIn starts an attempt and waits for it to finish. The returned status is
// terminal unless ctx ends first, in which case ctx.Err() is returned.
func (o *Orchestrator) SignIn(ctx context.Context) (Status, error) {
	att, st, err := o.start(ctx)
	if err != nil {
		return st, err
	}
	return o.wait(ctx, att)
}

// Wait blocks until the current attempt, if any, is finished.
func (o *Orchestrator) Wait(ctx context.Context) (Status, error) {
	o.mu.Lock()
	att := o.current
	o.mu.Unlock()

	if att == nil {
		return Status{State: Idle()}, nil
	}
	return o.wait(ctx, att)
}

// Status returns a snapshot of the current attempt.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current.status()
}

// Subscribe returns a channel that first receives the current status and
// then every transition, in order. A subscriber that falls behind loses
// intermediate statuses but always gets the latest one. The returned
// function unsubscribes and closes the channel.
func (o *Orchestrator) Subscribe(buffer int) (<-chan Status, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Status, buffer)

	o.mu.Lock()
	id := o.nextSub
	o.nextSub++
	o.subs[id] = ch
	ch <- o.current.status()
	o.mu.Unlock()

	cancel := func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if c, ok := o.subs[id]; ok {
			delete(o.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (o *Orchestrator) start(ctx context.Context) (*Attempt, Status, error) {
	o.mu.Lock()
	if o.current != nil && !o.current.state.Terminal() {
		st := o.current.status()
		o.mu.Unlock()
		o.log.Warn(ctx, "sign-in already in progress, trigger ignored", "attempt_id", st.AttemptID)
		return nil, st, ErrAttemptInProgress
	}

	att := newAttempt(uuid.New(), o.now())
	o.current = att
	st := att.status()
	o.publishLocked(st)
	o.mu.Unlock()

	o.log.Info(ctx, "sign-in attempt started", "attempt_id", att.ID)

	go o.run(ctx, att)

	return att, st, nil
}

func (o *Orchestrator) wait(ctx context.Context, att *Attempt) (Status, error) {
	select {
	case <-att.done:
	case <-ctx.Done():
		return o.statusOf(att), ctx.Err()
	}
	return o.statusOf(att), nil
}

func (o *Orchestrator) statusOf(att *Attempt) Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return att.status()
}

// run executes the attempt. Acquisition strictly precedes verification and
// verification only ever sees a non-empty token from this attempt.
func (o *Orchestrator) run(ctx context.Context, att *Attempt) {
	defer close(att.done)

	ctx, span := tracer.Start(ctx, "signin.attempt",
		trace.WithAttributes(attribute.String("signin.attempt_id", att.ID.String())))
	defer span.End()

	log := o.log.With("attempt_id", att.ID)

	defer func() {
		if p := recover(); p != nil {
			log.Error(ctx, "sign-in attempt panicked", "panic", p)
			o.finish(span, att, Failed(fmt.Sprintf("An unexpected error occurred: %v", p)))
		}
	}()

	o.transition(att, AwaitingCredential(), "")

	res := o.acquirer.Acquire(ctx, credential.Config{
		ClientID:                   o.settings.ClientID,
		FilterByAuthorizedAccounts: false,
	})
	if !res.OK() {
		st := acquisitionState(res)
		log.Warn(ctx, "credential acquisition failed", "result", res.Kind, "status", st.Message)
		o.finish(span, att, st)
		return
	}

	o.transition(att, Verifying(), res.Token)

	out := o.verifier.Verify(ctx, o.settings.Endpoint, res.Token)
	st := verificationState(out)
	if st.Phase == PhaseSucceeded {
		log.Info(ctx, "sign-in succeeded")
	} else {
		log.Warn(ctx, "sign-in failed", "outcome", out.Kind, "status", st.Message)
	}
	o.finish(span, att, st)
}

func (o *Orchestrator) finish(span trace.Span, att *Attempt, st State) {
	span.SetAttributes(attribute.String("signin.phase", string(st.Phase)))
	if st.Phase == PhaseFailed {
		span.SetStatus(codes.Error, st.Message)
	}
	o.transition(att, st, "")
}

// transition moves att to st. A non-empty token is recorded on the attempt.
// Terminal attempts never change again.
func (o *Orchestrator) transition(att *Attempt, st State, token string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if att.state.Terminal() {
		return
	}
	att.state = st
	if token != "" {
		att.token = token
	}
	if o.current == att {
		o.publishLocked(att.status())
	}
}

func (o *Orchestrator) publishLocked(st Status) {
	for _, ch := range o.subs {
		select {
		case ch <- st:
			continue
		default:
		}
		// Full: drop the oldest queued status to make room for the newest.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- st:
		default:
		}
	}
}
