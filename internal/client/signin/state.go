package signin

import "fmt"

// Phase is the position of an attempt in the state machine.
type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhaseInitializing       Phase = "initializing"
	PhaseAwaitingCredential Phase = "awaiting_credential"
	PhaseVerifying          Phase = "verifying"
	PhaseSucceeded          Phase = "succeeded"
	PhaseFailed             Phase = "failed"
)

// Terminal reports whether no further transition happens within the attempt.
func (p Phase) Terminal() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}

// Status lines shown to the user.
const (
	MsgSignedOut      = "Signed Out"
	MsgInitializing   = "Initializing..."
	MsgLaunching      = "Launching sign-in..."
	MsgVerifying      = "Got IdToken, verifying with server..."
	MsgNoIDToken      = "No IdToken"
	MsgNetworkError   = "Network error: Could not connect to backend. Is the server running?"
	MsgNetworkTimeout = "Network error: request to backend timed out"
	MsgVerifyCanceled = "Sign-in canceled: verification request was interrupted"
)

// State is a phase plus the human-readable line describing it. For
// succeeded and failed the message carries the most specific known cause.
type State struct {
	Phase   Phase
	Message string
}

func (s State) Terminal() bool { return s.Phase.Terminal() }

func (s State) String() string {
	return fmt.Sprintf("%s: %s", s.Phase, s.Message)
}

func Idle() State               { return State{Phase: PhaseIdle, Message: MsgSignedOut} }
func Initializing() State       { return State{Phase: PhaseInitializing, Message: MsgInitializing} }
func AwaitingCredential() State { return State{Phase: PhaseAwaitingCredential, Message: MsgLaunching} }
func Verifying() State          { return State{Phase: PhaseVerifying, Message: MsgVerifying} }

func Succeeded(message string) State { return State{Phase: PhaseSucceeded, Message: message} }
func Failed(reason string) State     { return State{Phase: PhaseFailed, Message: reason} }
