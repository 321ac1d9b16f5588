package credential

import (
	"context"
	"errors"
)

var (
	// ErrNoCredentialAvailable is returned by providers that have nothing to
	// offer for the request.
	ErrNoCredentialAvailable = errors.New("no credential available")
	// ErrUnsupportedRequest is returned when none of the request options is
	// understood by the provider.
	ErrUnsupportedRequest = errors.New("unsupported credential request")
	// ErrCanceled is returned when the user dismissed the account chooser.
	ErrCanceled = errors.New("credential request canceled by user")
)

// Provider hands out credentials matching a request. Implementations may
// block on user interaction and should honor ctx.
type Provider interface {
	GetCredential(ctx context.Context, req Request) (Credential, error)
}

// Request lists the acceptable credential options, in order of preference.
type Request struct {
	Options []Option
}

// Option is one acceptable kind of credential.
type Option interface {
	optionType() string
}

// IDTokenOption asks for an identity token issued for ServerClientID.
// With FilterByAuthorizedAccounts set, only accounts that previously signed
// in to this client are offered.
type IDTokenOption struct {
	ServerClientID             string
	FilterByAuthorizedAccounts bool
}

func (IDTokenOption) optionType() string { return TypeIDToken }

// IDTokenOption returns the first IDTokenOption in the request.
func (r Request) IDTokenOption() (IDTokenOption, bool) {
	for _, o := range r.Options {
		switch v := o.(type) {
		case IDTokenOption:
			return v, true
		case *IDTokenOption:
			if v != nil {
				return *v, true
			}
		}
	}
	return IDTokenOption{}, false
}

const (
	TypeIDToken  = "id_token"
	TypePassword = "password"
)

// Credential is what a provider returns. Only *IDTokenCredential carries an
// identity token; any other type is unusable for sign-in.
type Credential interface {
	Type() string
}

// IDTokenCredential is an identity token plus the account it belongs to.
type IDTokenCredential struct {
	IDToken     string
	ID          string // account identifier, usually the e-mail address
	DisplayName string
}

func (*IDTokenCredential) Type() string { return TypeIDToken }

// PasswordCredential is a saved username/password pair. The sign-in flow
// cannot use it.
type PasswordCredential struct {
	ID       string
	Password string
}

func (*PasswordCredential) Type() string { return TypePassword }
