package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dmitrijs2005/onetap/internal/logging"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/onetap/internal/client/credential")

// Config identifies the relying party the token is requested for.
type Config struct {
	ClientID                   string
	FilterByAuthorizedAccounts bool
}

// Acquirer converts a Provider's behaviour into a Result.
type Acquirer struct {
	provider Provider
	log      logging.Logger
}

func NewAcquirer(p Provider, log logging.Logger) *Acquirer {
	if log == nil {
		log = logging.Nop()
	}
	return &Acquirer{provider: p, log: log}
}

// Acquire asks the provider for an ID token matching cfg. It always returns
// a Result; provider errors and panics are folded into AcquisitionFailed.
func (a *Acquirer) Acquire(ctx context.Context, cfg Config) (res Result) {
	ctx, span := tracer.Start(ctx, "credential.acquire")
	defer func() {
		span.SetAttributes(attribute.String("credential.result", string(res.Kind)))
		span.End()
	}()

	defer func() {
		if p := recover(); p != nil {
			a.log.Error(ctx, "credential provider panicked", "panic", p)
			res = AcquisitionFailed(fmt.Sprintf("credential provider panicked: %v", p))
		}
	}()

	req := Request{Options: []Option{IDTokenOption{
		ServerClientID:             cfg.ClientID,
		FilterByAuthorizedAccounts: cfg.FilterByAuthorizedAccounts,
	}}}

	cred, err := a.provider.GetCredential(ctx, req)
	if err != nil {
		a.log.Error(ctx, "sign-in error", "error", err)
		return AcquisitionFailed(describe(err))
	}

	token, ok := idToken(cred)
	if !ok {
		a.log.Error(ctx, "no IdToken", "credential_type", credentialType(cred))
		return NoUsableCredential()
	}

	a.log.Info(ctx, "id token obtained", "account", accountID(cred))
	return Obtained(token)
}

func idToken(c Credential) (string, bool) {
	tc, _ := c.(*IDTokenCredential)
	if tc == nil || strings.TrimSpace(tc.IDToken) == "" {
		return "", false
	}
	return tc.IDToken, true
}

func describe(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "credential request timed out"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}

func credentialType(c Credential) string {
	if c == nil {
		return "none"
	}
	return c.Type()
}

func accountID(c Credential) string {
	if tc, ok := c.(*IDTokenCredential); ok {
		return tc.ID
	}
	return ""
}
