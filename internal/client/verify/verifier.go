// Package verify sends an identity token to a remote verification endpoint
// and classifies the answer. It never interprets the response body: deciding
// whether a token is valid is the endpoint's job.
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/dmitrijs2005/onetap/internal/logging"
	"github.com/dmitrijs2005/onetap/internal/netx"
)

const (
	// DefaultTimeout bounds a single verification round trip.
	DefaultTimeout = 15 * time.Second
	// MaxBodyBytes caps how much of the response body is kept.
	MaxBodyBytes = 1 << 20

	ContentType = "application/json; charset=utf-8"
)

var tracer = otel.Tracer("github.com/dmitrijs2005/onetap/internal/client/verify")

// Doer is the part of *http.Client the verifier needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type request struct {
	Token string `json:"token"`
}

// Verifier posts tokens to a verification endpoint. It is stateless and safe
// for concurrent use.
type Verifier struct {
	client  Doer
	timeout time.Duration
	log     logging.Logger
}

type Option func(*Verifier)

// WithClient replaces the HTTP client.
func WithClient(c Doer) Option {
	return func(v *Verifier) { v.client = c }
}

// WithTimeout sets the round-trip deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(v *Verifier) {
		if d > 0 {
			v.timeout = d
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(v *Verifier) { v.log = l }
}

func New(opts ...Option) *Verifier {
	v := &Verifier{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify sends {"token": token} to endpoint with a single POST and classifies
// the response:
//
//   - 2xx                              → Verified(body)
//   - any other status                 → Rejected(code, reason)
//   - transport failure or timeout     → NetworkError
//   - bad input, encoding, panics      → UnexpectedError
//
// There are no retries.
func (v *Verifier) Verify(ctx context.Context, endpoint, token string) (out Outcome) {
	ctx, span := tracer.Start(ctx, "verify.token")
	defer func() {
		span.SetAttributes(attribute.String("verify.outcome", string(out.Kind)))
		if out.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", out.StatusCode))
		}
		if !out.OK() {
			span.SetStatus(codes.Error, out.String())
		}
		span.End()
	}()

	defer func() {
		if p := recover(); p != nil {
			out = UnexpectedError(fmt.Errorf("panic during verification: %v", p))
		}
	}()

	if err := validate(endpoint, token); err != nil {
		return UnexpectedError(err)
	}

	payload, err := json.Marshal(request{Token: token})
	if err != nil {
		return UnexpectedError(fmt.Errorf("encode request: %w", err))
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return UnexpectedError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", ContentType)

	v.log.Debug(ctx, "posting token for verification", "endpoint", endpoint)

	resp, err := v.client.Do(req)
	if err != nil {
		v.log.Error(ctx, "network error", "endpoint", endpoint, "error", err,
			"timeout", netx.IsTimeout(err), "refused", netx.IsConnRefused(err))
		return NetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := netx.ReasonPhrase(resp)
		v.log.Warn(ctx, "server verification failed", "status", resp.StatusCode, "reason", reason)
		o := Rejected(resp.StatusCode, reason)
		if body, _, err := readBody(resp.Body); err == nil {
			o.Body = body
		}
		return o
	}

	body, truncated, err := readBody(resp.Body)
	if err != nil {
		v.log.Error(ctx, "reading response body failed", "endpoint", endpoint, "error", err)
		return NetworkError(fmt.Errorf("read response: %w", err))
	}
	if truncated {
		v.log.Warn(ctx, "response body truncated", "endpoint", endpoint, "limit", MaxBodyBytes)
	}

	v.log.Info(ctx, "token verified", "status", resp.StatusCode)
	return Verified(body)
}

// readBody reads up to MaxBodyBytes and reports whether more was available.
func readBody(r io.Reader) (string, bool, error) {
	b, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		return "", false, err
	}
	if len(b) > MaxBodyBytes {
		return string(b[:MaxBodyBytes]), true, nil
	}
	return string(b), false, nil
}

func validate(endpoint, token string) error {
	if strings.TrimSpace(endpoint) == "" {
		return ErrEmptyEndpoint
	}
	if token == "" {
		return ErrEmptyToken
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return ErrInvalidEndpoint
	}
	return nil
}
