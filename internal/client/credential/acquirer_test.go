package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/onetap/internal/logging"
)

// fakeProvider records requests and replays a canned answer.
type fakeProvider struct {
	cred  Credential
	err   error
	panic any

	calls   int
	lastReq Request
}

func (f *fakeProvider) GetCredential(ctx context.Context, req Request) (Credential, error) {
	f.calls++
	f.lastReq = req
	if f.panic != nil {
		panic(f.panic)
	}
	return f.cred, f.err
}

func TestAcquire_Obtained(t *testing.T) {
	p := &fakeProvider{cred: &IDTokenCredential{IDToken: "tok-123", ID: "alice@example.org"}}
	a := NewAcquirer(p, logging.Nop())

	res := a.Acquire(context.Background(), Config{ClientID: "client-1"})

	require.Equal(t, Obtained("tok-123"), res)
	assert.True(t, res.OK())
	assert.Equal(t, 1, p.calls)

	opt, ok := p.lastReq.IDTokenOption()
	require.True(t, ok)
	assert.Equal(t, IDTokenOption{ServerClientID: "client-1", FilterByAuthorizedAccounts: false}, opt)
	assert.Len(t, p.lastReq.Options, 1)
}

func TestAcquire_PassesAuthorizedFilter(t *testing.T) {
	p := &fakeProvider{cred: &IDTokenCredential{IDToken: "t"}}
	NewAcquirer(p, nil).Acquire(context.Background(), Config{ClientID: "c", FilterByAuthorizedAccounts: true})

	opt, ok := p.lastReq.IDTokenOption()
	require.True(t, ok)
	assert.True(t, opt.FilterByAuthorizedAccounts)
}

func TestAcquire_NoUsableCredential(t *testing.T) {
	var nilToken *IDTokenCredential

	tests := []struct {
		name string
		cred Credential
	}{
		{name: "nil credential", cred: nil},
		{name: "typed nil id token", cred: nilToken},
		{name: "password credential", cred: &PasswordCredential{ID: "bob", Password: "x"}},
		{name: "empty token", cred: &IDTokenCredential{IDToken: ""}},
		{name: "blank token", cred: &IDTokenCredential{IDToken: " \n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewAcquirer(&fakeProvider{cred: tt.cred}, nil).Acquire(context.Background(), Config{ClientID: "c"})
			assert.Equal(t, NoUsableCredential(), res)
			assert.False(t, res.OK())
			assert.Empty(t, res.Token)
		})
	}
}

func TestAcquire_ProviderErrorBecomesAcquisitionFailed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "canceled", err: ErrCanceled, want: "credential request canceled by user"},
		{name: "nothing stored", err: ErrNoCredentialAvailable, want: "no credential available"},
		{name: "wrapped", err: errors.Join(errors.New("provider offline")), want: "provider offline"},
		{name: "deadline", err: context.DeadlineExceeded, want: "credential request timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProvider{err: tt.err, cred: &IDTokenCredential{IDToken: "ignored"}}
			res := NewAcquirer(p, nil).Acquire(context.Background(), Config{ClientID: "c"})
			assert.Equal(t, AcquisitionFailed(tt.want), res)
		})
	}
}

func TestAcquire_ProviderPanicIsRecovered(t *testing.T) {
	p := &fakeProvider{panic: "chooser exploded"}

	var res Result
	require.NotPanics(t, func() {
		res = NewAcquirer(p, nil).Acquire(context.Background(), Config{ClientID: "c"})
	})

	assert.Equal(t, ResultAcquisitionFailed, res.Kind)
	assert.Contains(t, res.Detail, "chooser exploded")
}

func TestRequest_IDTokenOption(t *testing.T) {
	t.Run("pointer option", func(t *testing.T) {
		r := Request{Options: []Option{&IDTokenOption{ServerClientID: "p"}}}
		opt, ok := r.IDTokenOption()
		require.True(t, ok)
		assert.Equal(t, "p", opt.ServerClientID)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := Request{}.IDTokenOption()
		assert.False(t, ok)
	})
}
