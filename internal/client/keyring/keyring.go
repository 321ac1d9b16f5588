package keyring

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/models"
	"github.com/dmitrijs2005/onetap/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/onetap/internal/common"
	"github.com/dmitrijs2005/onetap/internal/logging"
)

var (
	ErrEmptyClientID    = errors.New("client id is required")
	ErrInvalidToken     = errors.New("invalid id token")
	ErrMissingSubject   = errors.New("id token has no subject")
	ErrAudienceMismatch = errors.New("id token was not issued for this client")
)

type idTokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// TxFunc runs fn against a repository bound to a single transaction.
type TxFunc func(ctx context.Context, fn func(ctx context.Context, repo accounts.Repository) error) error

type Option func(*Keyring)

// WithTx makes the read and the usage mark of a chosen account atomic.
// Without it both run directly on the repository.
func WithTx(tx TxFunc) Option {
	return func(k *Keyring) { k.inTx = tx }
}

func WithLogger(l logging.Logger) Option {
	return func(k *Keyring) { k.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(k *Keyring) { k.now = now }
}

// Keyring serves stored ID tokens. It is safe for concurrent use when the
// repository is.
type Keyring struct {
	repo    accounts.Repository
	chooser Chooser
	inTx    TxFunc
	log     logging.Logger
	now     func() time.Time
}

func New(repo accounts.Repository, chooser Chooser, opts ...Option) *Keyring {
	if chooser == nil {
		chooser = FirstChooser{}
	}
	k := &Keyring{repo: repo, chooser: chooser, log: logging.Nop(), now: time.Now}
	k.inTx = func(ctx context.Context, fn func(context.Context, accounts.Repository) error) error {
		return fn(ctx, k.repo)
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

var _ credential.Provider = (*Keyring)(nil)

// GetCredential implements credential.Provider.
func (k *Keyring) GetCredential(ctx context.Context, req credential.Request) (credential.Credential, error) {
	opt, ok := req.IDTokenOption()
	if !ok {
		return nil, credential.ErrUnsupportedRequest
	}
	if strings.TrimSpace(opt.ServerClientID) == "" {
		return nil, ErrEmptyClientID
	}

	list, err := k.repo.List(ctx, opt.ServerClientID, opt.FilterByAuthorizedAccounts)
	if err != nil {
		return nil, fmt.Errorf("keyring: %w", err)
	}
	if len(list) == 0 {
		k.log.Info(ctx, "no stored accounts", "client_id", opt.ServerClientID,
			"only_authorized", opt.FilterByAuthorizedAccounts)
		return nil, credential.ErrNoCredentialAvailable
	}

	chosen, err := k.chooser.Choose(ctx, opt.ServerClientID, list)
	if err != nil {
		return nil, err
	}

	// The chooser may have been waiting on the user; re-read the account so a
	// concurrent import or forget is observed.
	var acc models.Account
	err = k.inTx(ctx, func(ctx context.Context, repo accounts.Repository) error {
		var err error
		if acc, err = repo.Get(ctx, chosen.ID); err != nil {
			return err
		}
		return repo.MarkUsed(ctx, acc.ID, k.now())
	})
	if errors.Is(err, common.ErrorNotFound) {
		k.log.Warn(ctx, "chosen account no longer stored", "account_id", chosen.ID)
		return nil, fmt.Errorf("%w: account %s was removed", credential.ErrNoCredentialAvailable, chosen.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("keyring: %w", err)
	}

	return &credential.IDTokenCredential{
		IDToken:     acc.IDToken,
		ID:          accountID(acc),
		DisplayName: acc.Name,
	}, nil
}

// Import stores rawToken for clientID, replacing the token of an account with
// the same subject. The token's audience must include clientID.
func (k *Keyring) Import(ctx context.Context, clientID, rawToken string) (models.Account, error) {
	if strings.TrimSpace(clientID) == "" {
		return models.Account{}, ErrEmptyClientID
	}
	rawToken = strings.TrimSpace(rawToken)

	var claims idTokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(rawToken, &claims); err != nil {
		return models.Account{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return models.Account{}, ErrMissingSubject
	}
	if !slices.Contains(claims.Audience, clientID) {
		return models.Account{}, fmt.Errorf("%w: audience %v", ErrAudienceMismatch, []string(claims.Audience))
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(k.now()) {
		k.log.Warn(ctx, "imported id token is already expired", "subject", claims.Subject,
			"expires_at", claims.ExpiresAt.Time)
	}

	acc, err := k.repo.Upsert(ctx, models.Account{
		ClientID: clientID,
		Subject:  claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		IDToken:  rawToken,
	})
	if err != nil {
		return models.Account{}, fmt.Errorf("keyring: %w", err)
	}
	k.log.Info(ctx, "account imported", "account_id", acc.ID, "client_id", clientID)
	return acc, nil
}

// List returns all stored accounts of clientID.
func (k *Keyring) List(ctx context.Context, clientID string) ([]models.Account, error) {
	return k.repo.List(ctx, clientID, false)
}

// Forget removes the account with the given id.
func (k *Keyring) Forget(ctx context.Context, id string) error {
	if err := k.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("keyring: %w", err)
	}
	k.log.Info(ctx, "account forgotten", "account_id", id)
	return nil
}

func accountID(a models.Account) string {
	if a.Email != "" {
		return a.Email
	}
	return a.Subject
}
