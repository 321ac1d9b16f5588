package keyring

import (
	"context"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/models"
)

// Chooser picks one of the offered accounts. It is called with at least one
// account and returns credential.ErrCanceled when the user declines.
type Chooser interface {
	Choose(ctx context.Context, clientID string, accounts []models.Account) (models.Account, error)
}

// ChooserFunc adapts a function to Chooser.
type ChooserFunc func(ctx context.Context, clientID string, accounts []models.Account) (models.Account, error)

func (f ChooserFunc) Choose(ctx context.Context, clientID string, accounts []models.Account) (models.Account, error) {
	return f(ctx, clientID, accounts)
}

// FirstChooser picks the most recently used account without asking.
type FirstChooser struct{}

func (FirstChooser) Choose(ctx context.Context, _ string, accounts []models.Account) (models.Account, error) {
	if err := ctx.Err(); err != nil {
		return models.Account{}, err
	}
	if len(accounts) == 0 {
		return models.Account{}, credential.ErrNoCredentialAvailable
	}
	return accounts[0], nil
}
