package accounts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/onetap/internal/client/models"
)

// Repository describes storage of keyring accounts.
type Repository interface {
	// Upsert inserts the account or, when one exists for the same client id
	// and subject, replaces its token and profile. It returns the stored row.
	Upsert(ctx context.Context, a models.Account) (models.Account, error)

	// List returns the accounts of clientID, most recently used first.
	List(ctx context.Context, clientID string, onlyAuthorized bool) ([]models.Account, error)

	// Get returns common.ErrorNotFound when id is unknown.
	Get(ctx context.Context, id string) (models.Account, error)

	// MarkUsed flags the account as authorized and records at as its last use.
	MarkUsed(ctx context.Context, id string, at time.Time) error

	// Delete returns common.ErrorNotFound when id is unknown.
	Delete(ctx context.Context, id string) error
}
