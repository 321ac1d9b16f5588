package cli

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/onetap/internal/client/signin"
)

// SignIn starts an attempt and prints its status transitions until it ends.
// It returns ErrSignInFailed when the attempt failed.
func (a *App) SignIn(ctx context.Context) error {
	updates, unsubscribe := a.signer.Subscribe(8)
	defer unsubscribe()

	started, err := a.signer.Start(ctx)
	if errors.Is(err, signin.ErrAttemptInProgress) {
		printlnFn("Sign-in already in progress:", started.Text())
		return err
	}
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	var final signin.Status
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return renderStatuses(gctx, updates, started.AttemptID)
	})
	g.Go(func() error {
		st, err := a.signer.Wait(gctx)
		final = st
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Warn(ctx, "sign-in interrupted", "error", err)
		return err
	}

	if final.State.Phase == signin.PhaseFailed {
		return ErrSignInFailed
	}
	return nil
}

// renderStatuses prints the statuses of attempt id until a terminal one.
func renderStatuses(ctx context.Context, updates <-chan signin.Status, id uuid.UUID) error {
	for {
		select {
		case st, ok := <-updates:
			if !ok {
				return nil
			}
			if st.AttemptID != id {
				continue
			}
			printlnFn("status:", st.Text())
			if st.State.Terminal() {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *App) ShowStatus(ctx context.Context) error {
	st := a.signer.Status()
	printlnFn("status:", st.Text())
	if st.AttemptID != uuid.Nil {
		printlnFn("attempt:", st.AttemptID.String(), "started", st.StartedAt.Format("2006-01-02 15:04:05"))
	}
	if st.InProgress {
		printlnFn("in progress")
	}
	return nil
}
