package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/models"
)

// promptChooser asks the user on reader/out which account to sign in with.
// An empty answer or end of input cancels.
type promptChooser struct {
	reader *bufio.Reader
	out    io.Writer
}

func (c *promptChooser) Choose(ctx context.Context, clientID string, accounts []models.Account) (models.Account, error) {
	fmt.Fprintf(c.out, "Choose an account to continue to %s:\n", clientID)
	for i, acc := range accounts {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, acc.Label())
	}

	for {
		if err := ctx.Err(); err != nil {
			return models.Account{}, err
		}

		answer, err := GetSimpleText(c.reader, fmt.Sprintf("Account [1-%d], empty to cancel", len(accounts)), c.out)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return models.Account{}, credential.ErrCanceled
			}
			return models.Account{}, err
		}
		if answer == "" {
			return models.Account{}, credential.ErrCanceled
		}

		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(accounts) {
			fmt.Fprintf(c.out, "Invalid choice %q\n", answer)
			continue
		}
		return accounts[n-1], nil
	}
}
