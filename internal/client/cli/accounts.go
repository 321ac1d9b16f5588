package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/onetap/internal/common"
)

// Import reads an ID token without echo and stores it for the configured
// client id.
func (a *App) Import(ctx context.Context) error {
	raw, err := GetToken(a.reader, a.out)
	defer common.WipeByteArray(raw)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	token, err := common.TokenFromBytes(raw)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	acc, err := a.accounts.Import(ctx, a.config.ClientID, token)
	if err != nil {
		a.log.Warn(ctx, "import failed", "error", err)
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Imported %s (%s)", acc.Label(), acc.ID))
	return nil
}

// Accounts lists the stored accounts of the configured client id.
func (a *App) Accounts(ctx context.Context) error {
	list, err := a.accounts.List(ctx, a.config.ClientID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if len(list) == 0 {
		printlnFn("No stored accounts. Use 'import' to add one.")
		return nil
	}

	for _, acc := range list {
		used := "never used"
		if acc.LastUsedAt != nil {
			used = "last used " + acc.LastUsedAt.Local().Format("2006-01-02 15:04")
		}
		mark := " "
		if acc.Authorized {
			mark = "*"
		}
		printlnFn(fmt.Sprintf("%s %s  %s  (%s)", mark, acc.ID, acc.Label(), used))
	}
	return nil
}

// Forget removes the account id, prompting for it when empty.
func (a *App) Forget(ctx context.Context, id string) error {
	if id == "" {
		var err error
		id, err = GetSimpleText(a.reader, "Enter account id to forget", a.out)
		if err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
	}

	if err := a.accounts.Forget(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Forgot", id)
	return nil
}
