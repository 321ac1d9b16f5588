package cli

import (
	"context"
	"fmt"
)

func (a *App) statusLine() string {
	return a.signer.Status().Text()
}

// Root prints the welcome banner and runs the REPL on the App's input.
func (a *App) Root(ctx context.Context) {
	printlnFn(fmt.Sprintf("onetap CLI for %s (type 'help' for commands)", a.config.ClientID))

	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, a, a.statusLine, a.reader)
	}()

	// a blocked read on stdin cannot be interrupted
	select {
	case <-done:
	case <-ctx.Done():
		printlnFn("Interrupted")
	}
}
