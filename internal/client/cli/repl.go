package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	SignIn(ctx context.Context) error
	ShowStatus(ctx context.Context) error
	Import(ctx context.Context) error
	Accounts(ctx context.Context) error
	Forget(ctx context.Context, id string) error
}

const helpText = "Available commands: signin, status, import, accounts, forget <id>, exit"

// runREPL reads one command per line from reader and dispatches it to a. The
// prompt shows statusFn. The loop ends on EOF, on "exit" or "quit", or when
// ctx is done.
//
// Command errors are not fatal; handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("onetap [%s]> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "signin", "login":
			_ = a.SignIn(ctx)

		case "status":
			_ = a.ShowStatus(ctx)

		case "import":
			_ = a.Import(ctx)

		case "accounts", "list":
			_ = a.Accounts(ctx)

		case "forget":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.Forget(ctx, id)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
