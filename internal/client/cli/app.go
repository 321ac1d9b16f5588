package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/onetap/internal/client/client"
	"github.com/dmitrijs2005/onetap/internal/client/config"
	"github.com/dmitrijs2005/onetap/internal/client/credential"
	"github.com/dmitrijs2005/onetap/internal/client/keyring"
	"github.com/dmitrijs2005/onetap/internal/client/models"
	"github.com/dmitrijs2005/onetap/internal/client/signin"
	"github.com/dmitrijs2005/onetap/internal/client/verify"
	"github.com/dmitrijs2005/onetap/internal/filex"
	"github.com/dmitrijs2005/onetap/internal/logging"
)

// ErrSignInFailed is returned by App.SignIn when the attempt ended failed.
var ErrSignInFailed = errors.New("sign-in failed")

// accountStore is the part of *keyring.Keyring the commands use.
type accountStore interface {
	Import(ctx context.Context, clientID, rawToken string) (models.Account, error)
	List(ctx context.Context, clientID string) ([]models.Account, error)
	Forget(ctx context.Context, id string) error
}

// signer is the part of *signin.Orchestrator the commands use.
type signer interface {
	Start(ctx context.Context) (signin.Status, error)
	Wait(ctx context.Context) (signin.Status, error)
	Status() signin.Status
	Subscribe(buffer int) (<-chan signin.Status, func())
}

type App struct {
	config   *config.Config
	log      logging.Logger
	store    *client.Store
	accounts accountStore
	signer   signer
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the keyring database at c.StorePath and wires the sign-in
// flow. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(c.StorePath)
	if err != nil {
		return nil, err
	}

	store, err := client.InitDatabase(ctx, path)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.StorePath, "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		store:  store,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	kr := keyring.New(store.Accounts, &promptChooser{reader: a.reader, out: a.out},
		keyring.WithLogger(log.With("component", "keyring")),
		keyring.WithTx(store.InTx))
	acq := credential.NewAcquirer(kr, log.With("component", "credential"))
	ver := verify.New(
		verify.WithTimeout(c.VerifyTimeout),
		verify.WithLogger(log.With("component", "verify")),
	)

	orch, err := signin.New(acq, ver, signin.Settings{ClientID: c.ClientID, Endpoint: c.Endpoint},
		signin.WithLogger(log.With("component", "signin")))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("sign-in setup: %w", err)
	}

	a.accounts = kr
	a.signer = orch
	return a, nil
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run blocks until the single sign-in finishes (Once) or the user leaves the
// REPL. SIGINT and SIGTERM cancel a running attempt and end Run.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := a.initSignalHandler(cancel)
	defer stop()

	a.log.Debug(ctx, "starting", "client_id", a.config.ClientID, "endpoint", a.config.Endpoint)

	if a.config.Once {
		return a.SignIn(ctx)
	}
	a.Root(ctx)
	return nil
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
