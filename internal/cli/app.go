package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Shivam2709/attendance-cli/internal/api"
	"github.com/Shivam2709/attendance-cli/internal/config"
	"github.com/Shivam2709/attendance-cli/internal/guard"
	"github.com/Shivam2709/attendance-cli/internal/kvstore"
	"github.com/Shivam2709/attendance-cli/internal/notify"
	"github.com/Shivam2709/attendance-cli/internal/session"
)

// app wires the client components together for one command invocation. The
// session store is handed explicitly to everything that needs it; there is
// no ambient auth state.
type app struct {
	cfg      *config.Config
	session  *session.Store
	client   *api.Client
	notifier notify.Notifier
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	kv, err := openState(cfg.State)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(kv)
	client := api.NewClient(cfg.Server.URL, sess, time.Duration(cfg.Server.TimeoutSeconds)*time.Second)

	return &app{
		cfg:      cfg,
		session:  sess,
		client:   client,
		notifier: notify.NewTerminal(),
	}, nil
}

func openState(st config.StateConfig) (kvstore.Store, error) {
	switch st.Backend {
	case "", "file":
		return kvstore.OpenFile(st.Path)
	case "sqlite":
		return kvstore.OpenSQLite(st.Path)
	default:
		return nil, fmt.Errorf("unknown state backend %q (use file or sqlite)", st.Backend)
	}
}

// gate runs render only if the guard admits the current session to the
// surface, translating redirect decisions into command-line guidance.
func (a *app) gate(surface guard.Surface, render func() error) error {
	dec, err := guard.Gate(surface, a.session.Snapshot(), render)
	if dec.Render {
		return err
	}
	switch dec.Target {
	case guard.RouteLogin:
		return errors.New("you are not logged in; run 'attend login' first")
	default:
		return errors.New("admin access required")
	}
}

// failMessage picks the user-facing text for a failed round trip: the
// server's message when it sent one, else the fallback.
func failMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// readLine reads one trimmed line from stdin.
func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
