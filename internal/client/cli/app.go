package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/lockerrelay/internal/client/client"
	"github.com/dmitrijs2005/lockerrelay/internal/client/config"
	"github.com/dmitrijs2005/lockerrelay/internal/common"
)

// ErrUnknownCommand is returned by Run for commands it does not know.
var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: lockerrelay-client [-c config.json] [-s server_url] [-t timeout_seconds] <command>

commands:
  login              log in and show the assigned locker
  clear [lockerId]   clear locker notifications (own locker when omitted)
  help               show this message
`

type App struct {
	api    client.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds an App that talks to the server named in c and uses the
// process stdin/stdout.
func NewApp(c *config.Config) *App {
	return newApp(client.NewHTTPClient(c.ServerURL, c.Timeout), os.Stdin, os.Stdout)
}

func newApp(api client.Client, in io.Reader, out io.Writer) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out}
}

// Run executes the command given in args (without flags).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	switch args[0] {
	case "login":
		_, err := a.Login(ctx)
		return err
	case "clear":
		lockerID := ""
		if len(args) > 1 {
			lockerID = args[1]
		}
		return a.Clear(ctx, lockerID)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// Login prompts for credentials and returns the login result.
func (a *App) Login(ctx context.Context) (*client.LoginResult, error) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return nil, err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Login(ctx, username, string(password))
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	fmt.Fprintf(a.out, "%s. Locker: %s\n", res.Message, res.LockerID)
	return res, nil
}

// Clear removes the notifications of lockerID. An empty lockerID means the
// locker of the user who logs in.
func (a *App) Clear(ctx context.Context, lockerID string) error {
	if lockerID == "" {
		res, err := a.Login(ctx)
		if err != nil {
			return err
		}
		lockerID = res.LockerID
	}

	msg, err := a.api.ClearNotifications(ctx, lockerID)
	if err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}

	fmt.Fprintln(a.out, msg)
	return nil
}
