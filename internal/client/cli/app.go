// Package cli implements the interactive AuthAPI client. It prompts for
// credentials, talks to the server through the client package and keeps the
// issued token in memory for the duration of the session.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dkrasnov/authapi/internal/client/client"
	"github.com/dkrasnov/authapi/internal/client/config"
)

type App struct {
	config   *config.Config
	api      client.Client
	reader   *bufio.Reader
	userName string
	token    string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, c.APIKey, c.RequestTimeout)
	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}
