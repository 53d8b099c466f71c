// Package cli implements the interactive command-line client.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/badriyvp/musegen/internal/client/api"
	"github.com/badriyvp/musegen/internal/client/config"
	"github.com/badriyvp/musegen/internal/client/session"
	"github.com/badriyvp/musegen/internal/client/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	client  api.Client
	session *session.Session
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout, c.GenerationTimeout)

	// The probe is advisory only: commands still work once the server is back.
	if err := apiClient.Ping(ctx); err != nil {
		log.Printf("warning: server %s is not reachable: %s", c.ServerURL, err.Error())
	}

	sess := session.New(apiClient, db)
	if err := sess.Init(ctx); err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, session: sess, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
