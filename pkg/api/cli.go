package api

import (
	"context"

	"github.com/railbooker/railbooker/pkg/api/routes"
	"github.com/railbooker/railbooker/pkg/catalog"
	"github.com/railbooker/railbooker/pkg/database"
	"github.com/railbooker/railbooker/pkg/redis_client"
	"github.com/railbooker/railbooker/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					// Catalog load failure is never fatal - the engine
					// tolerates an empty snapshot.
					snapshot := loadCatalog(c.Context)

					if err := redis_client.Connect(); err != nil {
						log.Warn().Err(err).Msg("Failed to connect to Redis, search caching disabled")
					} else {
						routes.SetupSearchCache()
					}

					return SetupServer(c.String("listen"), snapshot)
				},
			},
		},
	}
}

// loadCatalog prefers the database copy of the datasets, falling back to the
// local data directory, then to an empty snapshot.
func loadCatalog(ctx context.Context) *catalog.Catalog {
	env := util.GetEnvironmentVariables()

	if err := database.Connect(); err == nil {
		return catalog.FromDatabase(ctx)
	} else {
		log.Warn().Err(err).Msg("Failed to connect to database, loading catalog from files")
	}

	directory := env["RAILBOOKER_DATA_DIRECTORY"]
	if directory == "" {
		directory = "data"
	}

	return catalog.FromFiles(directory)
}
