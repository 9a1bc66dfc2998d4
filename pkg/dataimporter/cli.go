package dataimporter

import (
	"github.com/railbooker/railbooker/pkg/database"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import the reference JSON datasets into the database",
		Subcommands: []*cli.Command{
			{
				Name:  "dataset",
				Usage: "Import trains, stations & passengers from a data directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "directory",
						Value: "data",
						Usage: "directory containing trains.json, stations.json & passengers.json",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "dump the first record of each dataset after import",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					return ImportDirectory(c.Context, c.String("directory"), c.Bool("verbose"))
				},
			},
		},
	}
}
