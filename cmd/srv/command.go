package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "dndmigrate"
	app.Usage = "Apply and roll back the game database schema"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "env",
			Usage: "development, test or production (default: $APP_ENV or development)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "optional TOML file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn, error or silence (default: $LOG_LEVEL or info)",
		},
	}
	app.Before = s.loadConfig
	app.After = s.closeDatabase
	app.Commands = []*cli.Command{
		{
			Action:   s.startUp,
			Name:     "up",
			Usage:    "Apply pending migrations",
			Category: "Migration",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "to", Usage: "stop after this migration id"},
			},
		},
		{
			Action:   s.startDown,
			Name:     "down",
			Usage:    "Roll back applied migrations",
			Category: "Migration",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				&cli.StringFlag{Name: "to", Usage: "roll back everything after this migration id"},
				&cli.BoolFlag{Name: "all", Usage: "roll back every migration"},
				&cli.BoolFlag{Name: "confirm-destructive", Usage: "allow rollbacks that delete rows"},
			},
			Description: `Rolling back 0018 deletes game players without a character. It is refused
unless --confirm-destructive is given and such rows exist.`,
		},
		{
			Action:   s.startStatus,
			Name:     "status",
			Usage:    "List migrations and whether they are applied",
			Category: "Migration",
		},
		{
			Action:   s.startValidate,
			Name:     "validate",
			Usage:    "Check the catalog and rehearse it on an in-memory store",
			Category: "Migration",
		},
		{
			Action:   s.startInspect,
			Name:     "inspect",
			Usage:    "Print the schema of the store",
			Category: "Store",
		},
		{
			Action:   s.startEnv,
			Name:     "env",
			Usage:    "Print the resolved connection parameters",
			Category: "Store",
		},
	}

	s.app = app
}
