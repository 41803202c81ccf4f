package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/SW1MD/dnd-proj-sub001/config"
	"github.com/SW1MD/dnd-proj-sub001/migration"
	"github.com/SW1MD/dnd-proj-sub001/pkg/database"
	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/SW1MD/dnd-proj-sub001/pkg/logger"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) prepare() error {
	if err := s.loadRunner(); err != nil {
		return err
	}

	return s.loadDatabase()
}

func (s *srv) startUp(cctx *cli.Context) error {
	if err := s.prepare(); err != nil {
		return err
	}

	var applied []string
	var err error
	if to := cctx.String("to"); to != "" {
		applied, err = s.runner.UpTo(s.ctx, to)
	} else {
		applied, err = s.runner.Up(s.ctx)
	}

	s.report("Applied", applied)
	return err
}

func (s *srv) startDown(cctx *cli.Context) error {
	if err := s.prepare(); err != nil {
		return err
	}

	opts := migration.RollbackOptions{ConfirmDestructive: cctx.Bool("confirm-destructive")}

	var rolledBack []string
	var err error
	switch {
	case cctx.Bool("all"):
		rolledBack, err = s.runner.DownTo(s.ctx, "", opts)
	case cctx.String("to") != "":
		rolledBack, err = s.runner.DownTo(s.ctx, cctx.String("to"), opts)
	default:
		rolledBack, err = s.runner.Down(s.ctx, cctx.Int("steps"), opts)
	}

	s.report("Rolled back", rolledBack)
	return err
}

func (s *srv) report(verb string, ids []string) {
	if len(ids) == 0 {
		xcontext.Logger(s.ctx).Infof("%s nothing", verb)
		return
	}

	xcontext.Logger(s.ctx).Infof("%s %s", verb, strings.Join(ids, ", "))
}

func (s *srv) startStatus(cctx *cli.Context) error {
	if err := s.prepare(); err != nil {
		return err
	}

	status, err := s.runner.Status(s.ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tKIND\tAPPLIED\tNOTE")
	for _, st := range status {
		note := ""
		if st.Migration.Loss != nil {
			note = "destructive rollback"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", st.Migration.ID, st.Migration.Name, st.Migration.Kind, st.Applied, note)
	}

	return w.Flush()
}

// startValidate checks the catalog, then applies and rolls back all of it on
// a throwaway in-memory store.
func (s *srv) startValidate(cctx *cli.Context) error {
	if err := s.loadRunner(); err != nil {
		return err
	}

	env, err := config.Resolve(string(config.Test), xcontext.Configs(s.ctx))
	if err != nil {
		return err
	}

	db, err := database.Open(env, logger.NewLogger(logger.SILENCE))
	if err != nil {
		return err
	}
	defer database.Close(db)

	ctx := xcontext.WithDB(s.ctx, db)
	if _, err := s.runner.Up(ctx); err != nil {
		return err
	}

	if _, err := s.runner.DownTo(ctx, "", migration.RollbackOptions{}); err != nil {
		return err
	}

	shape, err := s.runner.Inspect(ctx)
	if err != nil {
		return err
	}

	if tables := shape.TableNames(); len(tables) > 0 {
		return errorx.New(errorx.InvalidCatalog, "Full rollback left tables behind: %s", strings.Join(tables, ", "))
	}

	xcontext.Logger(s.ctx).Infof("Catalog of %d migrations is valid", len(migration.Migrations()))
	return nil
}

func (s *srv) startInspect(cctx *cli.Context) error {
	if err := s.prepare(); err != nil {
		return err
	}

	shape, err := s.runner.Inspect(s.ctx)
	if err != nil {
		return err
	}

	for _, name := range shape.TableNames() {
		table := shape.Tables[name]
		fmt.Println(name)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, c := range table.Columns {
			flags := []string{}
			if c.PrimaryKey {
				flags = append(flags, "pk")
			}
			if c.NotNull {
				flags = append(flags, "not null")
			}
			if c.Default != "" {
				flags = append(flags, "default "+c.Default)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Name, c.Type, strings.Join(flags, ", "))
		}
		for _, idx := range table.Indexes {
			kind := "index"
			if idx.Unique {
				kind = "unique index"
			}
			fmt.Fprintf(w, "  %s\t%s\t(%s)\n", kind, idx.Name, strings.Join(idx.Columns, ", "))
		}
		for _, c := range table.Constraints {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Kind, c.Name, c.Definition)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}

func (s *srv) startEnv(cctx *cli.Context) error {
	if err := s.loadEnvironment(); err != nil {
		return err
	}

	pool := s.env.Pool()
	dsn := s.env.DSN()
	if prod, ok := s.env.(config.ProductionEnvironment); ok {
		dsn = prod.Database.RedactedConnectionString()
	}

	fmt.Printf("environment: %s\ndialect: %s\ndsn: %s\npool: min idle %d, max open %d\n",
		s.env.Name(), s.env.Dialect(), dsn, pool.MinIdle, pool.MaxOpen)
	return nil
}
