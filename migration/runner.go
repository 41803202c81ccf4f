package migration

import (
	"context"
	"errors"
	"sort"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

type Options struct {
	TableName string
	LockKey   int64
}

type RollbackOptions struct {
	// ConfirmDestructive allows rollbacks that delete rows.
	ConfirmDestructive bool
}

type Status struct {
	Migration *Migration
	Applied   bool
}

// Runner applies and rolls back the catalog through gormigrate. Every
// entry gets its own transaction, and a whole run holds the store lock.
// The applied set is read after the lock is taken, so concurrent runs
// never report the same entry.
type Runner struct {
	list []*Migration
	opts Options
}

func NewRunner(list []*Migration, opts Options) (*Runner, error) {
	if err := Validate(list); err != nil {
		return nil, err
	}

	if opts.TableName == "" {
		opts.TableName = "schema_migrations"
	}

	return &Runner{list: list, opts: opts}, nil
}

func (r *Runner) gormigrate(db *gorm.DB) *gormigrate.Gormigrate {
	opts := *gormigrate.DefaultOptions
	opts.TableName = r.opts.TableName
	opts.UseTransaction = true
	opts.ValidateUnknownMigrations = true

	list := make([]*gormigrate.Migration, 0, len(r.list))
	for _, m := range r.list {
		list = append(list, &gormigrate.Migration{
			ID:       m.ID,
			Migrate:  m.Up,
			Rollback: m.Down,
		})
	}

	return gormigrate.New(db, &opts, list)
}

// Up applies every pending entry and returns the IDs it applied.
func (r *Runner) Up(ctx context.Context) ([]string, error) {
	return r.UpTo(ctx, r.list[len(r.list)-1].ID)
}

// UpTo applies pending entries up to and including id.
func (r *Runner) UpTo(ctx context.Context, id string) ([]string, error) {
	target := r.index(id)
	if target < 0 {
		return nil, errorx.New(errorx.NotFound, "Unknown migration %s", id)
	}

	store, err := database(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	err = withLock(store, r.opts.LockKey, func(db *gorm.DB) error {
		log := xcontext.Logger(ctx)
		if name := db.Dialector.Name(); name != "sqlite" && name != "postgres" {
			log.Warnf("Dialect %s has no transactional DDL, a failed entry may be partially applied", name)
		}

		applied, err := r.applied(db)
		if err != nil {
			return err
		}

		g := r.gormigrate(db)
		for _, m := range r.list[:target+1] {
			if applied[m.ID] {
				continue
			}

			log.Infof("Applying %s", m)
			err := r.withForeignKeysOff(db, m, func() error {
				return g.MigrateTo(m.ID)
			})
			if err != nil {
				return migrationError(m, err)
			}

			done = append(done, m.ID)
		}

		return nil
	})

	return done, err
}

// Down rolls back the last steps applied entries.
func (r *Runner) Down(ctx context.Context, steps int, opts RollbackOptions) ([]string, error) {
	if steps <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Steps must be positive, got %d", steps)
	}

	return r.rollback(ctx, opts, func(applied []*Migration) []*Migration {
		if steps > len(applied) {
			steps = len(applied)
		}

		return applied[len(applied)-steps:]
	})
}

// DownTo rolls back every applied entry after id. An empty id rolls back
// everything.
func (r *Runner) DownTo(ctx context.Context, id string, opts RollbackOptions) ([]string, error) {
	target := -1
	if id != "" {
		target = r.index(id)
		if target < 0 {
			return nil, errorx.New(errorx.NotFound, "Unknown migration %s", id)
		}
	}

	return r.rollback(ctx, opts, func(applied []*Migration) []*Migration {
		var plan []*Migration
		for _, m := range applied {
			if r.index(m.ID) > target {
				plan = append(plan, m)
			}
		}

		return plan
	})
}

func (r *Runner) rollback(
	ctx context.Context,
	opts RollbackOptions,
	choose func(applied []*Migration) []*Migration,
) ([]string, error) {
	store, err := database(ctx)
	if err != nil {
		return nil, err
	}

	var done []string
	err = withLock(store, r.opts.LockKey, func(db *gorm.DB) error {
		log := xcontext.Logger(ctx)

		appliedIDs, err := r.applied(db)
		if err != nil {
			return err
		}

		var applied []*Migration
		for _, m := range r.list {
			if appliedIDs[m.ID] {
				applied = append(applied, m)
			}
		}

		plan := choose(applied)

		// Losses are counted for the whole plan before anything is touched.
		losses := map[string]int64{}
		for _, m := range plan {
			if m.Loss == nil {
				continue
			}

			n, err := m.Loss.Count(db)
			if err != nil {
				return errorx.Wrap(errorx.RollbackFailed, err, "Cannot count rows lost by rolling back %s", m)
			}

			if n > 0 && !opts.ConfirmDestructive {
				return errorx.New(errorx.DestructiveRollback,
					"Rolling back %s deletes %d rows (%s), confirmation required", m, n, m.Loss.Description)
			}
			losses[m.ID] = n
		}

		g := r.gormigrate(db)
		for i := len(plan) - 1; i >= 0; i-- {
			m := plan[i]

			if n := losses[m.ID]; n > 0 {
				log.Warnf("Rolling back %s deletes %d rows: %s", m, n, m.Loss.Description)
				if err := db.Transaction(m.Loss.Purge); err != nil {
					return errorx.Wrap(errorx.RollbackFailed, err, "Cannot purge rows for %s", m)
				}
			}

			log.Infof("Rolling back %s", m)
			err := r.withForeignKeysOff(db, m, g.RollbackLast)
			if err != nil {
				return errorx.Wrap(errorx.RollbackFailed, err, "Rollback of %s failed", m)
			}

			done = append(done, m.ID)
		}

		return nil
	})

	return done, err
}

func (r *Runner) Status(ctx context.Context) ([]Status, error) {
	store, err := database(ctx)
	if err != nil {
		return nil, err
	}

	applied, err := r.applied(store)
	if err != nil {
		return nil, err
	}

	result := make([]Status, 0, len(r.list))
	for _, m := range r.list {
		result = append(result, Status{Migration: m, Applied: applied[m.ID]})
	}

	return result, nil
}

// Applied returns the IDs recorded in the bookkeeping table, ascending.
func (r *Runner) Applied(ctx context.Context) ([]string, error) {
	store, err := database(ctx)
	if err != nil {
		return nil, err
	}

	applied, err := r.applied(store)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(applied))
	for id := range applied {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

func (r *Runner) applied(db *gorm.DB) (map[string]bool, error) {
	result := map[string]bool{}
	if !db.Migrator().HasTable(r.opts.TableName) {
		return result, nil
	}

	var ids []string
	if err := db.Table(r.opts.TableName).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	for _, id := range ids {
		if r.index(id) < 0 {
			return nil, errorx.New(errorx.InvalidCatalog, "Store has applied %s which is not in the catalog", id)
		}
		result[id] = true
	}

	return result, nil
}

func database(ctx context.Context) (*gorm.DB, error) {
	db := xcontext.DB(ctx)
	if db == nil {
		return nil, errorx.New(errorx.Internal, "No database bound to the context")
	}

	return db, nil
}

func (r *Runner) index(id string) int {
	for i, m := range r.list {
		if m.ID == id {
			return i
		}
	}

	return -1
}

// withForeignKeysOff runs fn with sqlite foreign key enforcement disabled
// when m rebuilds a table. The pragma has no effect inside a transaction,
// so it is toggled around the entry's own transaction.
func (r *Runner) withForeignKeysOff(db *gorm.DB, m *Migration, fn func() error) error {
	if !m.Rebuild || !isSQLite(db) {
		return fn()
	}

	if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
		return err
	}

	fnErr := fn()
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil && fnErr == nil {
		return err
	}

	return fnErr
}

func migrationError(m *Migration, err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errorx.Wrap(errorx.MigrationFailed, err, "Migration %s failed on a constraint violation", m)
	case errors.Is(err, gormigrate.ErrUnknownPastMigration):
		return errorx.Wrap(errorx.InvalidCatalog, err, "Store does not match the catalog")
	}

	return errorx.Wrap(errorx.MigrationFailed, err, "Migration %s failed", m)
}
