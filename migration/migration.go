package migration

import (
	"strconv"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"gorm.io/gorm"
)

// Kind classifies an entry. The vocabulary covers every transformation
// the catalog may need; rename has no entry yet.
type Kind string

var (
	KindCreateTable   = enum.New(Kind("create_table"))
	KindAddColumn     = enum.New(Kind("add_column"))
	KindAddConstraint = enum.New(Kind("add_constraint"))
	KindAddIndex      = enum.New(Kind("add_index"))
	KindAlterColumn   = enum.New(Kind("alter_column"))
	KindBackfill      = enum.New(Kind("backfill"))
	KindRename        = enum.New(Kind("rename"))
)

// Loss describes the rows a rollback deletes. Count runs before anything is
// touched, Purge runs in its own transaction with foreign keys enforced so
// that dependent rows go with it.
type Loss struct {
	Description string
	Count       func(tx *gorm.DB) (int64, error)
	Purge       func(tx *gorm.DB) error
}

type Migration struct {
	ID   string
	Name string
	Kind Kind

	// Rebuild marks entries that recreate a table through a shadow copy on
	// sqlite. Foreign key enforcement is switched off around them.
	Rebuild bool
	Loss    *Loss

	Up   func(tx *gorm.DB) error
	Down func(tx *gorm.DB) error
}

func (m *Migration) String() string {
	return m.ID + "_" + m.Name
}

// Migrations returns the catalog in application order.
func Migrations() []*Migration {
	return []*Migration{
		migration0001,
		migration0002,
		migration0003,
		migration0004,
		migration0005,
		migration0006,
		migration0007,
		migration0008,
		migration0009,
		migration0010,
		migration0011,
		migration0012,
		migration0013,
		migration0014,
		migration0015,
		migration0016,
		migration0017,
		migration0018,
	}
}

// Validate checks the catalog without touching a store.
func Validate(list []*Migration) error {
	if len(list) == 0 {
		return errorx.New(errorx.InvalidCatalog, "Catalog is empty")
	}

	names := map[string]string{}
	previous := -1
	for i, m := range list {
		if m == nil {
			return errorx.New(errorx.InvalidCatalog, "Entry #%d is nil", i)
		}

		n, err := strconv.Atoi(m.ID)
		if err != nil || n < 0 {
			return errorx.New(errorx.InvalidCatalog, "Entry #%d has a non numeric id %q", i, m.ID)
		}

		if i > 0 && len(m.ID) != len(list[0].ID) {
			return errorx.New(errorx.InvalidCatalog, "Entry %s is not padded like %s", m.ID, list[0].ID)
		}

		if n <= previous {
			return errorx.New(errorx.InvalidCatalog, "Entry %s is out of order", m.ID)
		}
		previous = n

		if m.Name == "" {
			return errorx.New(errorx.InvalidCatalog, "Entry %s has no name", m.ID)
		}

		if other, ok := names[m.Name]; ok {
			return errorx.New(errorx.InvalidCatalog, "Entries %s and %s share the name %s", other, m.ID, m.Name)
		}
		names[m.Name] = m.ID

		if !enum.IsValid(m.Kind) {
			return errorx.New(errorx.InvalidCatalog, "Entry %s has unknown kind %q", m, m.Kind)
		}

		if m.Up == nil || m.Down == nil {
			return errorx.New(errorx.InvalidCatalog, "Entry %s must define both up and down", m)
		}

		if m.Loss != nil && (m.Loss.Count == nil || m.Loss.Purge == nil) {
			return errorx.New(errorx.InvalidCatalog, "Entry %s declares a loss without count and purge", m)
		}
	}

	return nil
}

func isSQLite(db *gorm.DB) bool {
	return db.Dialector.Name() == "sqlite"
}
