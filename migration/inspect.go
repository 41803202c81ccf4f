package migration

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"gorm.io/gorm"
)

type ConstraintKind string

const (
	ConstraintPrimaryKey ConstraintKind = "primary_key"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintCheck      ConstraintKind = "check"
)

// Shape is the observable schema of a store: every user table with its
// columns, indexes and constraints, sorted so two shapes compare with ==
// semantics through reflect.DeepEqual.
type Shape struct {
	Tables map[string]*Table
}

type Table struct {
	Name        string
	Columns     []Column
	Indexes     []Index
	Constraints []Constraint
}

type Column struct {
	Name       string
	Type       string
	NotNull    bool
	Default    string
	PrimaryKey bool
}

type Index struct {
	Name    string
	Columns []string
	Unique  bool
}

type Constraint struct {
	Kind       ConstraintKind
	Name       string
	Definition string
}

func (s *Shape) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for name := range s.Tables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return Column{}, false
}

func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}

	return names
}

func (t *Table) ConstraintsOf(kind ConstraintKind) []Constraint {
	var result []Constraint
	for _, c := range t.Constraints {
		if c.Kind == kind {
			result = append(result, c)
		}
	}

	return result
}

// Inspect describes the store bound to ctx. The bookkeeping table is left
// out.
func (r *Runner) Inspect(ctx context.Context) (*Shape, error) {
	db, err := database(ctx)
	if err != nil {
		return nil, err
	}

	return Inspect(db, r.opts.TableName)
}

func Inspect(db *gorm.DB, bookkeeping string) (*Shape, error) {
	var inspector interface {
		tables() ([]string, error)
		table(name string) (*Table, error)
	}

	switch db.Dialector.Name() {
	case "sqlite":
		inspector = sqliteInspector{db: db}
	case "postgres":
		inspector = postgresInspector{db: db}
	default:
		return nil, errorx.New(errorx.NotImplemented, "Cannot inspect a %s store", db.Dialector.Name())
	}

	names, err := inspector.tables()
	if err != nil {
		return nil, err
	}

	shape := &Shape{Tables: map[string]*Table{}}
	for _, name := range names {
		if name == bookkeeping {
			continue
		}

		t, err := inspector.table(name)
		if err != nil {
			return nil, fmt.Errorf("inspect %s: %w", name, err)
		}

		sort.Slice(t.Indexes, func(i, j int) bool { return t.Indexes[i].Name < t.Indexes[j].Name })
		sort.Slice(t.Constraints, func(i, j int) bool {
			if t.Constraints[i].Kind != t.Constraints[j].Kind {
				return t.Constraints[i].Kind < t.Constraints[j].Kind
			}
			if t.Constraints[i].Name != t.Constraints[j].Name {
				return t.Constraints[i].Name < t.Constraints[j].Name
			}
			return t.Constraints[i].Definition < t.Constraints[j].Definition
		})
		shape.Tables[name] = t
	}

	return shape, nil
}

type sqliteInspector struct {
	db *gorm.DB
}

func (i sqliteInspector) tables() ([]string, error) {
	var names []string
	err := i.db.Raw("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name").
		Scan(&names).Error

	return names, err
}

func (i sqliteInspector) table(name string) (*Table, error) {
	t := &Table{Name: name}

	var columns []struct {
		Name    string
		Type    string
		NotNull bool `gorm:"column:notnull"`
		Default sql.NullString
		PK      int
	}
	if err := i.db.Raw(`SELECT name, type, "notnull", dflt_value AS "default", pk FROM pragma_table_info(?) ORDER BY cid`, name).
		Scan(&columns).Error; err != nil {
		return nil, err
	}

	var pk []string
	for _, c := range columns {
		t.Columns = append(t.Columns, Column{
			Name:       c.Name,
			Type:       strings.ToLower(c.Type),
			NotNull:    c.NotNull,
			Default:    c.Default.String,
			PrimaryKey: c.PK > 0,
		})
		if c.PK > 0 {
			pk = append(pk, c.Name)
		}
	}

	if len(pk) > 0 {
		t.Constraints = append(t.Constraints, Constraint{
			Kind:       ConstraintPrimaryKey,
			Definition: "PRIMARY KEY (" + strings.Join(pk, ", ") + ")",
		})
	}

	var indexes []struct {
		Name   string
		Unique bool
		Origin string
	}
	if err := i.db.Raw(`SELECT name, "unique", origin FROM pragma_index_list(?)`, name).
		Scan(&indexes).Error; err != nil {
		return nil, err
	}

	for _, idx := range indexes {
		if idx.Origin == "pk" {
			continue
		}

		var cols []string
		if err := i.db.Raw("SELECT name FROM pragma_index_info(?) ORDER BY seqno", idx.Name).
			Scan(&cols).Error; err != nil {
			return nil, err
		}

		t.Indexes = append(t.Indexes, Index{Name: idx.Name, Columns: cols, Unique: idx.Unique})
	}

	var fks []struct {
		ID       int
		Table    string
		From     string
		To       string
		OnDelete string
	}
	if err := i.db.Raw(`SELECT id, "table", "from", "to", on_delete FROM pragma_foreign_key_list(?) ORDER BY id, seq`, name).
		Scan(&fks).Error; err != nil {
		return nil, err
	}

	// sqlite does not report constraint names for foreign keys.
	for _, fk := range fks {
		t.Constraints = append(t.Constraints, Constraint{
			Kind: ConstraintForeignKey,
			Definition: fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE %s",
				fk.From, fk.Table, fk.To, fk.OnDelete),
		})
	}

	var ddl string
	if err := i.db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", name).
		Scan(&ddl).Error; err != nil {
		return nil, err
	}

	checks, err := parseChecks(ddl)
	if err != nil {
		return nil, err
	}
	t.Constraints = append(t.Constraints, checks...)

	return t, nil
}

var checkRegexp = regexp.MustCompile("(?i)CONSTRAINT\\s+[`\"]?(\\w+)[`\"]?\\s+CHECK\\s*\\(")

// parseChecks extracts named CHECK constraints from a CREATE TABLE
// statement. Bodies are matched by balancing parentheses; string literals
// in the vocabularies never contain one.
func parseChecks(ddl string) ([]Constraint, error) {
	var result []Constraint
	for _, m := range checkRegexp.FindAllStringSubmatchIndex(ddl, -1) {
		start := m[1]
		depth := 1
		end := -1
		for i := start; i < len(ddl) && end < 0; i++ {
			switch ddl[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = i
				}
			}
		}

		if end < 0 {
			return nil, fmt.Errorf("unbalanced check constraint %s", ddl[m[2]:m[3]])
		}

		result = append(result, Constraint{
			Kind:       ConstraintCheck,
			Name:       ddl[m[2]:m[3]],
			Definition: strings.TrimSpace(ddl[start:end]),
		})
	}

	return result, nil
}

type postgresInspector struct {
	db *gorm.DB
}

func (i postgresInspector) tables() ([]string, error) {
	var names []string
	err := i.db.Raw(`SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() AND table_type = 'BASE TABLE' ORDER BY table_name`).
		Scan(&names).Error

	return names, err
}

func (i postgresInspector) table(name string) (*Table, error) {
	t := &Table{Name: name}

	var pk []string
	if err := i.db.Raw(`SELECT a.attname FROM pg_index i
		JOIN pg_attribute a ON a.attrelid = i.indrelid AND a.attnum = ANY(i.indkey)
		WHERE i.indrelid = ?::regclass AND i.indisprimary`, name).
		Scan(&pk).Error; err != nil {
		return nil, err
	}

	var columns []struct {
		ColumnName    string
		DataType      string
		IsNullable    string
		ColumnDefault sql.NullString
	}
	if err := i.db.Raw(`SELECT column_name, data_type, is_nullable, column_default
		FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = ? ORDER BY ordinal_position`, name).
		Scan(&columns).Error; err != nil {
		return nil, err
	}

	for _, c := range columns {
		t.Columns = append(t.Columns, Column{
			Name:       c.ColumnName,
			Type:       strings.ToLower(c.DataType),
			NotNull:    c.IsNullable == "NO",
			Default:    c.ColumnDefault.String,
			PrimaryKey: contains(pk, c.ColumnName),
		})
	}

	var indexes []struct {
		Indexname string
		Indexdef  string
	}
	if err := i.db.Raw(`SELECT indexname, indexdef FROM pg_indexes
		WHERE schemaname = current_schema() AND tablename = ?
		AND indexname NOT IN (SELECT conname FROM pg_constraint WHERE conrelid = ?::regclass AND contype IN ('p', 'u'))`,
		name, name).
		Scan(&indexes).Error; err != nil {
		return nil, err
	}

	for _, idx := range indexes {
		t.Indexes = append(t.Indexes, Index{
			Name:    idx.Indexname,
			Columns: indexColumns(idx.Indexdef),
			Unique:  strings.HasPrefix(idx.Indexdef, "CREATE UNIQUE"),
		})
	}

	var constraints []struct {
		Conname    string
		Contype    string
		Definition string
	}
	if err := i.db.Raw(`SELECT conname, contype, pg_get_constraintdef(oid) AS definition
		FROM pg_constraint WHERE conrelid = ?::regclass`, name).
		Scan(&constraints).Error; err != nil {
		return nil, err
	}

	kinds := map[string]ConstraintKind{
		"p": ConstraintPrimaryKey,
		"f": ConstraintForeignKey,
		"u": ConstraintUnique,
		"c": ConstraintCheck,
	}
	for _, c := range constraints {
		kind, ok := kinds[c.Contype]
		if !ok {
			continue
		}

		t.Constraints = append(t.Constraints, Constraint{Kind: kind, Name: c.Conname, Definition: c.Definition})
	}

	return t, nil
}

func indexColumns(def string) []string {
	open := strings.LastIndex(def, "(")
	end := strings.LastIndex(def, ")")
	if open < 0 || end < open {
		return nil
	}

	var cols []string
	for _, c := range strings.Split(def[open+1:end], ",") {
		cols = append(cols, strings.Trim(strings.TrimSpace(c), `"`))
	}

	return cols
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
