package migration

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

const shadowSuffix = "__shadow"

type rewriteFunc func(ddl string) (string, error)

// rebuildTable recreates table with the DDL returned by rewrite. Rows are
// copied into a shadow table first, so the original is only dropped once
// the new shape holds all the data. Foreign key enforcement must be off,
// otherwise dropping the original cascades into its children.
func rebuildTable(tx *gorm.DB, table string, rewrite rewriteFunc) error {
	var ddl string
	if err := tx.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).
		Scan(&ddl).Error; err != nil {
		return err
	}

	if ddl == "" {
		return fmt.Errorf("table %s does not exist", table)
	}

	var indexes []string
	if err := tx.Raw("SELECT sql FROM sqlite_master WHERE type = 'index' AND tbl_name = ? AND sql IS NOT NULL ORDER BY name", table).
		Scan(&indexes).Error; err != nil {
		return err
	}

	newDDL, err := rewrite(ddl)
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", table, err)
	}

	shadowDDL, err := renameCreateTable(newDDL, table, table+shadowSuffix)
	if err != nil {
		return err
	}

	steps := []string{
		shadowDDL,
		fmt.Sprintf("INSERT INTO `%s%s` SELECT * FROM `%s`", table, shadowSuffix, table),
		fmt.Sprintf("DROP TABLE `%s`", table),
		fmt.Sprintf("ALTER TABLE `%s%s` RENAME TO `%s`", table, shadowSuffix, table),
	}
	steps = append(steps, indexes...)

	for _, stmt := range steps {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("rebuild %s: %w", table, err)
		}
	}

	return checkForeignKeys(tx, table)
}

func checkForeignKeys(tx *gorm.DB, table string) error {
	rows, err := tx.Raw(fmt.Sprintf("PRAGMA foreign_key_check(`%s`)", table)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	violations := 0
	for rows.Next() {
		violations++
	}

	if err := rows.Err(); err != nil {
		return err
	}

	if violations > 0 {
		return fmt.Errorf("%d rows of %s violate a foreign key after rebuild", violations, table)
	}

	return nil
}

var createTableRegexp = regexp.MustCompile("^(?i)CREATE TABLE\\s+[`\"]?([\\w]+)[`\"]?")

func renameCreateTable(ddl, from, to string) (string, error) {
	loc := createTableRegexp.FindStringSubmatchIndex(ddl)
	if loc == nil || ddl[loc[2]:loc[3]] != from {
		return "", fmt.Errorf("unexpected definition of %s", from)
	}

	return ddl[:loc[0]] + "CREATE TABLE `" + to + "`" + ddl[loc[1]:], nil
}

// appendTableClause adds a table constraint after the last column or
// constraint definition.
func appendTableClause(clause string) rewriteFunc {
	return func(ddl string) (string, error) {
		if strings.Contains(ddl, clause) {
			return "", fmt.Errorf("clause already present")
		}

		end := strings.LastIndex(ddl, ")")
		if end < 0 {
			return "", fmt.Errorf("malformed definition")
		}

		return strings.TrimRight(ddl[:end], " \n\t") + "," + clause + ddl[end:], nil
	}
}

func removeTableClause(clause string) rewriteFunc {
	return func(ddl string) (string, error) {
		switch {
		case strings.Contains(ddl, ","+clause):
			return strings.Replace(ddl, ","+clause, "", 1), nil
		case strings.Contains(ddl, clause+","):
			return strings.Replace(ddl, clause+",", "", 1), nil
		}

		return "", fmt.Errorf("clause not present")
	}
}

// setColumnNotNull toggles NOT NULL on the definition of column. Only the
// column definition matches: a reference such as FOREIGN KEY (`col`) is
// followed by a parenthesis, not by a type.
func setColumnNotNull(column string, notNull bool) rewriteFunc {
	re := regexp.MustCompile("([`\"]" + regexp.QuoteMeta(column) + "[`\"]\\s+\\w+)( NOT NULL)?")

	return func(ddl string) (string, error) {
		m := re.FindStringSubmatchIndex(ddl)
		if m == nil {
			return "", fmt.Errorf("column %s not found", column)
		}

		hasNotNull := m[4] >= 0
		if hasNotNull == notNull {
			return "", fmt.Errorf("column %s already has the requested nullability", column)
		}

		def := ddl[m[2]:m[3]]
		if notNull {
			def += " NOT NULL"
		}

		return ddl[:m[0]] + def + ddl[m[1]:], nil
	}
}
