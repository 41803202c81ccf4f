package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type user12 struct {
	user1

	Preferences datatypes.JSON
	Stats       datatypes.JSON
}

func (user12) TableName() string { return "users" }

var migration0012 = &Migration{
	ID:   "0012",
	Name: "add_users_profile_columns",
	Kind: KindAddColumn,
	Up: func(tx *gorm.DB) error {
		for _, column := range []string{"Preferences", "Stats"} {
			if err := tx.Migrator().AddColumn(&user12{}, column); err != nil {
				return err
			}
		}

		return nil
	},
	// gorm's sqlite DropColumn rebuilds the whole table with foreign keys
	// enforced. The native statement only touches the column.
	Down: func(tx *gorm.DB) error {
		for _, column := range []string{"stats", "preferences"} {
			if err := tx.Exec("ALTER TABLE users DROP COLUMN " + column).Error; err != nil {
				return err
			}
		}

		return nil
	},
}
