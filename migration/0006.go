package migration

import (
	"gorm.io/gorm"
)

type gameSession6 struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	CurrentMapID *string `gorm:"type:uuid"`
	CurrentMap   *map5   `gorm:"constraint:OnDelete:SET NULL"`
}

func (gameSession6) TableName() string { return "game_sessions" }

const currentMapConstraint6 = "CONSTRAINT `fk_game_sessions_current_map` FOREIGN KEY (`current_map_id`) " +
	"REFERENCES `maps`(`id`) ON DELETE SET NULL"

var migration0006 = &Migration{
	ID:      "0006",
	Name:    "add_game_sessions_current_map_fk",
	Kind:    KindAddConstraint,
	Rebuild: true,
	Up: func(tx *gorm.DB) error {
		if isSQLite(tx) {
			return rebuildTable(tx, "game_sessions", appendTableClause(currentMapConstraint6))
		}

		return tx.Migrator().CreateConstraint(&gameSession6{}, "CurrentMap")
	},
	Down: func(tx *gorm.DB) error {
		if isSQLite(tx) {
			return rebuildTable(tx, "game_sessions", removeTableClause(currentMapConstraint6))
		}

		return tx.Migrator().DropConstraint(&gameSession6{}, "CurrentMap")
	},
}
