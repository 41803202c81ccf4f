package migration

import (
	"gorm.io/gorm"
)

const orphanPlayers18 = "character_id IS NULL"

// Observers may sit in a game without a character. Rolling back deletes
// them, and with them their actions and dice rolls.
var migration0018 = &Migration{
	ID:      "0018",
	Name:    "make_game_players_character_nullable",
	Kind:    KindAlterColumn,
	Rebuild: true,
	Loss: &Loss{
		Description: "game_players rows without a character are deleted, cascading to their game_actions and dice_rolls",
		Count: func(tx *gorm.DB) (int64, error) {
			var n int64
			err := tx.Table("game_players").Where(orphanPlayers18).Count(&n).Error
			return n, err
		},
		Purge: purgeOrphanPlayers18,
	},
	Up: func(tx *gorm.DB) error {
		if isSQLite(tx) {
			return rebuildTable(tx, "game_players", setColumnNotNull("character_id", false))
		}

		return tx.Exec("ALTER TABLE game_players ALTER COLUMN character_id DROP NOT NULL").Error
	},
	Down: func(tx *gorm.DB) error {
		if err := purgeOrphanPlayers18(tx); err != nil {
			return err
		}

		if isSQLite(tx) {
			return rebuildTable(tx, "game_players", setColumnNotNull("character_id", true))
		}

		return tx.Exec("ALTER TABLE game_players ALTER COLUMN character_id SET NOT NULL").Error
	},
}

func purgeOrphanPlayers18(tx *gorm.DB) error {
	return tx.Exec("DELETE FROM game_players WHERE " + orphanPlayers18).Error
}
