package migration

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultPreferences13 = `{"theme":"dark","notifications":true,"sound_enabled":true,"dice_animations":true}`
	defaultStats13       = `{"games_played":0,"characters_created":0,"dice_rolled":0,"critical_hits":0,"hours_played":0}`
)

// Rolling back keeps the filled values; they are indistinguishable from ones
// the application wrote.
var migration0013 = &Migration{
	ID:   "0013",
	Name: "backfill_users_profile_defaults",
	Kind: KindBackfill,
	Up: func(tx *gorm.DB) error {
		if err := tx.Model(&user12{}).Where("preferences IS NULL").
			UpdateColumn("preferences", datatypes.JSON(defaultPreferences13)).Error; err != nil {
			return err
		}

		return tx.Model(&user12{}).Where("stats IS NULL").
			UpdateColumn("stats", datatypes.JSON(defaultStats13)).Error
	},
	Down: func(tx *gorm.DB) error {
		return nil
	},
}
