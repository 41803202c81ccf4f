package entity

import (
	"database/sql"

	"gorm.io/datatypes"
)

type DiceRoll struct {
	Base

	GameID   string `gorm:"type:uuid"`
	PlayerID string `gorm:"type:uuid"`

	DiceType     string
	DiceCount    int
	Rolls        datatypes.JSONSlice[int]
	Modifier     int
	Result       int
	Purpose      string
	Advantage    bool
	Disadvantage bool
	IsCritical   bool

	RelatedActionID sql.NullString `gorm:"type:uuid"`
}

// Natural reports whether a die landed on 1 or on sides. With advantage
// only the highest die is kept and with disadvantage only the lowest, so
// the discarded one never counts. Both set cancel out.
func (r *DiceRoll) Natural(sides int) bool {
	if len(r.Rolls) == 0 {
		return false
	}

	if r.Advantage != r.Disadvantage {
		kept := r.Rolls[0]
		for _, v := range r.Rolls[1:] {
			if (r.Advantage && v > kept) || (r.Disadvantage && v < kept) {
				kept = v
			}
		}

		return kept == sides || kept == 1
	}

	for _, v := range r.Rolls {
		if v == sides || v == 1 {
			return true
		}
	}

	return false
}
