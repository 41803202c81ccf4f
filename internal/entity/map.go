package entity

import (
	"database/sql"

	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"gorm.io/datatypes"
)

type MapType string

var (
	MapTypeDungeon    = enum.New(MapType("dungeon"))
	MapTypeCave       = enum.New(MapType("cave"))
	MapTypeForest     = enum.New(MapType("forest"))
	MapTypeTown       = enum.New(MapType("town"))
	MapTypeCastle     = enum.New(MapType("castle"))
	MapTypeWilderness = enum.New(MapType("wilderness"))
)

type MapDifficulty string

var (
	MapDifficultyEasy   = enum.New(MapDifficulty("easy"))
	MapDifficultyMedium = enum.New(MapDifficulty("medium"))
	MapDifficultyHard   = enum.New(MapDifficulty("hard"))
	MapDifficultyDeadly = enum.New(MapDifficulty("deadly"))
)

type MapTheme string

var (
	MapThemeClassic   = enum.New(MapTheme("classic"))
	MapThemeDark      = enum.New(MapTheme("dark"))
	MapThemeIce       = enum.New(MapTheme("ice"))
	MapThemeFire      = enum.New(MapTheme("fire"))
	MapThemeUndead    = enum.New(MapTheme("undead"))
	MapThemeCelestial = enum.New(MapTheme("celestial"))
)

type Map struct {
	Base

	Name        string
	Description string
	Type        MapType
	Difficulty  MapDifficulty
	Theme       MapTheme
	Width       int
	Height      int

	Tiles            datatypes.JSONType[TileGrid]
	Rooms            datatypes.JSONSlice[MapRoom]
	NPCs             datatypes.JSONSlice[MapNPC] `gorm:"column:npcs"`
	StartingPosition datatypes.JSONType[Point]

	CreatedBy sql.NullString `gorm:"type:uuid"`
	IsPublic  bool
}

// TileGrid is indexed [y][x].
type TileGrid [][]string

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type MapRoom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Description string `json:"description,omitempty"`
}

type MapNPC struct {
	Name        string `json:"name"`
	Position    Point  `json:"position"`
	Disposition string `json:"disposition"`
}

func (g TileGrid) At(p Point) (string, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		return "", false
	}

	return g[p.Y][p.X], true
}
