package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/SW1MD/dnd-proj-sub001/internal/entity"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// Fixtures need the full schema. Every helper writes through the database
// bound to ctx and fails the test on error.

func CreateUser(t *testing.T, ctx context.Context, username string) *entity.User {
	t.Helper()

	u := entity.NewUser(username+"@example.com", username, "hash-"+username)
	require.NoError(t, xcontext.DB(ctx).Create(u).Error)

	return u
}

func CreateCharacter(t *testing.T, ctx context.Context, owner *entity.User, name string) *entity.Character {
	t.Helper()

	c := &entity.Character{
		UserID:       owner.ID,
		Name:         name,
		Class:        entity.ClassFighter,
		Race:         entity.RaceDwarf,
		Level:        1,
		HitPoints:    12,
		MaxHitPoints: 12,
		ArmorClass:   16,
		Strength:     16,
		Dexterity:    12,
		Constitution: 15,
		Intelligence: 10,
		Wisdom:       11,
		Charisma:     8,
		Skills:       datatypes.NewJSONType(entity.CharacterSkills{"athletics": 5}),
		Inventory: datatypes.NewJSONSlice([]entity.InventoryItem{
			{Name: "battleaxe", Quantity: 1, Weight: 4, Equipped: true},
		}),
		Spells:   datatypes.NewJSONSlice([]entity.Spell{}),
		IsActive: true,
	}
	require.NoError(t, xcontext.DB(ctx).Create(c).Error)

	return c
}

func CreateGameSession(t *testing.T, ctx context.Context, dm *entity.User) *entity.GameSession {
	t.Helper()

	g := &entity.GameSession{
		Name:       "session-" + uuid.NewString()[:8],
		Status:     entity.GameStatusWaiting,
		MaxPlayers: 6,
		Settings:   datatypes.NewJSONType(entity.GameSettings{AllowSpectators: true}),
		GameState:  datatypes.NewJSONType(entity.GameState{Phase: "lobby"}),
	}
	if dm != nil {
		g.DMUserID = sql.NullString{String: dm.ID, Valid: true}
	}
	require.NoError(t, xcontext.DB(ctx).Create(g).Error)

	return g
}

// CreateGamePlayer seats user in game. A nil character makes an observer.
func CreateGamePlayer(
	t *testing.T,
	ctx context.Context,
	game *entity.GameSession,
	user *entity.User,
	character *entity.Character,
) *entity.GamePlayer {
	t.Helper()

	p, err := NewGamePlayer(ctx, game, user, character)
	require.NoError(t, err)

	return p
}

// NewGamePlayer is CreateGamePlayer for tests that expect the insert to fail.
func NewGamePlayer(
	ctx context.Context,
	game *entity.GameSession,
	user *entity.User,
	character *entity.Character,
) (*entity.GamePlayer, error) {
	p := &entity.GamePlayer{
		GameID:   game.ID,
		UserID:   user.ID,
		Role:     entity.GamePlayerRolePlayer,
		JoinedAt: time.Now(),
	}
	if character != nil {
		p.CharacterID = sql.NullString{String: character.ID, Valid: true}
	} else {
		p.Role = entity.GamePlayerRoleObserver
	}

	if err := xcontext.DB(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("create game player: %w", err)
	}

	return p, nil
}

func CreateGameAction(t *testing.T, ctx context.Context, player *entity.GamePlayer) *entity.GameAction {
	t.Helper()

	a := &entity.GameAction{
		GameID:      player.GameID,
		PlayerID:    player.ID,
		Type:        entity.GameActionTypeAttack,
		Description: "swings the axe",
		Data:        datatypes.JSONMap{"target": "goblin"},
	}
	require.NoError(t, xcontext.DB(ctx).Create(a).Error)

	return a
}

func CreateDiceRoll(t *testing.T, ctx context.Context, player *entity.GamePlayer, action *entity.GameAction) *entity.DiceRoll {
	t.Helper()

	r := &entity.DiceRoll{
		GameID:    player.GameID,
		PlayerID:  player.ID,
		DiceType:  "d20",
		DiceCount: 1,
		Rolls:     datatypes.NewJSONSlice([]int{20}),
		Modifier:  3,
		Result:    23,
		Purpose:   "attack",
	}
	r.IsCritical = r.Natural(20)
	if action != nil {
		r.RelatedActionID = sql.NullString{String: action.ID, Valid: true}
	}
	require.NoError(t, xcontext.DB(ctx).Create(r).Error)

	return r
}
