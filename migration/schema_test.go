package migration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SW1MD/dnd-proj-sub001/internal/entity"
	"github.com/SW1MD/dnd-proj-sub001/pkg/testutil"
	"github.com/SW1MD/dnd-proj-sub001/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm/schema"
)

func migratedContext(t *testing.T) context.Context {
	t.Helper()

	ctx := testutil.NewContext(t)
	_, err := newRunner(t).Up(ctx)
	require.NoError(t, err)

	return ctx
}

func TestEntitiesMatchFinalSchema(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)
	shape := inspect(t, ctx)

	models := []any{
		&entity.User{},
		&entity.Character{},
		&entity.GameSession{},
		&entity.GamePlayer{},
		&entity.Map{},
		&entity.GameAction{},
		&entity.GameEvent{},
		&entity.DiceRoll{},
		&entity.ChatMessage{},
		&entity.AuthToken{},
		&entity.Friendship{},
		&entity.DirectMessage{},
		&entity.GameInvitation{},
	}
	require.Len(t, models, len(shape.Tables))

	for _, model := range models {
		s, err := schema.Parse(model, &sync.Map{}, db.NamingStrategy)
		require.NoError(t, err)

		table, ok := shape.Tables[s.Table]
		require.True(t, ok, "missing table %s", s.Table)
		require.ElementsMatch(t, table.ColumnNames(), s.DBNames, s.Table)
	}
}

func TestDuplicateEmailUnderConcurrentInserts(t *testing.T) {
	ctx := migratedContext(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, username := range []string{"first", "second"} {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			errs[i] = xcontext.DB(ctx).Create(entity.NewUser("same@example.com", username, "hash")).Error
		}(i, username)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			failures++
		}
	}
	require.Equal(t, 1, failures, "errors: %v", errs)

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.User{}).Where("email = ?", "same@example.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFriendshipConstraints(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)
	alice := testutil.CreateUser(t, ctx, "alice")
	bob := testutil.CreateUser(t, ctx, "bob")

	self := &entity.Friendship{RequesterID: alice.ID, ReceiverID: alice.ID, Status: entity.FriendshipStatusPending}
	require.Error(t, db.Create(self).Error)

	require.NoError(t, db.Create(&entity.Friendship{
		RequesterID: alice.ID, ReceiverID: bob.ID, Status: entity.FriendshipStatusPending,
	}).Error)
	require.Error(t, db.Create(&entity.Friendship{
		RequesterID: alice.ID, ReceiverID: bob.ID, Status: entity.FriendshipStatusAccepted,
	}).Error)

	// The pair is ordered, so the inverse request is accepted.
	require.NoError(t, db.Create(&entity.Friendship{
		RequesterID: bob.ID, ReceiverID: alice.ID, Status: entity.FriendshipStatusPending,
	}).Error)

	require.Error(t, db.Create(&entity.Friendship{
		RequesterID: bob.ID, ReceiverID: testutil.CreateUser(t, ctx, "carol").ID, Status: "rejected",
	}).Error)
}

func TestGamePlayerPairIsUnique(t *testing.T) {
	ctx := migratedContext(t)
	alice := testutil.CreateUser(t, ctx, "alice")
	game := testutil.CreateGameSession(t, ctx, nil)

	testutil.CreateGamePlayer(t, ctx, game, alice, testutil.CreateCharacter(t, ctx, alice, "Thorin"))
	_, err := testutil.NewGamePlayer(ctx, game, alice, testutil.CreateCharacter(t, ctx, alice, "Balin"))
	require.Error(t, err)

	// Observers sit without a character.
	bob := testutil.CreateUser(t, ctx, "bob")
	observer := testutil.CreateGamePlayer(t, ctx, game, bob, nil)
	require.False(t, observer.CharacterID.Valid)
}

func TestDeletingDMKeepsTheSession(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)

	dm := testutil.CreateUser(t, ctx, "dm")
	game := testutil.CreateGameSession(t, ctx, dm)
	require.True(t, game.DMUserID.Valid)

	require.NoError(t, db.Delete(&entity.User{}, "id = ?", dm.ID).Error)

	var reloaded entity.GameSession
	require.NoError(t, db.First(&reloaded, "id = ?", game.ID).Error)
	require.False(t, reloaded.DMUserID.Valid)
	require.Equal(t, game.Name, reloaded.Name)
}

func TestDeletingSessionCascades(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)

	alice := testutil.CreateUser(t, ctx, "alice")
	game := testutil.CreateGameSession(t, ctx, alice)
	player := testutil.CreateGamePlayer(t, ctx, game, alice, testutil.CreateCharacter(t, ctx, alice, "Thorin"))
	testutil.CreateDiceRoll(t, ctx, player, testutil.CreateGameAction(t, ctx, player))
	require.NoError(t, db.Create(entity.NewWhisper(game.ID, alice.ID, alice.ID, "psst")).Error)

	require.NoError(t, db.Delete(&entity.GameSession{}, "id = ?", game.ID).Error)

	for _, model := range []any{&entity.GamePlayer{}, &entity.GameAction{}, &entity.DiceRoll{}, &entity.ChatMessage{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		require.Zero(t, count, "%T", model)
	}

	// Characters belong to the user, not to the session.
	var characters int64
	require.NoError(t, db.Model(&entity.Character{}).Count(&characters).Error)
	require.EqualValues(t, 1, characters)
}

func TestNullableReferences(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)

	alice := testutil.CreateUser(t, ctx, "alice")
	bob := testutil.CreateUser(t, ctx, "bob")
	game := testutil.CreateGameSession(t, ctx, alice)
	player := testutil.CreateGamePlayer(t, ctx, game, alice, testutil.CreateCharacter(t, ctx, alice, "Thorin"))
	action := testutil.CreateGameAction(t, ctx, player)
	roll := testutil.CreateDiceRoll(t, ctx, player, action)

	whisper := entity.NewWhisper(game.ID, alice.ID, bob.ID, "behind you")
	require.NoError(t, db.Create(whisper).Error)

	m := &entity.Map{
		Name:             "Goblin Cave",
		Type:             entity.MapTypeCave,
		Difficulty:       entity.MapDifficultyMedium,
		Theme:            entity.MapThemeDark,
		Width:            2,
		Height:           2,
		Tiles:            datatypes.NewJSONType(entity.TileGrid{{"floor", "wall"}, {"floor", "door"}}),
		StartingPosition: datatypes.NewJSONType(entity.Point{X: 0, Y: 1}),
	}
	m.CreatedBy.String, m.CreatedBy.Valid = bob.ID, true
	require.NoError(t, db.Create(m).Error)
	require.NoError(t, db.Model(game).Update("current_map_id", m.ID).Error)

	require.NoError(t, db.Delete(&entity.GameAction{}, "id = ?", action.ID).Error)
	require.NoError(t, db.Delete(&entity.User{}, "id = ?", bob.ID).Error)
	require.NoError(t, db.Delete(&entity.Map{}, "id = ?", m.ID).Error)

	var reloadedRoll entity.DiceRoll
	require.NoError(t, db.First(&reloadedRoll, "id = ?", roll.ID).Error)
	require.False(t, reloadedRoll.RelatedActionID.Valid)
	require.Equal(t, []int{20}, []int(reloadedRoll.Rolls))

	var reloadedWhisper entity.ChatMessage
	require.NoError(t, db.First(&reloadedWhisper, "id = ?", whisper.ID).Error)
	require.False(t, reloadedWhisper.WhisperToUserID.Valid)
	require.True(t, reloadedWhisper.IsPrivate)

	var reloadedGame entity.GameSession
	require.NoError(t, db.First(&reloadedGame, "id = ?", game.ID).Error)
	require.False(t, reloadedGame.CurrentMapID.Valid)
}

func TestDanglingCurrentMapIsRejected(t *testing.T) {
	ctx := migratedContext(t)
	game := testutil.CreateGameSession(t, ctx, nil)

	err := xcontext.DB(ctx).Model(game).Update("current_map_id", "00000000-0000-4000-8000-000000000000").Error
	require.Error(t, err)
}

func TestPayloadsRoundTripThroughTheStore(t *testing.T) {
	ctx := migratedContext(t)
	db := xcontext.DB(ctx)

	alice := testutil.CreateUser(t, ctx, "alice")
	character := testutil.CreateCharacter(t, ctx, alice, "Thorin")
	game := testutil.CreateGameSession(t, ctx, alice)

	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	invitation := &entity.GameInvitation{
		GameID:    game.ID,
		InviterID: alice.ID,
		InviteeID: testutil.CreateUser(t, ctx, "bob").ID,
		Status:    entity.InvitationStatusPending,
		ExpiresAt: &expires,
	}
	require.NoError(t, db.Create(invitation).Error)

	event := &entity.GameEvent{
		GameID:           game.ID,
		Type:             entity.GameEventTypeItemFound,
		Title:            "A shiny key",
		PlayersInvolved:  datatypes.NewJSONSlice([]string{alice.ID}),
		IsPublic:         false,
		VisibleToPlayers: true,
	}
	require.NoError(t, db.Create(event).Error)

	var reloadedCharacter entity.Character
	require.NoError(t, db.First(&reloadedCharacter, "id = ?", character.ID).Error)
	require.Equal(t, 5, reloadedCharacter.Skills.Data()["athletics"])
	require.Len(t, reloadedCharacter.Inventory, 1)
	require.True(t, reloadedCharacter.Inventory[0].Equipped)

	var reloadedGame entity.GameSession
	require.NoError(t, db.First(&reloadedGame, "id = ?", game.ID).Error)
	require.Equal(t, "lobby", reloadedGame.GameState.Data().Phase)
	require.True(t, reloadedGame.Settings.Data().AllowSpectators)

	var reloadedEvent entity.GameEvent
	require.NoError(t, db.First(&reloadedEvent, "id = ?", event.ID).Error)
	require.True(t, reloadedEvent.VisibleTo(alice.ID))
	require.False(t, reloadedEvent.VisibleTo(invitation.InviteeID))

	var reloadedInvitation entity.GameInvitation
	require.NoError(t, db.First(&reloadedInvitation, "id = ?", invitation.ID).Error)
	require.False(t, reloadedInvitation.Expired(time.Now()))
	require.Error(t, db.Create(&entity.GameInvitation{
		GameID: game.ID, InviterID: alice.ID, InviteeID: invitation.InviteeID, Status: entity.InvitationStatusPending,
	}).Error)
}
