package migration

import (
	"regexp"
	"sync"
	"testing"

	"github.com/SW1MD/dnd-proj-sub001/internal/entity"
	"github.com/SW1MD/dnd-proj-sub001/pkg/enum"
	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func noop(*gorm.DB) error { return nil }

func TestValidate(t *testing.T) {
	entry := func(id, name string) *Migration {
		return &Migration{ID: id, Name: name, Kind: KindCreateTable, Up: noop, Down: noop}
	}

	tests := []struct {
		name    string
		list    []*Migration
		wantErr bool
	}{
		{
			name: "catalog",
			list: Migrations(),
		},
		{
			name:    "empty",
			list:    nil,
			wantErr: true,
		},
		{
			name:    "non numeric id",
			list:    []*Migration{entry("00a1", "a")},
			wantErr: true,
		},
		{
			name:    "descending",
			list:    []*Migration{entry("0002", "a"), entry("0001", "b")},
			wantErr: true,
		},
		{
			name:    "duplicate id",
			list:    []*Migration{entry("0001", "a"), entry("0001", "b")},
			wantErr: true,
		},
		{
			name:    "mixed padding",
			list:    []*Migration{entry("0001", "a"), entry("02", "b")},
			wantErr: true,
		},
		{
			name:    "duplicate name",
			list:    []*Migration{entry("0001", "a"), entry("0002", "a")},
			wantErr: true,
		},
		{
			name:    "missing name",
			list:    []*Migration{entry("0001", "")},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			list:    []*Migration{{ID: "0001", Name: "a", Kind: "drop_everything", Up: noop, Down: noop}},
			wantErr: true,
		},
		{
			name:    "missing down",
			list:    []*Migration{{ID: "0001", Name: "a", Kind: KindCreateTable, Up: noop}},
			wantErr: true,
		},
		{
			name: "loss without purge",
			list: []*Migration{{
				ID: "0001", Name: "a", Kind: KindAlterColumn, Up: noop, Down: noop,
				Loss: &Loss{Count: func(*gorm.DB) (int64, error) { return 0, nil }},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.list)
			if tt.wantErr {
				require.True(t, errorx.Is(err, errorx.InvalidCatalog), "got %v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOnlyOneEntryIsLossy(t *testing.T) {
	var lossy []string
	for _, m := range Migrations() {
		if m.Loss != nil {
			lossy = append(lossy, m.ID)
		}
	}

	require.Equal(t, []string{"0018"}, lossy)
}

var quotedRegexp = regexp.MustCompile(`'([^']*)'`)

func checkVocabulary(t *testing.T, model any, column string) []string {
	t.Helper()

	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, chk := range s.ParseCheckConstraints() {
		if chk.Field.DBName != column {
			continue
		}

		var values []string
		for _, m := range quotedRegexp.FindAllStringSubmatch(chk.Constraint, -1) {
			values = append(values, m[1])
		}

		return values
	}

	t.Fatalf("no check constraint on %s", column)
	return nil
}

func TestCheckVocabulariesMatchEntities(t *testing.T) {
	tests := []struct {
		model  any
		column string
		want   []string
	}{
		{&user1{}, "role", enum.Strings[entity.UserRole]()},
		{&character2{}, "class", enum.Strings[entity.CharacterClass]()},
		{&character2{}, "race", enum.Strings[entity.CharacterRace]()},
		{&gameSession3{}, "status", enum.Strings[entity.GameStatus]()},
		{&gamePlayer4{}, "role", enum.Strings[entity.GamePlayerRole]()},
		{&map5{}, "type", enum.Strings[entity.MapType]()},
		{&map5{}, "difficulty", enum.Strings[entity.MapDifficulty]()},
		{&map5{}, "theme", enum.Strings[entity.MapTheme]()},
		{&gameAction7{}, "type", enum.Strings[entity.GameActionType]()},
		{&gameEvent8{}, "type", enum.Strings[entity.GameEventType]()},
		{&chatMessage10{}, "type", enum.Strings[entity.ChatType]()},
		{&authToken11{}, "type", enum.Strings[entity.AuthTokenType]()},
		{&friendship14{}, "status", enum.Strings[entity.FriendshipStatus]()},
		{&gameInvitation16{}, "status", enum.Strings[entity.InvitationStatus]()},
	}

	for _, tt := range tests {
		got := checkVocabulary(t, tt.model, tt.column)
		require.ElementsMatch(t, tt.want, got, "%T.%s", tt.model, tt.column)
	}

	require.Len(t, enum.Strings[entity.CharacterClass](), 12)
	require.Len(t, enum.Strings[entity.CharacterRace](), 9)
	require.Len(t, enum.Strings[entity.GameActionType](), 8)
	require.Len(t, enum.Strings[entity.GameEventType](), 8)
}
