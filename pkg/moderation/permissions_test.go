package moderation

import (
	"errors"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

type fakePolicyStore struct {
	cfg *models.GuildConfig
	err error
}

func (f *fakePolicyStore) Get(string) (*models.GuildConfig, error) {
	return f.cfg, f.err
}

func configuredStore() *fakePolicyStore {
	return &fakePolicyStore{cfg: &models.GuildConfig{
		GuildID:     "g1",
		AdminRoleID: "admin-role",
		ModRoleID:   "mod-role",
	}}
}

func TestPermissionLevelCascade(t *testing.T) {
	tests := []struct {
		name   string
		store  *fakePolicyStore
		member Member
		want   PermissionLevel
	}{
		{
			name:   "native admin wins",
			store:  configuredStore(),
			member: Member{ID: "u1", Admin: true},
			want:   LevelAdministrator,
		},
		{
			name:   "admin role",
			store:  configuredStore(),
			member: Member{ID: "u1", Roles: []string{"admin-role"}},
			want:   LevelAdministrator,
		},
		{
			name:   "mod role",
			store:  configuredStore(),
			member: Member{ID: "u1", Roles: []string{"mod-role"}},
			want:   LevelModerator,
		},
		{
			name:   "both roles resolve to admin",
			store:  configuredStore(),
			member: Member{ID: "u1", Roles: []string{"mod-role", "admin-role"}},
			want:   LevelAdministrator,
		},
		{
			name:   "no roles",
			store:  configuredStore(),
			member: Member{ID: "u1", Roles: []string{"other-role"}},
			want:   LevelUser,
		},
		{
			name:   "unconfigured guild",
			store:  &fakePolicyStore{cfg: &models.GuildConfig{GuildID: "g1"}},
			member: Member{ID: "u1", Roles: []string{"mod-role"}},
			want:   LevelUser,
		},
		{
			name:   "missing guild entry",
			store:  &fakePolicyStore{},
			member: Member{ID: "u1", Roles: []string{"mod-role"}},
			want:   LevelUser,
		},
		{
			name:   "store error degrades to user",
			store:  &fakePolicyStore{err: errors.New("db down")},
			member: Member{ID: "u1", Roles: []string{"mod-role"}},
			want:   LevelUser,
		},
		{
			name:   "store error never blocks native admin",
			store:  &fakePolicyStore{err: errors.New("db down")},
			member: Member{ID: "u1", Admin: true},
			want:   LevelAdministrator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.store)
			if got := r.PermissionLevel("g1", tt.member); got != tt.want {
				t.Errorf("PermissionLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasPermission(t *testing.T) {
	r := NewResolver(configuredStore())
	mod := Member{ID: "u1", Roles: []string{"mod-role"}}

	if !r.HasPermission("g1", mod, LevelUser) {
		t.Error("moderator should satisfy the user level")
	}
	if !r.HasPermission("g1", mod, LevelModerator) {
		t.Error("moderator should satisfy the moderator level")
	}
	if r.HasPermission("g1", mod, LevelAdministrator) {
		t.Error("moderator should not satisfy the administrator level")
	}
}

func TestCheckRoleHierarchy(t *testing.T) {
	tests := []struct {
		name     string
		executor Member
		target   Member
		want     bool
	}{
		{"higher position", Member{RolePos: 5}, Member{RolePos: 3}, true},
		{"equal position", Member{RolePos: 5}, Member{RolePos: 5}, false},
		{"lower position", Member{RolePos: 3}, Member{RolePos: 5}, false},
		{"owner bypasses position", Member{Owner: true, RolePos: 1}, Member{RolePos: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckRoleHierarchy(tt.executor, tt.target); got != tt.want {
				t.Errorf("CheckRoleHierarchy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBotCanActOn(t *testing.T) {
	tests := []struct {
		name   string
		bot    Member
		target Member
		want   bool
	}{
		{"bot higher", Member{RolePos: 10}, Member{RolePos: 3}, true},
		{"bot equal", Member{RolePos: 5}, Member{RolePos: 5}, false},
		{"bot lower", Member{RolePos: 3}, Member{RolePos: 10}, false},
		{"owner immune even below bot", Member{RolePos: 10}, Member{Owner: true, RolePos: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BotCanActOn(tt.bot, tt.target); got != tt.want {
				t.Errorf("BotCanActOn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanModerate(t *testing.T) {
	bot := Member{ID: "bot", Bot: true, RolePos: 8}
	executor := Member{ID: "mod", Roles: []string{"mod-role"}, RolePos: 5}

	tests := []struct {
		name       string
		executor   Member
		target     Member
		required   PermissionLevel
		wantReason string
	}{
		{
			name:       "self target rejected before anything else",
			executor:   Member{ID: "u1"},
			target:     Member{ID: "u1"},
			required:   LevelModerator,
			wantReason: ReasonSelfTarget,
		},
		{
			name:       "bot target rejected",
			executor:   executor,
			target:     Member{ID: "other-bot", Bot: true, RolePos: 1},
			required:   LevelModerator,
			wantReason: ReasonBotTarget,
		},
		{
			name:       "missing permission",
			executor:   Member{ID: "u1", RolePos: 5},
			target:     Member{ID: "u2", RolePos: 1},
			required:   LevelModerator,
			wantReason: ReasonNoPermission,
		},
		{
			name:       "equal role position rejected",
			executor:   executor,
			target:     Member{ID: "u2", RolePos: 5},
			required:   LevelModerator,
			wantReason: ReasonRoleHierarchy,
		},
		{
			name:       "target above the bot",
			executor:   Member{ID: "mod", Roles: []string{"mod-role"}, RolePos: 20},
			target:     Member{ID: "u2", RolePos: 9},
			required:   LevelModerator,
			wantReason: ReasonBotRoleHierarchy,
		},
		{
			name:     "allowed",
			executor: executor,
			target:   Member{ID: "u2", RolePos: 1},
			required: LevelModerator,
		},
		{
			name:     "owner executor bypasses hierarchy",
			executor: Member{ID: "owner", Owner: true, Admin: true, RolePos: 1},
			target:   Member{ID: "u2", RolePos: 7},
			required: LevelModerator,
		},
		{
			name:       "owner target immune to the bot",
			executor:   Member{ID: "admin", Admin: true, RolePos: 20},
			target:     Member{ID: "owner", Owner: true, RolePos: 1},
			required:   LevelModerator,
			wantReason: ReasonBotRoleHierarchy,
		},
	}

	r := NewResolver(configuredStore())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.CanModerate("g1", tt.executor, tt.target, bot, tt.required)
			if tt.wantReason == "" {
				if !result.Allowed {
					t.Errorf("expected allowed, got rejection %q", result.Reason)
				}
				return
			}
			if result.Allowed {
				t.Fatal("expected rejection, got allowed")
			}
			if result.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestMemberFromState(t *testing.T) {
	guild := &discordgo.Guild{
		ID:      "g1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "everyone", Position: 0},
			{ID: "low", Position: 2},
			{ID: "high", Position: 7},
			{ID: "unrelated", Position: 9},
		},
	}

	m := MemberFromState(guild, &discordgo.Member{
		User:  &discordgo.User{ID: "u1"},
		Roles: []string{"low", "high"},
	})
	if m.RolePos != 7 {
		t.Errorf("RolePos = %d, want 7", m.RolePos)
	}
	if m.Owner || m.Admin || m.Bot {
		t.Error("plain member should have no flags set")
	}

	owner := MemberFromState(guild, &discordgo.Member{
		User: &discordgo.User{ID: "owner"},
	})
	if !owner.Owner || !owner.Admin {
		t.Error("owner should be flagged as owner and admin")
	}

	admin := MemberFromState(guild, &discordgo.Member{
		User:        &discordgo.User{ID: "u2"},
		Permissions: discordgo.PermissionAdministrator,
	})
	if !admin.Admin {
		t.Error("administrator permission should set the admin flag")
	}
}
