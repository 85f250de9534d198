// Package mod - shared helpers for the /mod subcommands
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// userTag renders a user as "name#discriminator" or just "name" for
// accounts migrated to the new username system.
func userTag(user *discordgo.User) string {
	if user.Discriminator != "" && user.Discriminator != "0" {
		return fmt.Sprintf("%s#%s", user.Username, user.Discriminator)
	}
	return user.Username
}

// fetchMember resolves a guild member from the state cache, falling back
// to the API. Returns nil when the user is not in the guild.
func fetchMember(ctx *discord.CommandContext, userID string) *discordgo.Member {
	member, err := ctx.Session.State.Member(ctx.Interaction.GuildID, userID)
	if err == nil && member != nil {
		return member
	}

	member, err = ctx.Session.GuildMember(ctx.Interaction.GuildID, userID)
	if err != nil {
		return nil
	}
	return member
}

// botMember builds the resolver view of the bot itself.
func botMember(ctx *discord.CommandContext, guild *discordgo.Guild) moderation.Member {
	if member := fetchMember(ctx, ctx.Session.State.User.ID); member != nil {
		return moderation.MemberFromState(guild, member)
	}
	return moderation.Member{ID: ctx.Session.State.User.ID, Bot: true}
}

// authorize runs the full eligibility check for an action against a target
// and replies with the rejection reason when it fails.
func authorize(ctx *discord.CommandContext, target *discordgo.User, required moderation.PermissionLevel) bool {
	svc := moderation.Get()
	guild := ctx.Guild()

	executor := moderation.MemberFromState(guild, ctx.Member())
	bot := botMember(ctx, guild)

	var targetView moderation.Member
	if member := fetchMember(ctx, target.ID); member != nil {
		targetView = moderation.MemberFromState(guild, member)
	} else {
		// Target outside the guild (e.g. ban by ID): only the identity
		// and bot-account checks apply.
		targetView = moderation.Member{ID: target.ID, Bot: target.Bot}
	}

	result := svc.CanModerate(ctx.Interaction.GuildID, executor, targetView, bot, required)
	if !result.Allowed {
		ctx.ReplyEphemeral("❌ " + result.Reason)
		return false
	}
	return true
}

// requireLevel checks only the executor's permission level, for commands
// without a member target (unban by ID, purge, modlogs).
func requireLevel(ctx *discord.CommandContext, required moderation.PermissionLevel) bool {
	svc := moderation.Get()
	executor := moderation.MemberFromState(ctx.Guild(), ctx.Member())

	if !svc.HasPermission(ctx.Interaction.GuildID, executor, required) {
		ctx.ReplyEphemeral("❌ " + moderation.ReasonNoPermission)
		return false
	}
	return true
}

// recordCase writes the case to the ledger and announces it on the MQTT bus.
func recordCase(ctx *discord.CommandContext, opts moderation.ModLogOptions) (int, error) {
	opts.GuildID = ctx.Interaction.GuildID
	if guild := ctx.Guild(); guild != nil {
		opts.GuildName = guild.Name
	}
	opts.ModeratorID = ctx.User().ID
	opts.ModeratorTag = userTag(ctx.User())

	caseNumber, err := moderation.Get().CreateModLog(opts)
	if err != nil {
		return 0, err
	}

	if bus := mqtt.Get(); bus != nil && bus.IsConnected() {
		bus.PublishModerationEvent(&models.ModLog{
			GuildID:     opts.GuildID,
			CaseNumber:  caseNumber,
			Type:        opts.Type,
			TargetID:    opts.TargetID,
			ModeratorID: opts.ModeratorID,
			Reason:      opts.Reason,
			Timestamp:   time.Now(),
		})
	}

	return caseNumber, nil
}
