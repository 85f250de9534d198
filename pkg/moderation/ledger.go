package moderation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Embed colors per action type
var actionColors = map[string]int{
	models.ActionWarn:   0xFEE75C,
	models.ActionKick:   0xE67E22,
	models.ActionBan:    0xED4245,
	models.ActionUnban:  0x57F287,
	models.ActionMute:   0xE67E22,
	models.ActionUnmute: 0x57F287,
	models.ActionPurge:  0x5865F2,
}

// Display names of the action types, as shown in log embeds and DMs.
var actionDisplay = map[string]string{
	models.ActionWarn:   "Advertencia",
	models.ActionKick:   "Expulsión",
	models.ActionBan:    "Baneo",
	models.ActionUnban:  "Desbaneo",
	models.ActionMute:   "Silenciamiento",
	models.ActionUnmute: "Fin del silenciamiento",
	models.ActionPurge:  "Purga de mensajes",
}

// ModLogOptions carries everything needed to record a moderation case and
// emit its notifications. Tags are display names; IDs drive the record.
type ModLogOptions struct {
	GuildID      string
	GuildName    string
	Type         string
	TargetID     string
	TargetTag    string
	ModeratorID  string
	ModeratorTag string
	Reason       string
	Duration     int64 // seconds, mute only
	Evidence     string
}

// Ledger is the guild-scoped audit trail of moderation actions. Recording a
// case allocates a case number, persists the entry, and then fires the
// notification side effects (log channel embed, target DM) best-effort:
// a notification failure never undoes a recorded case.
type Ledger struct {
	policies PolicyStore
	cases    CaseStore
	warnings WarningStore
	msg      Messenger
}

// NewLedger creates a Ledger over the given stores and messenger.
func NewLedger(policies PolicyStore, cases CaseStore, warnings WarningStore, msg Messenger) *Ledger {
	return &Ledger{
		policies: policies,
		cases:    cases,
		warnings: warnings,
		msg:      msg,
	}
}

// CreateModLog records a moderation case and returns its case number.
// The insert must succeed for the case to exist; if it fails the error is
// returned and no notification is sent. The allocated number is not reused.
func (l *Ledger) CreateModLog(opts ModLogOptions) (int, error) {
	reason := opts.Reason
	if reason == "" {
		reason = "Sin razón especificada"
	}
	reason = truncateReason(reason)

	caseNumber, err := l.cases.NextCaseNumber(opts.GuildID)
	if err != nil {
		return 0, fmt.Errorf("no se pudo asignar número de caso: %w", err)
	}

	entry := &models.ModLog{
		GuildID:     opts.GuildID,
		CaseNumber:  caseNumber,
		Type:        opts.Type,
		TargetID:    opts.TargetID,
		ModeratorID: opts.ModeratorID,
		Reason:      reason,
		Duration:    opts.Duration,
		Evidence:    opts.Evidence,
		Status:      models.CaseStatusActive,
		Timestamp:   time.Now(),
	}

	if err := l.cases.Insert(entry); err != nil {
		return 0, fmt.Errorf("no se pudo guardar el caso #%d: %w", caseNumber, err)
	}

	l.postToLogChannel(opts, entry)
	l.notifyTarget(opts, entry)

	return caseNumber, nil
}

// GetModLogs returns the moderation history of a guild. A case-number filter
// returns at most that single case; otherwise the ten most recent matches.
func (l *Ledger) GetModLogs(guildID string, filter models.ModLogFilter) ([]*models.ModLog, error) {
	limit := int64(10)
	if filter.CaseNumber > 0 {
		limit = 1
	}
	return l.cases.Query(guildID, filter, limit)
}

// AddWarning records a warning for a user and returns it.
func (l *Ledger) AddWarning(guildID, userID, moderatorID, reason string) (*models.Warning, error) {
	if reason == "" {
		reason = "Sin razón especificada"
	}
	reason = truncateReason(reason)

	warning := &models.Warning{
		ID:          uuid.NewString(),
		GuildID:     guildID,
		UserID:      userID,
		ModeratorID: moderatorID,
		Reason:      reason,
		Timestamp:   time.Now(),
	}

	if err := l.warnings.Insert(warning); err != nil {
		return nil, err
	}
	return warning, nil
}

// truncateReason caps a reason at MaxReasonLength bytes, backing up so a
// multi-byte character is never cut in half.
func truncateReason(reason string) string {
	if len(reason) <= MaxReasonLength {
		return reason
	}
	cut := MaxReasonLength
	for cut > 0 && !utf8.RuneStart(reason[cut]) {
		cut--
	}
	return reason[:cut]
}

// GetWarnings returns every warning of a user in a guild, newest first.
func (l *Ledger) GetWarnings(guildID, userID string) ([]*models.Warning, error) {
	return l.warnings.Query(guildID, userID)
}

// postToLogChannel sends the case embed to the configured log channel,
// if the guild has one. Failures are only logged.
func (l *Ledger) postToLogChannel(opts ModLogOptions, entry *models.ModLog) {
	cfg, err := l.policies.Get(opts.GuildID)
	if err != nil {
		logger.Warn(fmt.Sprintf("Caso #%d: no se pudo leer la configuración del servidor: %v", entry.CaseNumber, err), "ModLog")
		return
	}
	if cfg == nil || cfg.ModLogChannelID == "" {
		return
	}

	if err := l.msg.PostToChannel(cfg.ModLogChannelID, caseEmbed(opts, entry)); err != nil {
		logger.Warn(fmt.Sprintf("Caso #%d: no se pudo publicar en el canal de logs: %v", entry.CaseNumber, err), "ModLog")
	}
}

// notifyTarget DMs the sanctioned user. Users with closed DMs are common,
// so failures are only logged.
func (l *Ledger) notifyTarget(opts ModLogOptions, entry *models.ModLog) {
	if err := l.msg.SendDirect(opts.TargetID, dmEmbed(opts, entry)); err != nil {
		logger.Debug(fmt.Sprintf("Caso #%d: no se pudo notificar al usuario %s: %v", entry.CaseNumber, opts.TargetID, err), "ModLog")
	}
}

func actionColor(actionType string) int {
	if color, ok := actionColors[actionType]; ok {
		return color
	}
	return 0x5865F2
}

func actionName(actionType string) string {
	if name, ok := actionDisplay[actionType]; ok {
		return name
	}
	return actionType
}

// caseEmbed builds the embed posted in the guild's moderation log channel.
func caseEmbed(opts ModLogOptions, entry *models.ModLog) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Usuario", Value: fmt.Sprintf("%s (<@%s>)", opts.TargetTag, opts.TargetID), Inline: true},
		{Name: "Moderador", Value: fmt.Sprintf("%s (<@%s>)", opts.ModeratorTag, opts.ModeratorID), Inline: true},
		{Name: "Razón", Value: entry.Reason},
	}

	if entry.Duration > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Duración", Value: FormatDuration(entry.Duration), Inline: true,
		})
	}
	if entry.Evidence != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Evidencia", Value: entry.Evidence,
		})
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Caso #%d | %s", entry.CaseNumber, actionName(entry.Type)),
		Color:     actionColor(entry.Type),
		Fields:    fields,
		Timestamp: entry.Timestamp.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("ID: %s", opts.TargetID),
		},
	}
}

// dmEmbed builds the notification sent to the sanctioned user.
func dmEmbed(opts ModLogOptions, entry *models.ModLog) *discordgo.MessageEmbed {
	description := fmt.Sprintf("**Acción:** %s\n**Razón:** %s", actionName(entry.Type), entry.Reason)
	if entry.Duration > 0 {
		description += fmt.Sprintf("\n**Duración:** %s", FormatDuration(entry.Duration))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Has recibido una sanción en %s", opts.GuildName),
		Description: description,
		Color:       actionColor(entry.Type),
		Timestamp:   entry.Timestamp.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Caso #%d", entry.CaseNumber),
		},
	}
}
