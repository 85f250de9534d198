package mqtt

import (
	"testing"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/goccy/go-json"
)

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"pancyguard/modlogs/g1", "pancyguard/modlogs/g1", true},
		{"pancyguard/modlogs/g1", "pancyguard/modlogs/g2", false},
		{"pancyguard/modlogs/+", "pancyguard/modlogs/g1", true},
		{"pancyguard/modlogs/+", "pancyguard/modlogs/g1/extra", false},
		{"pancyguard/#", "pancyguard/modlogs/g1/extra", true},
		{"pancyguard/#", "pancyguard", true},
		{"pancyguard/+/g1", "pancyguard/modlogs/g1", true},
		{"pancyguard/+/g1", "pancyguard/modlogs/g2", false},
		{"pancyguard/modlogs", "pancyguard/modlogs/g1", false},
	}

	for _, tt := range tests {
		if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}

func TestModerationEventPayload(t *testing.T) {
	entry := &models.ModLog{
		GuildID:     "g1",
		CaseNumber:  4,
		Type:        models.ActionBan,
		TargetID:    "target",
		ModeratorID: "mod",
		Reason:      "spam",
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	event := ModerationEvent{
		GuildID:     entry.GuildID,
		CaseNumber:  entry.CaseNumber,
		Type:        entry.Type,
		TargetID:    entry.TargetID,
		ModeratorID: entry.ModeratorID,
		Reason:      entry.Reason,
		Timestamp:   entry.Timestamp.Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if decoded["guildId"] != "g1" || decoded["type"] != "ban" {
		t.Errorf("unexpected payload: %s", data)
	}
	if decoded["caseNumber"] != float64(4) {
		t.Errorf("caseNumber = %v, want 4", decoded["caseNumber"])
	}
	if decoded["timestamp"] != "2025-06-01T12:00:00Z" {
		t.Errorf("timestamp = %v", decoded["timestamp"])
	}
}
