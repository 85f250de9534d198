package moderation

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

type fakeCaseStore struct {
	seq        int
	nextErr    error
	insertErr  error
	inserted   []*models.ModLog
	stored     []*models.ModLog
	lastFilter models.ModLogFilter
	lastLimit  int64
}

func (f *fakeCaseStore) NextCaseNumber(string) (int, error) {
	if f.nextErr != nil {
		return 0, f.nextErr
	}
	f.seq++
	return f.seq, nil
}

func (f *fakeCaseStore) Insert(entry *models.ModLog) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeCaseStore) Query(_ string, filter models.ModLogFilter, limit int64) ([]*models.ModLog, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	return f.stored, nil
}

type fakeWarningStore struct {
	insertErr error
	inserted  []*models.Warning
	stored    []*models.Warning
}

func (f *fakeWarningStore) Insert(w *models.Warning) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, w)
	return nil
}

func (f *fakeWarningStore) Query(string, string) ([]*models.Warning, error) {
	return f.stored, nil
}

type fakeMessenger struct {
	channelErr error
	dmErr      error
	posts      map[string][]*discordgo.MessageEmbed
	dms        map[string][]*discordgo.MessageEmbed
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{
		posts: make(map[string][]*discordgo.MessageEmbed),
		dms:   make(map[string][]*discordgo.MessageEmbed),
	}
}

func (f *fakeMessenger) PostToChannel(channelID string, embed *discordgo.MessageEmbed) error {
	if f.channelErr != nil {
		return f.channelErr
	}
	f.posts[channelID] = append(f.posts[channelID], embed)
	return nil
}

func (f *fakeMessenger) SendDirect(userID string, embed *discordgo.MessageEmbed) error {
	if f.dmErr != nil {
		return f.dmErr
	}
	f.dms[userID] = append(f.dms[userID], embed)
	return nil
}

func testOptions() ModLogOptions {
	return ModLogOptions{
		GuildID:      "g1",
		GuildName:    "Servidor de prueba",
		Type:         models.ActionBan,
		TargetID:     "target",
		TargetTag:    "target#0",
		ModeratorID:  "mod",
		ModeratorTag: "mod#0",
		Reason:       "spam",
	}
}

func newTestLedger() (*Ledger, *fakeCaseStore, *fakeWarningStore, *fakeMessenger) {
	cases := &fakeCaseStore{}
	warnings := &fakeWarningStore{}
	msg := newFakeMessenger()
	policies := &fakePolicyStore{cfg: &models.GuildConfig{
		GuildID:         "g1",
		ModLogChannelID: "log-channel",
	}}
	return NewLedger(policies, cases, warnings, msg), cases, warnings, msg
}

func TestCreateModLogSequence(t *testing.T) {
	ledger, cases, _, _ := newTestLedger()

	for want := 1; want <= 3; want++ {
		got, err := ledger.CreateModLog(testOptions())
		if err != nil {
			t.Fatalf("CreateModLog: %v", err)
		}
		if got != want {
			t.Errorf("case number = %d, want %d", got, want)
		}
	}

	if len(cases.inserted) != 3 {
		t.Fatalf("inserted %d cases, want 3", len(cases.inserted))
	}
	entry := cases.inserted[0]
	if entry.Status != models.CaseStatusActive {
		t.Errorf("status = %q, want %q", entry.Status, models.CaseStatusActive)
	}
	if entry.Type != models.ActionBan || entry.TargetID != "target" || entry.ModeratorID != "mod" {
		t.Errorf("entry fields not carried over: %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestCreateModLogDefaultReason(t *testing.T) {
	ledger, cases, _, _ := newTestLedger()

	opts := testOptions()
	opts.Reason = ""
	if _, err := ledger.CreateModLog(opts); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}
	if got := cases.inserted[0].Reason; got != "Sin razón especificada" {
		t.Errorf("reason = %q", got)
	}
}

func TestCreateModLogReasonTruncated(t *testing.T) {
	ledger, cases, _, _ := newTestLedger()

	opts := testOptions()
	opts.Reason = strings.Repeat("a", MaxReasonLength+100)
	if _, err := ledger.CreateModLog(opts); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}
	if got := len(cases.inserted[0].Reason); got != MaxReasonLength {
		t.Errorf("reason length = %d, want %d", got, MaxReasonLength)
	}
}

func TestCreateModLogReasonTruncatedOnRuneBoundary(t *testing.T) {
	ledger, cases, _, _ := newTestLedger()

	// "ñ" is two bytes and straddles the byte limit
	opts := testOptions()
	opts.Reason = strings.Repeat("a", MaxReasonLength-1) + "ñón"
	if _, err := ledger.CreateModLog(opts); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}

	got := cases.inserted[0].Reason
	if !utf8.ValidString(got) {
		t.Errorf("reason is not valid UTF-8: %q", got[len(got)-4:])
	}
	if len(got) != MaxReasonLength-1 {
		t.Errorf("reason length = %d, want %d", len(got), MaxReasonLength-1)
	}
}

func TestAddWarningReasonTruncatedOnRuneBoundary(t *testing.T) {
	ledger, _, warnings, _ := newTestLedger()

	reason := strings.Repeat("a", MaxReasonLength-1) + "ñón"
	warning, err := ledger.AddWarning("guild-1", "target", "mod", reason)
	if err != nil {
		t.Fatalf("AddWarning: %v", err)
	}

	if !utf8.ValidString(warning.Reason) {
		t.Errorf("reason is not valid UTF-8")
	}
	if len(warning.Reason) != MaxReasonLength-1 {
		t.Errorf("reason length = %d, want %d", len(warning.Reason), MaxReasonLength-1)
	}
	if warnings.inserted[0].Reason != warning.Reason {
		t.Error("stored reason differs from returned warning")
	}
}

func TestCreateModLogCounterFailure(t *testing.T) {
	ledger, cases, _, msg := newTestLedger()
	cases.nextErr = errors.New("db down")

	if _, err := ledger.CreateModLog(testOptions()); err == nil {
		t.Fatal("expected error")
	}
	if len(cases.inserted) != 0 {
		t.Error("no case should be inserted when allocation fails")
	}
	if len(msg.posts) != 0 || len(msg.dms) != 0 {
		t.Error("no notifications should be sent when allocation fails")
	}
}

func TestCreateModLogInsertFailure(t *testing.T) {
	ledger, cases, _, msg := newTestLedger()
	cases.insertErr = errors.New("write failed")

	if _, err := ledger.CreateModLog(testOptions()); err == nil {
		t.Fatal("expected error")
	}
	if len(msg.posts) != 0 || len(msg.dms) != 0 {
		t.Error("no notifications should be sent for an unrecorded case")
	}

	// The burned number is skipped, never reused.
	cases.insertErr = nil
	got, err := ledger.CreateModLog(testOptions())
	if err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}
	if got != 2 {
		t.Errorf("case number after failed insert = %d, want 2", got)
	}
}

func TestCreateModLogNotifications(t *testing.T) {
	ledger, _, _, msg := newTestLedger()

	if _, err := ledger.CreateModLog(testOptions()); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}

	posts := msg.posts["log-channel"]
	if len(posts) != 1 {
		t.Fatalf("log channel posts = %d, want 1", len(posts))
	}
	if !strings.Contains(posts[0].Title, "Caso #1") {
		t.Errorf("channel embed title = %q", posts[0].Title)
	}

	dms := msg.dms["target"]
	if len(dms) != 1 {
		t.Fatalf("target DMs = %d, want 1", len(dms))
	}
	if !strings.Contains(dms[0].Title, "Servidor de prueba") {
		t.Errorf("DM embed title = %q", dms[0].Title)
	}
}

func TestCreateModLogNotificationFailuresIgnored(t *testing.T) {
	ledger, cases, _, msg := newTestLedger()
	msg.channelErr = errors.New("missing access")
	msg.dmErr = errors.New("cannot DM user")

	got, err := ledger.CreateModLog(testOptions())
	if err != nil {
		t.Fatalf("notification failures must not fail the case: %v", err)
	}
	if got != 1 {
		t.Errorf("case number = %d, want 1", got)
	}
	if len(cases.inserted) != 1 {
		t.Error("case should still be recorded")
	}
}

func TestCreateModLogWithoutLogChannel(t *testing.T) {
	cases := &fakeCaseStore{}
	msg := newFakeMessenger()
	ledger := NewLedger(&fakePolicyStore{cfg: &models.GuildConfig{GuildID: "g1"}}, cases, &fakeWarningStore{}, msg)

	if _, err := ledger.CreateModLog(testOptions()); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}
	if len(msg.posts) != 0 {
		t.Error("no channel post expected without a configured log channel")
	}
	if len(msg.dms["target"]) != 1 {
		t.Error("target should still be notified by DM")
	}
}

func TestCreateModLogMuteEmbedDuration(t *testing.T) {
	ledger, _, _, msg := newTestLedger()

	opts := testOptions()
	opts.Type = models.ActionMute
	opts.Duration = 600
	if _, err := ledger.CreateModLog(opts); err != nil {
		t.Fatalf("CreateModLog: %v", err)
	}

	embed := msg.posts["log-channel"][0]
	found := false
	for _, field := range embed.Fields {
		if field.Name == "Duración" && field.Value == "10 minutes" {
			found = true
		}
	}
	if !found {
		t.Error("mute embed should carry a formatted duration field")
	}
}

func TestGetModLogsLimits(t *testing.T) {
	ledger, cases, _, _ := newTestLedger()

	if _, err := ledger.GetModLogs("g1", models.ModLogFilter{}); err != nil {
		t.Fatalf("GetModLogs: %v", err)
	}
	if cases.lastLimit != 10 {
		t.Errorf("default limit = %d, want 10", cases.lastLimit)
	}

	if _, err := ledger.GetModLogs("g1", models.ModLogFilter{CaseNumber: 7}); err != nil {
		t.Fatalf("GetModLogs: %v", err)
	}
	if cases.lastLimit != 1 {
		t.Errorf("case filter limit = %d, want 1", cases.lastLimit)
	}
	if cases.lastFilter.CaseNumber != 7 {
		t.Errorf("filter not forwarded: %+v", cases.lastFilter)
	}
}

func TestAddWarning(t *testing.T) {
	ledger, _, warnings, _ := newTestLedger()

	w, err := ledger.AddWarning("g1", "u1", "mod", "flood")
	if err != nil {
		t.Fatalf("AddWarning: %v", err)
	}
	if w.ID == "" {
		t.Error("warning should get a generated ID")
	}
	if w.GuildID != "g1" || w.UserID != "u1" || w.ModeratorID != "mod" || w.Reason != "flood" {
		t.Errorf("warning fields: %+v", w)
	}
	if w.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if len(warnings.inserted) != 1 {
		t.Error("warning not persisted")
	}

	w2, err := ledger.AddWarning("g1", "u1", "mod", "")
	if err != nil {
		t.Fatalf("AddWarning: %v", err)
	}
	if w2.Reason != "Sin razón especificada" {
		t.Errorf("default reason = %q", w2.Reason)
	}
	if w2.ID == w.ID {
		t.Error("warning IDs should be unique")
	}
}

func TestAddWarningInsertFailure(t *testing.T) {
	ledger, _, warnings, _ := newTestLedger()
	warnings.insertErr = errors.New("write failed")

	if _, err := ledger.AddWarning("g1", "u1", "mod", "flood"); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetWarnings(t *testing.T) {
	ledger, _, warnings, _ := newTestLedger()
	warnings.stored = []*models.Warning{{ID: "w1"}, {ID: "w2"}}

	got, err := ledger.GetWarnings("g1", "u1")
	if err != nil {
		t.Fatalf("GetWarnings: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d warnings, want 2", len(got))
	}
}
