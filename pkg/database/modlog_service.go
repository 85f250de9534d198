package database

import (
	"errors"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrModLogManagerNotInitialized = errors.New("modlog data manager not initialized")

// ModLogService adapts the modlogs and counters collections to the
// case-store interface consumed by pkg/moderation.
type ModLogService struct{}

// NextCaseNumber allocates the next case number for a guild. The allocation is
// a single atomic $inc upsert on the guild's counter document, so concurrent
// moderation actions in the same guild can never receive the same number.
func (ModLogService) NextCaseNumber(guildID string) (int, error) {
	if GlobalCounterDM == nil {
		return 0, ErrModLogManagerNotInitialized
	}

	counter, err := GlobalCounterDM.IncrementAndGet(bson.M{"guildId": guildID}, "seq")
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}

// Insert persists a moderation case. Failures are reported to the caller:
// a case must never be considered logged unless the row actually exists.
func (ModLogService) Insert(entry *models.ModLog) error {
	if GlobalModLogDM == nil {
		return ErrModLogManagerNotInitialized
	}
	return GlobalModLogDM.Insert(entry)
}

// Query returns cases of a guild matching the filter, newest first.
func (ModLogService) Query(guildID string, filter models.ModLogFilter, limit int64) ([]*models.ModLog, error) {
	if GlobalModLogDM == nil {
		return nil, ErrModLogManagerNotInitialized
	}

	query := bson.M{"guildId": guildID}
	if filter.TargetID != "" {
		query["targetId"] = filter.TargetID
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.CaseNumber > 0 {
		query["caseNumber"] = filter.CaseNumber
	}

	return GlobalModLogDM.GetAllSorted(query, bson.D{{Key: "timestamp", Value: -1}}, limit)
}
