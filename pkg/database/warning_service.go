package database

import (
	"errors"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrWarningManagerNotInitialized = errors.New("warning data manager not initialized")

// WarningService adapts the warnings collection to the warning-store
// interface consumed by pkg/moderation.
type WarningService struct{}

// Insert persists a warning record.
func (WarningService) Insert(warning *models.Warning) error {
	if GlobalWarningDM == nil {
		return ErrWarningManagerNotInitialized
	}
	return GlobalWarningDM.Insert(warning)
}

// Query returns every warning of a user in a guild, newest first.
func (WarningService) Query(guildID, userID string) ([]*models.Warning, error) {
	if GlobalWarningDM == nil {
		return nil, ErrWarningManagerNotInitialized
	}

	query := bson.M{"guildId": guildID, "userId": userID}
	return GlobalWarningDM.GetAllSorted(query, bson.D{{Key: "timestamp", Value: -1}}, 0)
}
