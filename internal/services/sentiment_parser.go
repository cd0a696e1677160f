package services

import (
	"fmt"

	"vibecheck/pkg/utils"
)

// validateSentimentPayload is the response validator: the returned user_id
// must match the request and the rating must sit inside [0, 100]. Values are
// rejected, never clamped or repaired.
func validateSentimentPayload(payload *utils.SentimentPayload, wantUserID uint) error {
	if payload == nil {
		return fmt.Errorf("%w: empty payload", utils.ErrSchemaViolation)
	}
	if payload.UserID != wantUserID {
		return fmt.Errorf("%w: response user_id %d does not match request user_id %d",
			utils.ErrSchemaViolation, payload.UserID, wantUserID)
	}
	if payload.SentimentRating < 0 || payload.SentimentRating > 100 {
		return fmt.Errorf("%w: sentiment_rating %g outside [0, 100]",
			utils.ErrSchemaViolation, payload.SentimentRating)
	}
	return nil
}
