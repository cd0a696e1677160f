package db_models

// SentimentRating is the persisted result of one successful analysis run:
// the six input fields it was derived from plus the AI-produced rating out
// of 100. The rating is never computed locally.
type SentimentRating struct {
	BaseModel
	UserID          uint       `gorm:"not null;index:idx_sentiment_user_id;index:idx_user_sentiment,priority:1" json:"user_id"`
	Summary         string     `gorm:"size:100;not null" json:"summary"`
	Mood            Mood       `gorm:"type:varchar(16);not null" json:"mood"`
	EnergyLevel     int        `gorm:"not null" json:"energy_level"`
	Complexity      Complexity `gorm:"type:varchar(16);not null" json:"complexity"`
	Satisfaction    float64    `gorm:"not null" json:"satisfaction"`
	SentimentRating float64    `gorm:"not null;index:idx_sentiment_rating;index:idx_user_sentiment,priority:2" json:"sentiment_rating"`
}
