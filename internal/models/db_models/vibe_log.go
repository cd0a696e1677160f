package db_models

// Mood is the user's self-reported emotional state.
type Mood string

const (
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodHappy   Mood = "happy"
	MoodGood    Mood = "good"
	MoodExcited Mood = "excited"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodSad, MoodAngry, MoodHappy, MoodGood, MoodExcited:
		return true
	}
	return false
}

// Complexity is how challenging the user's current situation is.
type Complexity string

const (
	ComplexityEasy     Complexity = "easy"
	ComplexityMedium   Complexity = "medium"
	ComplexityHard     Complexity = "hard"
	ComplexityVeryHard Complexity = "very_hard"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexityEasy, ComplexityMedium, ComplexityHard, ComplexityVeryHard:
		return true
	}
	return false
}

// VibeLog is one journal entry of a user's mood snapshot. SentimentRating is
// filled in asynchronously by the AI enrichment task and stays nil when the
// sentiment service is unavailable.
type VibeLog struct {
	BaseModel
	UserID          uint       `gorm:"not null;index:idx_vibe_log_user_id" json:"user_id"`
	Summary         string     `gorm:"size:100;not null" json:"summary"`
	Mood            Mood       `gorm:"type:varchar(16);not null;index:idx_vibe_log_mood" json:"mood"`
	EnergyLevel     int        `gorm:"not null" json:"energy_level"`
	Complexity      Complexity `gorm:"type:varchar(16);not null" json:"complexity"`
	Satisfaction    float64    `gorm:"not null" json:"satisfaction"`
	SentimentRating *float64   `json:"sentiment_rating,omitempty"`
}
