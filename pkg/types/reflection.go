package types

// Reflection is one journaled answer to a coaching prompt.
// Mood and energy ratings are on a 1-10 scale.
type Reflection struct {
	ID           int64  `json:"id" db:"id"`
	UserID       string `json:"user_id" db:"user_id"`
	Date         string `json:"date" db:"date"`
	Prompt       string `json:"prompt" db:"prompt"`
	Response     string `json:"response" db:"response"`
	MoodRating   int    `json:"mood_rating" db:"mood_rating"`
	EnergyRating int    `json:"energy_rating" db:"energy_rating"`
	Insights     string `json:"insights" db:"insights"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
}
