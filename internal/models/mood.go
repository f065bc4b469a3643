package models

import "time"

// MoodLabel is one of the supported mood values
type MoodLabel string

const (
	MoodMotivated  MoodLabel = "motivated"
	MoodHappy      MoodLabel = "happy"
	MoodNeutral    MoodLabel = "neutral"
	MoodTired      MoodLabel = "tired"
	MoodFrustrated MoodLabel = "frustrated"
)

// DefaultMoodLimit is the number of moods returned when no limit is requested
const DefaultMoodLimit = 30

// Mood represents a mood entry of a user
type Mood struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Mood      MoodLabel `json:"mood"`
	Note      *string   `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *Mood) GetID() int   { return m.ID }
func (m *Mood) SetID(id int) { m.ID = id }

// CreateMoodRequest represents a request to record a mood
type CreateMoodRequest struct {
	Mood MoodLabel `json:"mood" validate:"required,oneof=motivated happy neutral tired frustrated"`
	Note *string   `json:"note" validate:"omitempty,max=1000"`
}
