package models

import "time"

// AchievementType is one of the supported achievement kinds
type AchievementType string

const (
	AchievementCompletion AchievementType = "completion"
	AchievementStreak     AchievementType = "streak"
	AchievementMastery    AchievementType = "mastery"
	AchievementExcellence AchievementType = "excellence"
	AchievementChampion   AchievementType = "champion"
	AchievementLegend     AchievementType = "legend"
)

// Achievement represents an achievement earned by a user
type Achievement struct {
	ID       int             `json:"id"`
	UserID   int             `json:"userId"`
	Type     AchievementType `json:"type"`
	Label    string          `json:"label"`
	EarnedAt time.Time       `json:"earnedAt"`
}

func (a *Achievement) GetID() int   { return a.ID }
func (a *Achievement) SetID(id int) { a.ID = id }

// CreateAchievementRequest represents a request to record an achievement
type CreateAchievementRequest struct {
	Type  AchievementType `json:"type" validate:"required,oneof=completion streak mastery excellence champion legend"`
	Label string          `json:"label" validate:"required,max=255"`
}
