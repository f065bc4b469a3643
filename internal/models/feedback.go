package models

// Feedback represents a review left on a writing or speaking submission
type Feedback struct {
	ID         int        `json:"id"`
	Content    string     `json:"content"`
	UserID     int        `json:"userId"`
	TargetType TargetType `json:"targetType"`
	TargetID   int        `json:"targetId"`
}

func (f *Feedback) GetID() int   { return f.ID }
func (f *Feedback) SetID(id int) { f.ID = id }

// CreateFeedbackRequest represents a request to leave feedback
type CreateFeedbackRequest struct {
	Content    string     `json:"content" validate:"required"`
	TargetType TargetType `json:"targetType" validate:"required,oneof=passage vocabulary writing speaking"`
	TargetID   int        `json:"targetId" validate:"required,min=1"`
}
