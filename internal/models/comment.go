package models

import "time"

// Comment represents a comment attached to a passage, vocabulary item, writing or recording
type Comment struct {
	ID         int        `json:"id"`
	UserID     int        `json:"userId"`
	Content    string     `json:"content"`
	TargetType TargetType `json:"targetType"`
	TargetID   int        `json:"targetId"`
	CreatedAt  time.Time  `json:"createdAt"`
	IsPublic   bool       `json:"isPublic"`
}

func (c *Comment) GetID() int   { return c.ID }
func (c *Comment) SetID(id int) { c.ID = id }

// VisibleTo reports whether the comment can be seen by the user
func (c *Comment) VisibleTo(userID int) bool {
	return c.IsPublic || c.UserID == userID
}

// CreateCommentRequest represents a request to post a comment
type CreateCommentRequest struct {
	Content    string     `json:"content" validate:"required,max=5000"`
	TargetType TargetType `json:"targetType" validate:"required,oneof=passage vocabulary writing speaking"`
	TargetID   int        `json:"targetId" validate:"required,min=1"`
	IsPublic   bool       `json:"isPublic"`
}
