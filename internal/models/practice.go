package models

// Writing represents a submitted writing practice
type Writing struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int       `json:"userId"`
	Reactions Reactions `json:"reactions"`
	IsPublic  bool      `json:"isPublic"`
}

func (w *Writing) GetID() int   { return w.ID }
func (w *Writing) SetID(id int) { w.ID = id }

// VisibleTo reports whether the writing can be seen by the user
func (w *Writing) VisibleTo(userID int) bool {
	return w.IsPublic || w.UserID == userID
}

// Speaking represents a submitted speaking practice recording
type Speaking struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	AudioURL  string    `json:"audioUrl"`
	UserID    int       `json:"userId"`
	Reactions Reactions `json:"reactions"`
	IsPublic  bool      `json:"isPublic"`
}

func (s *Speaking) GetID() int   { return s.ID }
func (s *Speaking) SetID(id int) { s.ID = id }

// VisibleTo reports whether the recording can be seen by the user
func (s *Speaking) VisibleTo(userID int) bool {
	return s.IsPublic || s.UserID == userID
}

// CreateWritingRequest represents a request to submit a writing
type CreateWritingRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	IsPublic bool   `json:"isPublic"`
}

// CreateSpeakingRequest represents a request to submit a speaking recording
type CreateSpeakingRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	AudioURL string `json:"audioUrl" validate:"required"`
	IsPublic bool   `json:"isPublic"`
}
