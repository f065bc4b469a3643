package models

// Passage represents a reading passage
type Passage struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int       `json:"userId"`
	FolderID  *int      `json:"folderId"`
	Reactions Reactions `json:"reactions"`
	IsPublic  bool      `json:"isPublic"`
}

func (p *Passage) GetID() int   { return p.ID }
func (p *Passage) SetID(id int) { p.ID = id }

// VisibleTo reports whether the passage can be seen by the user
func (p *Passage) VisibleTo(userID int) bool {
	return p.IsPublic || p.UserID == userID
}

// CreatePassageRequest represents a request to create a passage
type CreatePassageRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Content  string `json:"content" validate:"required"`
	FolderID *int   `json:"folderId" validate:"omitempty,min=1"`
	IsPublic bool   `json:"isPublic"`
}
