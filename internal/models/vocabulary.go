package models

// Vocabulary represents a vocabulary item
type Vocabulary struct {
	ID         int       `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition"`
	Example    *string   `json:"example"`
	UserID     int       `json:"userId"`
	FolderID   *int      `json:"folderId"`
	Reactions  Reactions `json:"reactions"`
	IsPublic   bool      `json:"isPublic"`
}

func (v *Vocabulary) GetID() int   { return v.ID }
func (v *Vocabulary) SetID(id int) { v.ID = id }

// VisibleTo reports whether the item can be seen by the user
func (v *Vocabulary) VisibleTo(userID int) bool {
	return v.IsPublic || v.UserID == userID
}

// CreateVocabularyRequest represents a request to create a vocabulary item
type CreateVocabularyRequest struct {
	Word       string  `json:"word" validate:"required,max=255"`
	Definition string  `json:"definition" validate:"required"`
	Example    *string `json:"example"`
	FolderID   *int    `json:"folderId" validate:"omitempty,min=1"`
	IsPublic   bool    `json:"isPublic"`
}
