package models

// FolderType is the kind of content a folder groups
type FolderType string

const (
	FolderTypePassage    FolderType = "passage"
	FolderTypeVocabulary FolderType = "vocabulary"
)

// IsValid reports whether t is a known folder type
func (t FolderType) IsValid() bool {
	return t == FolderTypePassage || t == FolderTypeVocabulary
}

// Folder represents a named group of passages or vocabulary items
type Folder struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	UserID   int        `json:"userId"`
	Type     FolderType `json:"type"`
	IsPublic bool       `json:"isPublic"`
}

func (f *Folder) GetID() int   { return f.ID }
func (f *Folder) SetID(id int) { f.ID = id }

// VisibleTo reports whether the folder can be seen by the user
func (f *Folder) VisibleTo(userID int) bool {
	return f.IsPublic || f.UserID == userID
}

// CreateFolderRequest represents a request to create a folder
type CreateFolderRequest struct {
	Name     string     `json:"name" validate:"required,max=255"`
	Type     FolderType `json:"type" validate:"required,oneof=passage vocabulary"`
	IsPublic bool       `json:"isPublic"`
}
