package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Question is a multiple choice question of a listening lesson
type Question struct {
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"len=4,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"min=0,max=3"`
}

// Questions is an ordered list of questions.
// It decodes both from a JSON array and from a string holding a JSON array.
type Questions []Question

// UnmarshalJSON implements json.Unmarshaler
func (q *Questions) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		data = []byte(encoded)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return fmt.Errorf("questions must be a JSON array: %w", err)
	}
	*q = questions
	return nil
}

// Lesson represents a listening lesson with its quiz
type Lesson struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Title         string    `json:"title"`
	Transcription string    `json:"transcription"`
	Questions     Questions `json:"questions"`
	AudioURL      *string   `json:"audioUrl"`
}

func (l *Lesson) GetID() int   { return l.ID }
func (l *Lesson) SetID(id int) { l.ID = id }

// CreateLessonRequest represents a request to store a lesson
type CreateLessonRequest struct {
	Title         string    `json:"title" validate:"required,max=255"`
	Transcription string    `json:"transcription" validate:"required"`
	Questions     Questions `json:"questions" validate:"required,min=1,dive"`
	AudioURL      *string   `json:"audioUrl"`
}
