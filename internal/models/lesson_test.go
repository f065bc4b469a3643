package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expected      Questions
		expectedError bool
	}{
		{
			name: "array",
			body: `{"questions":[{"text":"Q1","options":["a","b","c","d"],"correctAnswer":2}]}`,
			expected: Questions{
				{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
			},
		},
		{
			name: "string holding an array",
			body: `{"questions":"[{\"text\":\"Q1\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctAnswer\":0}]"}`,
			expected: Questions{
				{Text: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: 0},
			},
		},
		{
			name:          "string that is not JSON",
			body:          `{"questions":"not json"}`,
			expectedError: true,
		},
		{
			name:          "object instead of array",
			body:          `{"questions":{"text":"Q1"}}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateLessonRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Questions)
		})
	}
}

func TestUser_Public(t *testing.T) {
	user := &User{ID: 3, Username: "ana", Password: "hash", IsAdmin: true}

	data, err := json.Marshal(user.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(data), "password")
	assert.JSONEq(t, `{"id":3,"username":"ana","telegramChannelId":null,"isAdmin":true}`, string(data))
}

func TestReactions_Valid(t *testing.T) {
	assert.True(t, NewReactions().Valid())
	assert.True(t, Reactions{"helpful": 0, "star": 3}.Valid())
	assert.False(t, Reactions{"helpful": -1}.Valid())
}
