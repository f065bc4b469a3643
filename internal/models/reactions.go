package models

// Reactions maps a reaction name to its count. A missing key means zero.
type Reactions map[string]int

// NewReactions returns an empty, non-nil reaction map
func NewReactions() Reactions {
	return Reactions{}
}

// Valid reports whether every count is non-negative
func (r Reactions) Valid() bool {
	for _, count := range r {
		if count < 0 {
			return false
		}
	}
	return true
}

// SuccessResponse is returned by endpoints that only acknowledge an update
type SuccessResponse struct {
	Success bool `json:"success"`
}
