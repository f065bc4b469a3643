package models

// User represents an account of the application
type User struct {
	ID                int     `json:"id"`
	Username          string  `json:"username"`
	Password          string  `json:"password,omitempty"` // bcrypt hash, stripped by Public before leaving the API
	TelegramChannelID *string `json:"telegramChannelId"`
	IsAdmin           bool    `json:"isAdmin"`
}

func (u *User) GetID() int   { return u.ID }
func (u *User) SetID(id int) { u.ID = id }

// UserResponse is the user representation returned by the API
type UserResponse struct {
	ID                int     `json:"id"`
	Username          string  `json:"username"`
	TelegramChannelID *string `json:"telegramChannelId"`
	IsAdmin           bool    `json:"isAdmin"`
}

// Public returns the user without the password hash
func (u *User) Public() *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		TelegramChannelID: u.TelegramChannelID,
		IsAdmin:           u.IsAdmin,
	}
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateTelegramChannelRequest represents a request to set the Telegram channel of the caller
type UpdateTelegramChannelRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
}
