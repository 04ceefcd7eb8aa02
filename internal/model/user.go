package model

import "time"

// User is a registered account. PasswordHash is nil for OAuth-provisioned
// accounts and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash *string   `json:"-"`
	Name         *string   `json:"name,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	Location     *string   `json:"location,omitempty"`
	ProfileImage *string   `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// AuthRequest is the API request body for register and login.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the API response after a successful register or login.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthUser is the slim user record embedded in auth responses.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// ProfileResponse is the API response for profile lookups.
type ProfileResponse struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

// ProfileUpdateRequest carries the editable profile fields. Absent fields
// are left unchanged.
type ProfileUpdateRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Bio          *string `json:"bio"`
	Location     *string `json:"location"`
	ProfileImage *string `json:"profileImage"`
}

// PasswordUpdateRequest is the API request body for password changes.
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
