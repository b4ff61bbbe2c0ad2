package models

import "gorm.io/gorm"

// Profile holds the public display data of an authenticated user
type Profile struct {
	gorm.Model `json:"-"`
	UserID     string `json:"user_id" gorm:"uniqueIndex"` // Firebase UID
	FullName   string `json:"full_name"`
}

// UpsertProfileRequest defines the request body for creating or updating
// the caller's profile
type UpsertProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=50"`
}
