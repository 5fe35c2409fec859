package model

import "time"

// User represents a user record exposed by the API.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"firstName" gorm:"size:255;not null" validate:"required"`
	LastName  string    `json:"lastName" gorm:"size:255;not null" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null" validate:"required,email"`
	Age       int       `json:"age" gorm:"not null" validate:"min=0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
