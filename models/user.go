package models

import "time"

// User is an account that can own favorites.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Favorite links a user to a food. A (UserID, FoodID) pair is unique.
type Favorite struct {
	ID        int64
	UserID    int64
	FoodID    int64
	CreatedAt time.Time
}
