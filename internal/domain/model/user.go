package model

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID                    string    `json:"id"`
	Username              string    `json:"username"`
	HashedPassword        string    `json:"-"` // Not exposed
	Role                  string    `json:"role"`
	FullName              string    `json:"full_name"`
	LeetCodeUsername      *string   `json:"leetcode_username,omitempty"`
	GeeksForGeeksUsername *string   `json:"geeksforgeeks_username,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}
