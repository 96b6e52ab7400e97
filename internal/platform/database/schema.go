package database

import (
	"context"
	"log"

	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/platform/config"

	"github.com/google/uuid"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		hashed_password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'user' CHECK(role IN ('admin', 'user')),
		full_name VARCHAR(100),
		leetcode_username VARCHAR(50),
		geeksforgeeks_username VARCHAR(50),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		id UUID PRIMARY KEY,
		question_name VARCHAR(255) NOT NULL,
		question_link TEXT NOT NULL,
		type VARCHAR(50) NOT NULL CHECK(type IN ('homework', 'classwork')),
		difficulty VARCHAR(50) NOT NULL CHECK(difficulty IN ('easy', 'medium', 'hard')),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id UUID REFERENCES users(id) ON DELETE CASCADE,
		question_id UUID REFERENCES questions(id) ON DELETE CASCADE,
		is_solved BOOLEAN NOT NULL DEFAULT FALSE,
		solved_at TIMESTAMP,
		notes TEXT,
		PRIMARY KEY (user_id, question_id)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		user_id UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		token TEXT NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates any missing tables and seeds the default admin account.
func EnsureSchema(ctx context.Context) {
	for _, stmt := range schemaStatements {
		if _, err := DB.ExecContext(ctx, stmt); err != nil {
			log.Fatalf("Error ensuring database schema: %v", err)
		}
	}

	if config.AppConfig.AdminPassword != "" {
		seedAdmin(ctx)
	}

	log.Println("Database tables ready")
}

func seedAdmin(ctx context.Context) {
	hashed, err := security.HashPassword(config.AppConfig.AdminPassword)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}
	query := `INSERT INTO users (id, username, hashed_password, role, full_name)
	          VALUES ($1, $2, $3, 'admin', 'Admin User')
	          ON CONFLICT (username) DO NOTHING`
	if _, err := DB.ExecContext(ctx, query, uuid.NewString(), config.AppConfig.AdminUsername, hashed); err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}
}
