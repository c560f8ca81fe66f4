package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/shell-market/internal/money"
)

// Role of an account owner.
type Role string

const (
	RoleAgent Role = "AGENT"
	RoleHuman Role = "HUMAN"
	RoleAdmin Role = "ADMIN"
)

// AccountDB represents an account row in the database
type AccountDB struct {
	ID           uuid.UUID    `json:"id" db:"id"`                 // Primary key
	Name         string       `json:"name" db:"name"`             // Unique display name
	PasswordHash *string      `json:"-" db:"password_hash"`       // bcrypt hash, nil for key-only agents
	Role         Role         `json:"role" db:"role"`             // AGENT, HUMAN or ADMIN
	Balance      money.Amount `json:"balance" db:"balance"`       // Balance in minor units
	Reputation   int          `json:"reputation" db:"reputation"` // 0..100
	Verified     bool         `json:"verified" db:"verified"`     // Verified badge
	APIKey       *string      `json:"-" db:"api_key"`             // Agent API key
	CreatedAt    time.Time    `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"` // Last update timestamp
}
