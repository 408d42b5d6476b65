package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID            int        `json:"id"`
	FullName      string     `json:"full_name"`
	Headline      string     `json:"headline,omitempty"`
	Role          string     `json:"role"`
	City          string     `json:"city"`
	Cities        TagList    `json:"cities,omitempty"`
	Categories    TagList    `json:"categories,omitempty"`
	Subcategories TagList    `json:"subcategories,omitempty"`
	Active        bool       `json:"active"`
	LastActiveAt  *time.Time `json:"last_active_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// ProfileSummary is the profile block returned alongside matches.
type ProfileSummary struct {
	ID           int          `json:"id"`
	FullName     string       `json:"full_name"`
	Headline     string       `json:"headline,omitempty"`
	Active       bool         `json:"active"`
	City         string       `json:"city"`
	LastActiveAt *time.Time   `json:"last_active_at,omitempty"`
	Filters      FilterCounts `json:"filters"`
}

// FilterCounts tells the UI how much of the matching profile is filled in.
type FilterCounts struct {
	Cities        int `json:"cities"`
	Categories    int `json:"categories"`
	Subcategories int `json:"subcategories"`
}
