package model

import "time"

// Theme is the dashboard color scheme flag, the one preference persisted
// across sessions.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preference stores per-owner dashboard preferences.
type Preference struct {
	OwnerID   string    `json:"ownerId" bson:"ownerId"`
	Theme     Theme     `json:"theme" bson:"theme"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
