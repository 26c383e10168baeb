package models

import "time"

// CustomerNote is a staff-written note attached to a client, append-only.
type CustomerNote struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	NoteTitle  string `gorm:"size:255"`
	NoteText   string
	Datetime   *time.Time
}
