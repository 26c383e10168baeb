package models

import "time"

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
	NotificationHidden = "hidden"
)

// Notification rows are created by the reminder pipeline; this service only
// moves their status forward (unread -> read, any -> hidden).
type Notification struct {
	ID                 uint      `gorm:"primaryKey"`
	ClientID           uint      `gorm:"not null;index"`
	NotificationTitle  string    `gorm:"size:255;not null"`
	NotificationText   string    `gorm:"not null"`
	NotificationStatus string    `gorm:"size:10;not null;default:unread"`
	NotificationDate   time.Time `gorm:"autoCreateTime"`
	CycleReminder      bool      `gorm:"not null;default:false"`
	Processed          bool      `gorm:"not null;default:false"`
}
