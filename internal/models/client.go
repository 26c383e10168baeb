package models

import "time"

// Client is provisioned out of band and never hard-deleted; retiring a
// client clears the Existing flag.
type Client struct {
	ID                     uint `gorm:"primaryKey"`
	FirstName              string
	LastName               string
	LoggedIn               bool       `gorm:"not null;default:false"`
	Email                  string     `gorm:"size:255;index"`
	HashedEmailAndPassword string     `gorm:"size:255;index"`
	Language               string     `gorm:"size:50"`
	Weight                 *float64   `gorm:"type:decimal(5,2)"`
	Height                 *float64   `gorm:"type:decimal(5,2)"`
	DateOfBirth            *time.Time `gorm:"type:date"`
	CycleType              string     `gorm:"size:50"`
	PasswordResetCode      *int
	PeriodLength           *int
	MenstrualCyclusLength  *int
	DassTestsTaken         int        `gorm:"not null;default:0"`
	TotalDassTestsNumber   int        `gorm:"not null;default:0"`
	UserToken              string     `gorm:"size:50;index"`
	NotificationToken      string     `gorm:"size:500"`
	ProfileImage           string     `gorm:"size:500"`
	PeriodDates            []string   `gorm:"serializer:json"`
	Disability             bool       `gorm:"not null;default:false"`
	GeneticDisorder        bool       `gorm:"not null;default:false"`
	LastDassTestDate       *time.Time `gorm:"type:date"`
	NextDassTestDate       *time.Time `gorm:"type:date"`
	Address                string     `gorm:"size:255"`
	City                   string     `gorm:"size:255"`
	Country                string     `gorm:"size:255"`
	PostalCode             string     `gorm:"size:20"`
	Telephone              string     `gorm:"size:50"`
	Existing               bool       `gorm:"not null;default:true"`
	Paid                   bool       `gorm:"not null;default:false"`
}
