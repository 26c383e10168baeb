package models

// Translation maps one UI keyword to its localized strings. Language values
// may be absent; lookups surface them as null rather than dropping the key.
type Translation struct {
	ID      uint    `gorm:"primaryKey"`
	Keyword string  `gorm:"size:5000;not null"`
	English *string `gorm:"size:5000"`
	Serbian *string `gorm:"size:5000"`
	Russian *string `gorm:"size:5000"`
	Chinese *string `gorm:"size:5000"`
}
