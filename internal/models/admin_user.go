package models

// AdminUser is a staff account for the CRM surface. Password holds a bcrypt
// hash, never the plaintext credential.
type AdminUser struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex"`
	Password  string `gorm:"size:255"`
	Token     string `gorm:"size:254"`
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`
	Phone     string `gorm:"size:20"`
}
