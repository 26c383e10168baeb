package models

import "time"

// TestAnswer is one answered question as submitted by the client app.
type TestAnswer struct {
	Subscale string `json:"subscale"`
	Score    int    `json:"score"`
}

type SubscaleResult struct {
	Score    int    `json:"score"`
	Severity string `json:"severity"`
}

type DASSResult struct {
	Depression SubscaleResult `json:"depression"`
	Anxiety    SubscaleResult `json:"anxiety"`
	Stress     SubscaleResult `json:"stress"`
}

// TestResult is append-only. TestOrdinalNumber is the 1-based position of
// the test among all tests taken by the same client, assigned at creation.
type TestResult struct {
	ID                uint         `gorm:"primaryKey"`
	ClientID          uint         `gorm:"not null;index"`
	TestTypeID        int          `gorm:"not null"`
	RawTestResult     []TestAnswer `gorm:"serializer:json"`
	FinalTestResult   DASSResult   `gorm:"serializer:json"`
	TestTakenAt       time.Time    `gorm:"autoCreateTime"`
	TestOrdinalNumber int
}
