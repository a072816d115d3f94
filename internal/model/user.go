package model

import "time"

// User aggregates purchase activity per user id. Name and email are
// refreshed on every purchase attempt; the id is immutable. Aggregates
// (SuccessfulPurchases, TotalSpent, IsPremium) change only when a payment
// is confirmed as completed.
type User struct {
	UserID                 string     `json:"userId"`
	UserName               string     `json:"userName"`
	UserEmail              string     `json:"userEmail"`
	FirstSeen              time.Time  `json:"firstSeen"`
	LastPurchaseAttempt    time.Time  `json:"lastPurchaseAttempt"`
	TotalAttempts          int        `json:"totalAttempts"`
	SuccessfulPurchases    int        `json:"successfulPurchases"`
	TotalSpent             int64      `json:"totalSpent"`
	LastSuccessfulPurchase *time.Time `json:"lastSuccessfulPurchase,omitempty"`
	IsPremium              bool       `json:"isPremium"`
}
