package model

import "time"

type ActivityLog struct {
	ID         string    `json:"id"`
	UserName   string    `json:"user_name"`
	UserID     string    `json:"user_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Section    string    `json:"section"`
	Action     string    `json:"action"`
	CreatedAt  time.Time `json:"created_at"`
}
