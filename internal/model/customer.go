package model

import "time"

type Customer struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ConsumerNumber string    `json:"consumer_number"`
	Mobile         string    `json:"mobile"`
	Address        string    `json:"address"`
	SystemCapacity float64   `json:"system_capacity"`
	OrderAmount    float64   `json:"order_amount"`
	OrderDate      time.Time `json:"order_date"`
	AssignedTo     *string   `json:"assigned_to,omitempty"`
	ApprovalStatus string    `json:"approval_status"` // pending / verified / completed
	Progress       int       `json:"progress"`        // derived, recomputed on every mutation
	Locked         bool      `json:"locked"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
