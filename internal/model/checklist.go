package model

import "time"

type ChecklistItem struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	Task          string     `json:"task"`
	Status        string     `json:"status"` // pending / in_progress / completed
	Remark        string     `json:"remark,omitempty"`
	DoneBy        string     `json:"done_by,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
