package model

import "time"

type Inspection struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customer_id"`
	Document       string     `json:"document"`
	Submitted      bool       `json:"submitted"`
	SubmissionDate *time.Time `json:"submission_date,omitempty"`
	InwardNo       string     `json:"inward_no,omitempty"`
	QCName         string     `json:"qc_name,omitempty"`
	InspectionDate *time.Time `json:"inspection_date,omitempty"`
	// Approved is a distinct sign-off separate from Status: commissioning
	// unlocks only when every inspection is approved, not merely completed.
	Approved  bool       `json:"approved"`
	Status    string     `json:"status"` // pending / in_progress / completed
	Remark    string     `json:"remark,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
