package model

import "time"

type Document struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customer_id"`
	Name        string     `json:"name"`
	Uploaded    bool       `json:"uploaded"`
	UploadDate  *time.Time `json:"upload_date,omitempty"`
	Verified    bool       `json:"verified"`
	VerifiedBy  string     `json:"verified_by,omitempty"`
	SubmittedTo string     `json:"submitted_to,omitempty"`
	DoneBy      string     `json:"done_by,omitempty"`
	FileURL     string     `json:"file_url,omitempty"`
	Status      string     `json:"status"` // pending / in_progress / completed
	// ManualStatus marks Status as an operator override; otherwise status is
	// auto-detected from the upload/verification flags.
	ManualStatus bool       `json:"manual_status"`
	Remark       string     `json:"remark,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
