package model

import "time"

// Commissioning is a single per-customer record, absent until the
// commissioning phase begins.
type Commissioning struct {
	ID                  string     `json:"id"`
	CustomerID          string     `json:"customer_id"`
	ReleaseOrderNumber  string     `json:"release_order_number,omitempty"`
	ReleaseOrderDate    *time.Time `json:"release_order_date,omitempty"`
	MeterFittingDate    *time.Time `json:"meter_fitting_date,omitempty"`
	GenerationMeterNo   string     `json:"generation_meter_no,omitempty"`
	UtilityMeterNo      string     `json:"utility_meter_no,omitempty"`
	SystemStartDate     *time.Time `json:"system_start_date,omitempty"`
	SubsidyReceivedDate *time.Time `json:"subsidy_received_date,omitempty"`
	CommissioningReport string     `json:"commissioning_report,omitempty"`
	Status              string     `json:"status"` // pending / in_progress / completed
	Remark              string     `json:"remark,omitempty"`
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
