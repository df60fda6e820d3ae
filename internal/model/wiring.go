package model

import "time"

// WiringDetails is a single per-customer record; a customer that has not
// reached the wiring phase has no row yet.
type WiringDetails struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customer_id"`
	TechnicianName    string     `json:"technician_name,omitempty"`
	PVModuleNo        string     `json:"pv_module_no,omitempty"`
	AggregateCapacity float64    `json:"aggregate_capacity,omitempty"`
	InverterType      string     `json:"inverter_type,omitempty"`
	ACVoltage         string     `json:"ac_voltage,omitempty"`
	MountingStructure string     `json:"mounting_structure,omitempty"`
	DCDB              string     `json:"dcdb,omitempty"`
	ACDB              string     `json:"acdb,omitempty"`
	Cables            string     `json:"cables,omitempty"`
	Status            string     `json:"status"` // pending / in_progress / completed
	Remark            string     `json:"remark,omitempty"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
