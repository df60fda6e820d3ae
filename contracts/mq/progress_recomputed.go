package mq

// ProgressRecomputedPayload is published after every snapshot recompute.
type ProgressRecomputedPayload struct {
	CustomerID      string `json:"customer_id"`
	OverallProgress int    `json:"overall_progress"`
	OverallStatus   string `json:"overall_status"`
}
