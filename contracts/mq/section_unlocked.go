package mq

// Routing keys for fulfillment events.
const (
	RoutingKeySectionUnlocked    = "section.unlocked"
	RoutingKeyProgressRecomputed = "progress.recomputed"
)

// SectionUnlockedPayload announces that a downstream section became eligible
// for work. Advisory only: nothing blocks writes to a locked section.
type SectionUnlockedPayload struct {
	CustomerID string `json:"customer_id"`
	Section    string `json:"section"`
	Reason     string `json:"reason"`
}
