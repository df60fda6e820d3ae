package progress

import "fmt"

// UnlockEvent is an advisory signal that a downstream section became
// eligible for work. The engine never blocks a write to a locked section;
// enforcement, if any, belongs to the calling layer.
type UnlockEvent struct {
	CustomerID string  `json:"customer_id"`
	Section    Section `json:"section"`
	Reason     string  `json:"reason"`
}

// CheckUnlock evaluates the gating rule for the section that just changed
// and returns any unlock events it produces. The gate is stateless: it
// reports the current truth of the condition on every call, so a caller
// that recomputes after the condition was already satisfied sees the same
// event again. Deduplication of repeat notifications is the caller's job.
//
// Rules:
//   - checklist completed unlocks wiring
//   - wiring completed unlocks inspection
//   - every inspection approved unlocks commissioning (approval is a
//     distinct sign-off, stronger than completed status)
func CheckUnlock(customerID string, changed Section, sections Sections, inspections []ItemState) ([]UnlockEvent, error) {
	switch changed {
	case SectionChecklist:
		if sections.Checklist != nil && sections.Checklist.Status == StatusCompleted {
			return []UnlockEvent{{
				CustomerID: customerID,
				Section:    SectionWiring,
				Reason:     "Checklist completed - Wiring section unlocked",
			}}, nil
		}
		return nil, nil

	case SectionWiring:
		if sections.Wiring != nil && sections.Wiring.Status == StatusCompleted {
			return []UnlockEvent{{
				CustomerID: customerID,
				Section:    SectionInspection,
				Reason:     "Wiring completed - Inspection section unlocked",
			}}, nil
		}
		return nil, nil

	case SectionInspection:
		if len(inspections) == 0 {
			return nil, nil
		}
		for _, ins := range inspections {
			if !ins.Approved {
				return nil, nil
			}
		}
		return []UnlockEvent{{
			CustomerID: customerID,
			Section:    SectionCommissioning,
			Reason:     "All inspections approved - Commissioning unlocked",
		}}, nil

	case SectionDocuments, SectionCommissioning:
		// No downstream gate.
		return nil, nil

	default:
		return nil, fmt.Errorf("invalid section: %q", changed)
	}
}
