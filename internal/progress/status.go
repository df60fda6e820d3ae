// Package progress derives per-item statuses, section summaries, overall
// project progress, and section unlock signals from snapshots of a customer's
// fulfillment records. Every function is pure and synchronous: the engine
// never mutates its inputs and holds no state between invocations. Callers
// recompute from a fresh snapshot after every mutation and persist the
// results themselves.
package progress

import (
	"fmt"
	"strings"
)

// Status is the tri-state progress of a work item, section, or project.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus parses a string into a Status. Unknown values are an error,
// never silently coerced to a default.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusInProgress:
		return StatusInProgress, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("invalid status: %q", s)
	}
}

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// Section identifies one phase of the fulfillment workflow.
type Section string

const (
	SectionDocuments     Section = "documents"
	SectionChecklist     Section = "checklist"
	SectionWiring        Section = "wiring"
	SectionInspection    Section = "inspection"
	SectionCommissioning Section = "commissioning"
)

// ParseSection parses a string into a Section.
func ParseSection(s string) (Section, error) {
	switch Section(strings.TrimSpace(s)) {
	case SectionDocuments:
		return SectionDocuments, nil
	case SectionChecklist:
		return SectionChecklist, nil
	case SectionWiring:
		return SectionWiring, nil
	case SectionInspection:
		return SectionInspection, nil
	case SectionCommissioning:
		return SectionCommissioning, nil
	default:
		return "", fmt.Errorf("invalid section: %q", s)
	}
}

func (s Section) String() string {
	return string(s)
}

// StatusForProgress derives a status from an overall percentage: completed
// iff 100, pending iff 0, in_progress otherwise. Overall status is never
// stored independently.
func StatusForProgress(progress int) Status {
	switch {
	case progress == 100:
		return StatusCompleted
	case progress == 0:
		return StatusPending
	default:
		return StatusInProgress
	}
}
