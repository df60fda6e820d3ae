package progress

import (
	"fmt"
	"time"
)

// InferencePolicy names the rule used to derive an item's status from its
// raw fields. Each record kind is configured with exactly one policy.
type InferencePolicy string

const (
	// PolicyUploadVerification derives status from upload/verification
	// flags. Auto-detection wins over an explicit status unless the caller
	// set the manual-override flag.
	PolicyUploadVerification InferencePolicy = "upload_verification"

	// PolicyDatePresence derives status from explicit status and date
	// presence. End-date presence is a stronger signal than start-date
	// presence and is checked first.
	PolicyDatePresence InferencePolicy = "date_presence"
)

// ItemState is the validated field snapshot of a single record entering the
// engine. Status may be empty when the record never had one set explicitly.
type ItemState struct {
	ID             string
	Status         Status
	ManualOverride bool
	Uploaded       bool
	Verified       bool
	HasFile        bool
	Submitted      bool
	Approved       bool
	StartDate      *time.Time
	EndDate        *time.Time
}

// Infer derives the item's status under the given policy.
//
// The two policies deliberately resolve conflicts between explicit status
// and field evidence in opposite directions. Upload/verification trusts the
// flags and only honors an explicit status under ManualOverride, because
// upload state is machine-observed. Date-presence folds the explicit status
// into the signal chain (explicit completed or an end date both mean
// completed), because both are operator-entered.
func Infer(item ItemState, policy InferencePolicy) (Status, error) {
	if item.Status != "" && !item.Status.Valid() {
		return "", fmt.Errorf("item %s: invalid status: %q", item.ID, item.Status)
	}

	switch policy {
	case PolicyUploadVerification:
		return inferUpload(item), nil
	case PolicyDatePresence:
		return inferDates(item), nil
	default:
		return "", fmt.Errorf("invalid inference policy: %q", policy)
	}
}

func inferUpload(item ItemState) Status {
	if item.ManualOverride && item.Status != "" {
		return item.Status
	}
	if item.Verified {
		return StatusCompleted
	}
	if item.Uploaded || item.HasFile {
		return StatusInProgress
	}
	return StatusPending
}

func inferDates(item ItemState) Status {
	if item.Status == StatusCompleted || item.EndDate != nil {
		return StatusCompleted
	}
	if item.Status == StatusInProgress || item.StartDate != nil {
		return StatusInProgress
	}
	return StatusPending
}
