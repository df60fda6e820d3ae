package service

import (
	"fmt"

	"solarflow/internal/model"
	"solarflow/internal/progress"
)

// Mapping from persisted rows to engine inputs. Documents use the
// upload/verification policy; everything else derives from explicit status
// and date presence.

func aggregateDocuments(documents []model.Document) (progress.SectionSummary, error) {
	statuses := make([]progress.Status, 0, len(documents))
	for _, d := range documents {
		status, err := progress.Infer(progress.ItemState{
			ID:             d.ID,
			Status:         progress.Status(d.Status),
			ManualOverride: d.ManualStatus,
			Uploaded:       d.Uploaded,
			Verified:       d.Verified,
			HasFile:        d.FileURL != "",
		}, progress.PolicyUploadVerification)
		if err != nil {
			return progress.SectionSummary{}, fmt.Errorf("document %s: %w", d.ID, err)
		}
		statuses = append(statuses, status)
	}
	summary, err := progress.Aggregate(statuses)
	if err != nil {
		return progress.SectionSummary{}, fmt.Errorf("documents: %w", err)
	}
	return summary, nil
}

func aggregateChecklist(items []model.ChecklistItem) (progress.SectionSummary, error) {
	statuses := make([]progress.Status, 0, len(items))
	for _, item := range items {
		status, err := progress.Infer(progress.ItemState{
			ID:        item.ID,
			Status:    progress.Status(item.Status),
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		}, progress.PolicyDatePresence)
		if err != nil {
			return progress.SectionSummary{}, fmt.Errorf("checklist item %s: %w", item.ID, err)
		}
		statuses = append(statuses, status)
	}
	summary, err := progress.Aggregate(statuses)
	if err != nil {
		return progress.SectionSummary{}, fmt.Errorf("checklist: %w", err)
	}
	return summary, nil
}

// aggregateInspections also returns the inferred item states because the
// commissioning gate reads the per-item approval flags.
func aggregateInspections(inspections []model.Inspection) ([]progress.ItemState, progress.SectionSummary, error) {
	states := make([]progress.ItemState, 0, len(inspections))
	statuses := make([]progress.Status, 0, len(inspections))
	for _, insp := range inspections {
		state := progress.ItemState{
			ID:        insp.ID,
			Status:    progress.Status(insp.Status),
			Submitted: insp.Submitted,
			Approved:  insp.Approved,
			StartDate: insp.StartDate,
			EndDate:   insp.EndDate,
		}
		status, err := progress.Infer(state, progress.PolicyDatePresence)
		if err != nil {
			return nil, progress.SectionSummary{}, fmt.Errorf("inspection %s: %w", insp.ID, err)
		}
		state.Status = status
		states = append(states, state)
		statuses = append(statuses, status)
	}
	summary, err := progress.Aggregate(statuses)
	if err != nil {
		return nil, progress.SectionSummary{}, fmt.Errorf("inspections: %w", err)
	}
	return states, summary, nil
}

func aggregateWiring(wiring *model.WiringDetails) (progress.SectionSummary, error) {
	var rec *progress.RecordState
	if wiring != nil {
		status, err := progress.Infer(progress.ItemState{
			ID:        wiring.ID,
			Status:    progress.Status(wiring.Status),
			StartDate: wiring.StartDate,
			EndDate:   wiring.EndDate,
		}, progress.PolicyDatePresence)
		if err != nil {
			return progress.SectionSummary{}, fmt.Errorf("wiring: %w", err)
		}
		rec = &progress.RecordState{Status: status, StartDate: wiring.StartDate, EndDate: wiring.EndDate}
	}
	summary, err := progress.AggregateRecord(rec)
	if err != nil {
		return progress.SectionSummary{}, fmt.Errorf("wiring: %w", err)
	}
	return summary, nil
}

func aggregateCommissioning(commissioning *model.Commissioning) (progress.SectionSummary, error) {
	var rec *progress.RecordState
	if commissioning != nil {
		status, err := progress.Infer(progress.ItemState{
			ID:        commissioning.ID,
			Status:    progress.Status(commissioning.Status),
			StartDate: commissioning.StartDate,
			EndDate:   commissioning.EndDate,
		}, progress.PolicyDatePresence)
		if err != nil {
			return progress.SectionSummary{}, fmt.Errorf("commissioning: %w", err)
		}
		rec = &progress.RecordState{Status: status, StartDate: commissioning.StartDate, EndDate: commissioning.EndDate}
	}
	summary, err := progress.AggregateRecord(rec)
	if err != nil {
		return progress.SectionSummary{}, fmt.Errorf("commissioning: %w", err)
	}
	return summary, nil
}
