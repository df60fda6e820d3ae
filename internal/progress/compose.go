package progress

import (
	"fmt"
	"math"
)

// WeightScheme selects how section progress values combine into the overall
// percentage. A deployment declares exactly one scheme; mixing them is a
// correctness bug.
type WeightScheme string

const (
	// WeightSchemeWeighted is the canonical policy: documents 25%,
	// checklist 25%, wiring 20%, inspection 15%, commissioning 15%.
	WeightSchemeWeighted WeightScheme = "weighted"

	// WeightSchemeEqual averages the five sections with equal weight.
	WeightSchemeEqual WeightScheme = "equal"
)

// ParseWeightScheme parses a configured scheme name.
func ParseWeightScheme(s string) (WeightScheme, error) {
	switch WeightScheme(s) {
	case WeightSchemeWeighted:
		return WeightSchemeWeighted, nil
	case WeightSchemeEqual:
		return WeightSchemeEqual, nil
	default:
		return "", fmt.Errorf("invalid weight scheme: %q", s)
	}
}

// sectionWeights for WeightSchemeWeighted, in percent. Sums to 100.
var sectionWeights = map[Section]float64{
	SectionDocuments:     25,
	SectionChecklist:     25,
	SectionWiring:        20,
	SectionInspection:    15,
	SectionCommissioning: 15,
}

// Sections carries the per-section summaries entering composition. A nil
// entry means the section has not been created for this customer yet and is
// treated as empty (multi-item sections) or absent (single-record sections);
// new customers may not have all five sections auto-created.
type Sections struct {
	Documents     *SectionSummary
	Checklist     *SectionSummary
	Wiring        *SectionSummary
	Inspection    *SectionSummary
	Commissioning *SectionSummary
}

// ComposedSections is the resolved per-section breakdown inside a
// ProjectProgress.
type ComposedSections struct {
	Documents     SectionSummary `json:"documents"`
	Checklist     SectionSummary `json:"checklists"`
	Wiring        SectionSummary `json:"wiring"`
	Inspection    SectionSummary `json:"inspection"`
	Commissioning SectionSummary `json:"commissioning"`
}

// ProjectProgress is the single derived rollup for a customer.
type ProjectProgress struct {
	OverallProgress int              `json:"overall_progress"` // 0..100
	OverallStatus   Status           `json:"overall_status"`
	Sections        ComposedSections `json:"sections"`
}

// Compose combines the five section summaries into overall progress under
// the given scheme. Section contributions are accumulated as rationals and
// rounded half-up exactly once at the end, never per-section.
func Compose(sections Sections, scheme WeightScheme) (ProjectProgress, error) {
	resolved := ComposedSections{
		Documents:     resolveSummary(sections.Documents, emptySummary()),
		Checklist:     resolveSummary(sections.Checklist, emptySummary()),
		Wiring:        resolveSummary(sections.Wiring, absentSummary()),
		Inspection:    resolveSummary(sections.Inspection, emptySummary()),
		Commissioning: resolveSummary(sections.Commissioning, absentSummary()),
	}

	ordered := []struct {
		section Section
		summary SectionSummary
	}{
		{SectionDocuments, resolved.Documents},
		{SectionChecklist, resolved.Checklist},
		{SectionWiring, resolved.Wiring},
		{SectionInspection, resolved.Inspection},
		{SectionCommissioning, resolved.Commissioning},
	}

	for _, entry := range ordered {
		if err := validateSummary(entry.section, entry.summary); err != nil {
			return ProjectProgress{}, err
		}
	}

	var overall int
	switch scheme {
	case WeightSchemeWeighted:
		weighted := 0.0
		for _, entry := range ordered {
			weighted += sectionWeights[entry.section] * float64(entry.summary.Progress)
		}
		overall = roundHalfUp(weighted / 100)
	case WeightSchemeEqual:
		sum := 0
		for _, entry := range ordered {
			sum += entry.summary.Progress
		}
		overall = roundHalfUp(float64(sum) / float64(len(ordered)))
	default:
		return ProjectProgress{}, fmt.Errorf("invalid weight scheme: %q", scheme)
	}

	return ProjectProgress{
		OverallProgress: overall,
		OverallStatus:   StatusForProgress(overall),
		Sections:        resolved,
	}, nil
}

func resolveSummary(s *SectionSummary, missing SectionSummary) SectionSummary {
	if s == nil {
		return missing
	}
	return *s
}

func validateSummary(section Section, s SectionSummary) error {
	if !s.Status.Valid() {
		return fmt.Errorf("section %s: invalid status: %q", section, s.Status)
	}
	if s.Progress < 0 || s.Progress > 100 {
		return fmt.Errorf("section %s: progress %d out of range", section, s.Progress)
	}
	if s.CompletedCount < 0 || s.TotalCount < 0 {
		return fmt.Errorf("section %s: negative count", section)
	}
	if s.CompletedCount > s.TotalCount {
		return fmt.Errorf("section %s: completed count %d exceeds total %d",
			section, s.CompletedCount, s.TotalCount)
	}
	return nil
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
