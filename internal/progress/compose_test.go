package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryPtr(s SectionSummary) *SectionSummary {
	return &s
}

func TestComposeWeighted(t *testing.T) {
	t.Run("half-complete mix rounds up", func(t *testing.T) {
		// documents 100 (25), checklist 50 (12.5), rest 0 -> round(37.5) = 38
		got, err := Compose(Sections{
			Documents: summaryPtr(SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 8, TotalCount: 8}),
			Checklist: summaryPtr(SectionSummary{Status: StatusInProgress, Progress: 50, CompletedCount: 2, TotalCount: 4}),
		}, WeightSchemeWeighted)
		require.NoError(t, err)

		assert.Equal(t, 38, got.OverallProgress)
		assert.Equal(t, StatusInProgress, got.OverallStatus)
	})

	t.Run("rounds once at the end, not per section", func(t *testing.T) {
		// Every section at 33: weighted sum is exactly 33.0. Per-section
		// rounding artifacts would drift this away from 33.
		at33 := SectionSummary{Status: StatusInProgress, Progress: 33, CompletedCount: 1, TotalCount: 3}
		single33 := SectionSummary{Status: StatusInProgress, Progress: 33, CompletedCount: 0, TotalCount: 1}
		got, err := Compose(Sections{
			Documents:     summaryPtr(at33),
			Checklist:     summaryPtr(at33),
			Wiring:        summaryPtr(single33),
			Inspection:    summaryPtr(at33),
			Commissioning: summaryPtr(single33),
		}, WeightSchemeWeighted)
		require.NoError(t, err)
		assert.Equal(t, 33, got.OverallProgress)
	})

	t.Run("everything completed reaches exactly 100", func(t *testing.T) {
		full := SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 1, TotalCount: 1}
		got, err := Compose(Sections{
			Documents:     summaryPtr(full),
			Checklist:     summaryPtr(full),
			Wiring:        summaryPtr(full),
			Inspection:    summaryPtr(full),
			Commissioning: summaryPtr(full),
		}, WeightSchemeWeighted)
		require.NoError(t, err)
		assert.Equal(t, 100, got.OverallProgress)
		assert.Equal(t, StatusCompleted, got.OverallStatus)
	})
}

func TestComposeEqual(t *testing.T) {
	got, err := Compose(Sections{
		Documents: summaryPtr(SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 8, TotalCount: 8}),
		Checklist: summaryPtr(SectionSummary{Status: StatusInProgress, Progress: 50, CompletedCount: 2, TotalCount: 4}),
	}, WeightSchemeEqual)
	require.NoError(t, err)

	// (100 + 50 + 0 + 0 + 0) / 5 = 30
	assert.Equal(t, 30, got.OverallProgress)
	assert.Equal(t, StatusInProgress, got.OverallStatus)
}

func TestComposeMissingSections(t *testing.T) {
	t.Run("total over an entirely empty input", func(t *testing.T) {
		got, err := Compose(Sections{}, WeightSchemeWeighted)
		require.NoError(t, err)

		assert.Equal(t, 0, got.OverallProgress)
		assert.Equal(t, StatusPending, got.OverallStatus)

		// Multi-item sections default to empty, single-record to absent.
		assert.Equal(t, 0, got.Sections.Documents.TotalCount)
		assert.Equal(t, 0, got.Sections.Checklist.TotalCount)
		assert.Equal(t, 1, got.Sections.Wiring.TotalCount)
		assert.Equal(t, 0, got.Sections.Inspection.TotalCount)
		assert.Equal(t, 1, got.Sections.Commissioning.TotalCount)
	})

	t.Run("missing sections contribute zero", func(t *testing.T) {
		got, err := Compose(Sections{
			Wiring: summaryPtr(SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 1, TotalCount: 1}),
		}, WeightSchemeWeighted)
		require.NoError(t, err)
		assert.Equal(t, 20, got.OverallProgress)
		assert.Equal(t, StatusInProgress, got.OverallStatus)
	})
}

func TestComposeIdempotent(t *testing.T) {
	in := Sections{
		Documents:  summaryPtr(SectionSummary{Status: StatusInProgress, Progress: 63, CompletedCount: 5, TotalCount: 8}),
		Checklist:  summaryPtr(SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 5, TotalCount: 5}),
		Wiring:     summaryPtr(SectionSummary{Status: StatusInProgress, Progress: 50, CompletedCount: 0, TotalCount: 1}),
		Inspection: summaryPtr(SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: 0, TotalCount: 3}),
	}

	first, err := Compose(in, WeightSchemeWeighted)
	require.NoError(t, err)
	second, err := Compose(in, WeightSchemeWeighted)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeOverallStatusDerivation(t *testing.T) {
	// completed iff 100, pending iff 0, in_progress otherwise.
	assert.Equal(t, StatusCompleted, StatusForProgress(100))
	assert.Equal(t, StatusPending, StatusForProgress(0))
	assert.Equal(t, StatusInProgress, StatusForProgress(1))
	assert.Equal(t, StatusInProgress, StatusForProgress(99))
}

func TestComposeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		sections Sections
		scheme   WeightScheme
		wantErr  string
	}{
		{
			name: "invalid status",
			sections: Sections{
				Documents: summaryPtr(SectionSummary{Status: Status("ok"), Progress: 10, TotalCount: 2}),
			},
			scheme:  WeightSchemeWeighted,
			wantErr: "invalid status",
		},
		{
			name: "progress out of range",
			sections: Sections{
				Checklist: summaryPtr(SectionSummary{Status: StatusInProgress, Progress: 140, CompletedCount: 1, TotalCount: 2}),
			},
			scheme:  WeightSchemeWeighted,
			wantErr: "out of range",
		},
		{
			name: "completed count exceeds total",
			sections: Sections{
				Inspection: summaryPtr(SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 4, TotalCount: 3}),
			},
			scheme:  WeightSchemeWeighted,
			wantErr: "exceeds total",
		},
		{
			name: "negative count",
			sections: Sections{
				Documents: summaryPtr(SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: -1, TotalCount: 0}),
			},
			scheme:  WeightSchemeWeighted,
			wantErr: "negative count",
		},
		{
			name:    "unknown scheme",
			scheme:  WeightScheme("hybrid"),
			wantErr: "invalid weight scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose(tt.sections, tt.scheme)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseWeightScheme(t *testing.T) {
	got, err := ParseWeightScheme("weighted")
	require.NoError(t, err)
	assert.Equal(t, WeightSchemeWeighted, got)

	got, err = ParseWeightScheme("equal")
	require.NoError(t, err)
	assert.Equal(t, WeightSchemeEqual, got)

	_, err = ParseWeightScheme("mixed")
	assert.Error(t, err)
}
