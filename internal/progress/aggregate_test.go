package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     SectionSummary
	}{
		{
			name:     "empty list never reports completed",
			statuses: nil,
			want:     SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: 0, TotalCount: 0},
		},
		{
			name:     "all pending",
			statuses: []Status{StatusPending, StatusPending},
			want:     SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: 0, TotalCount: 2},
		},
		{
			name:     "all completed",
			statuses: []Status{StatusCompleted, StatusCompleted, StatusCompleted},
			want:     SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 3, TotalCount: 3},
		},
		{
			name:     "one of three completed rounds half-up to 33",
			statuses: []Status{StatusCompleted, StatusPending, StatusPending},
			want:     SectionSummary{Status: StatusInProgress, Progress: 33, CompletedCount: 1, TotalCount: 3},
		},
		{
			name:     "two of three completed rounds half-up to 67",
			statuses: []Status{StatusCompleted, StatusCompleted, StatusPending},
			want:     SectionSummary{Status: StatusInProgress, Progress: 67, CompletedCount: 2, TotalCount: 3},
		},
		{
			name:     "in progress item lifts section without moving the bar",
			statuses: []Status{StatusInProgress, StatusPending},
			want:     SectionSummary{Status: StatusInProgress, Progress: 0, CompletedCount: 0, TotalCount: 2},
		},
		{
			name:     "exact half rounds up",
			statuses: []Status{StatusCompleted, StatusCompleted, StatusCompleted, StatusPending, StatusPending, StatusPending, StatusPending, StatusPending},
			want:     SectionSummary{Status: StatusInProgress, Progress: 38, CompletedCount: 3, TotalCount: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Aggregate(tt.statuses)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.CompletedCount, got.TotalCount)
			assert.GreaterOrEqual(t, got.Progress, 0)
			assert.LessOrEqual(t, got.Progress, 100)
		})
	}
}

func TestAggregateRejectsInvalidStatus(t *testing.T) {
	_, err := Aggregate([]Status{StatusCompleted, Status("finished")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestAggregateRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  *RecordState
		want SectionSummary
	}{
		{
			name: "absent record is pending with total count one",
			rec:  nil,
			want: SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: 0, TotalCount: 1},
		},
		{
			name: "pending record",
			rec:  &RecordState{Status: StatusPending},
			want: SectionSummary{Status: StatusPending, Progress: 0, CompletedCount: 0, TotalCount: 1},
		},
		{
			name: "in progress record sits at the fixed midpoint",
			rec:  &RecordState{Status: StatusInProgress},
			want: SectionSummary{Status: StatusInProgress, Progress: 50, CompletedCount: 0, TotalCount: 1},
		},
		{
			name: "completed record",
			rec:  &RecordState{Status: StatusCompleted},
			want: SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 1, TotalCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateRecord(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid record status", func(t *testing.T) {
		_, err := AggregateRecord(&RecordState{Status: Status("wired")})
		require.Error(t, err)
	})
}
