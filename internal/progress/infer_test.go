package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestInferUploadVerification(t *testing.T) {
	tests := []struct {
		name string
		item ItemState
		want Status
	}{
		{
			name: "nothing set is pending",
			item: ItemState{},
			want: StatusPending,
		},
		{
			name: "uploaded but unverified is in progress",
			item: ItemState{Uploaded: true},
			want: StatusInProgress,
		},
		{
			name: "file reference counts as uploaded",
			item: ItemState{HasFile: true},
			want: StatusInProgress,
		},
		{
			name: "verified is completed",
			item: ItemState{Uploaded: true, Verified: true},
			want: StatusCompleted,
		},
		{
			name: "verified without upload flag still completed",
			item: ItemState{Verified: true},
			want: StatusCompleted,
		},
		{
			name: "explicit status ignored without manual override",
			item: ItemState{Status: StatusCompleted},
			want: StatusPending,
		},
		{
			name: "manual override wins over auto-detection",
			item: ItemState{Status: StatusCompleted, ManualOverride: true},
			want: StatusCompleted,
		},
		{
			name: "manual override can hold back a verified document",
			item: ItemState{Status: StatusInProgress, ManualOverride: true, Verified: true},
			want: StatusInProgress,
		},
		{
			name: "manual override with empty status falls through to flags",
			item: ItemState{ManualOverride: true, Uploaded: true},
			want: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.item, PolicyUploadVerification)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferDatePresence(t *testing.T) {
	tests := []struct {
		name string
		item ItemState
		want Status
	}{
		{
			name: "nothing set is pending",
			item: ItemState{},
			want: StatusPending,
		},
		{
			name: "start date means in progress",
			item: ItemState{StartDate: datePtr(t, "2024-01-01")},
			want: StatusInProgress,
		},
		{
			name: "end date means completed regardless of start date",
			item: ItemState{EndDate: datePtr(t, "2024-01-05")},
			want: StatusCompleted,
		},
		{
			name: "end date outranks start date",
			item: ItemState{StartDate: datePtr(t, "2024-01-01"), EndDate: datePtr(t, "2024-01-05")},
			want: StatusCompleted,
		},
		{
			name: "explicit completed without dates",
			item: ItemState{Status: StatusCompleted},
			want: StatusCompleted,
		},
		{
			name: "explicit in progress without dates",
			item: ItemState{Status: StatusInProgress},
			want: StatusInProgress,
		},
		{
			name: "end date promotes explicit in progress to completed",
			item: ItemState{Status: StatusInProgress, EndDate: datePtr(t, "2024-02-01")},
			want: StatusCompleted,
		},
		{
			name: "explicit pending with start date is in progress",
			item: ItemState{Status: StatusPending, StartDate: datePtr(t, "2024-01-01")},
			want: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.item, PolicyDatePresence)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferRejectsBadInput(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		_, err := Infer(ItemState{Status: Status("done")}, PolicyDatePresence)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := Infer(ItemState{}, InferencePolicy("guesswork"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid inference policy")
	})
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "in_progress", "completed"} {
		got, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), got)
	}

	for _, invalid := range []string{"", "done", "PENDING", "in-progress"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}
