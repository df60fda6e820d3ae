package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUnlockChecklist(t *testing.T) {
	t.Run("all tasks completed unlocks wiring", func(t *testing.T) {
		summary, err := Aggregate([]Status{StatusCompleted, StatusCompleted})
		require.NoError(t, err)

		events, err := CheckUnlock("cust-1", SectionChecklist, Sections{Checklist: &summary}, nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, SectionWiring, events[0].Section)
		assert.Equal(t, "cust-1", events[0].CustomerID)
		assert.Equal(t, "Checklist completed - Wiring section unlocked", events[0].Reason)
	})

	t.Run("one task still pending yields nothing", func(t *testing.T) {
		summary, err := Aggregate([]Status{StatusCompleted, StatusPending})
		require.NoError(t, err)

		events, err := CheckUnlock("cust-1", SectionChecklist, Sections{Checklist: &summary}, nil)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("empty checklist yields nothing", func(t *testing.T) {
		summary, err := Aggregate(nil)
		require.NoError(t, err)

		events, err := CheckUnlock("cust-1", SectionChecklist, Sections{Checklist: &summary}, nil)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCheckUnlockWiring(t *testing.T) {
	t.Run("completed wiring unlocks inspection", func(t *testing.T) {
		summary, err := AggregateRecord(&RecordState{Status: StatusCompleted})
		require.NoError(t, err)

		events, err := CheckUnlock("cust-2", SectionWiring, Sections{Wiring: &summary}, nil)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, SectionInspection, events[0].Section)
	})

	t.Run("in progress wiring yields nothing", func(t *testing.T) {
		summary, err := AggregateRecord(&RecordState{Status: StatusInProgress})
		require.NoError(t, err)

		events, err := CheckUnlock("cust-2", SectionWiring, Sections{Wiring: &summary}, nil)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCheckUnlockInspection(t *testing.T) {
	t.Run("approval is required, completed status is not enough", func(t *testing.T) {
		inspections := []ItemState{
			{Status: StatusCompleted, Approved: true},
			{Status: StatusCompleted, Approved: false},
		}

		events, err := CheckUnlock("cust-3", SectionInspection, Sections{}, inspections)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("every inspection approved unlocks commissioning", func(t *testing.T) {
		inspections := []ItemState{
			{Status: StatusCompleted, Approved: true},
			{Status: StatusInProgress, Approved: true},
			{Status: StatusPending, Approved: true},
		}

		events, err := CheckUnlock("cust-3", SectionInspection, Sections{}, inspections)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, SectionCommissioning, events[0].Section)
		assert.Equal(t, "All inspections approved - Commissioning unlocked", events[0].Reason)
	})

	t.Run("no inspections yields nothing", func(t *testing.T) {
		events, err := CheckUnlock("cust-3", SectionInspection, Sections{}, nil)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestCheckUnlockNoGateSections(t *testing.T) {
	full := SectionSummary{Status: StatusCompleted, Progress: 100, CompletedCount: 1, TotalCount: 1}

	for _, section := range []Section{SectionDocuments, SectionCommissioning} {
		events, err := CheckUnlock("cust-4", section, Sections{
			Documents:     &full,
			Commissioning: &full,
		}, nil)
		require.NoError(t, err)
		assert.Empty(t, events, "section %s has no downstream gate", section)
	}
}

func TestCheckUnlockIsStateless(t *testing.T) {
	// Recomputing with the same snapshot reports the same truth again;
	// deduplication belongs to the consumer.
	summary, err := Aggregate([]Status{StatusCompleted})
	require.NoError(t, err)

	first, err := CheckUnlock("cust-5", SectionChecklist, Sections{Checklist: &summary}, nil)
	require.NoError(t, err)
	second, err := CheckUnlock("cust-5", SectionChecklist, Sections{Checklist: &summary}, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckUnlockInvalidSection(t *testing.T) {
	_, err := CheckUnlock("cust-6", Section("billing"), Sections{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid section")
}
