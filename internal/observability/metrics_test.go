package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineSnapshotCounts(t *testing.T) {
	m := NewMetrics()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	m.IncrMutation("expense", "create")
	m.IncrMutation("budget", "create")
	m.IncrMutation("budget", "update")
	m.IncrMutation("goal", "contribute")
	m.IncrValidationFailure("expense")

	snap := m.GetEngineSnapshot()

	assert.Equal(t, int64(2), snap.SessionsStarted)
	assert.Equal(t, int64(1), snap.ExpensesAdded)
	assert.Equal(t, int64(2), snap.BudgetMutations)
	assert.Equal(t, int64(1), snap.GoalMutations)
	assert.Equal(t, int64(1), snap.ValidationFailures)
	assert.InDelta(t, 0.2, snap.RejectionRate, 1e-9)
}

func TestEngineSnapshotEmptyRegistry(t *testing.T) {
	snap := NewMetrics().GetEngineSnapshot()

	assert.Zero(t, snap.SessionsStarted)
	assert.Zero(t, snap.RejectionRate)
}

func TestRecordRequestDurationDoesNotPanic(t *testing.T) {
	m := NewMetrics()
	m.RecordRequestDuration("dashboard", 25*time.Millisecond)
}
