package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusPriorityOrdering(t *testing.T) {
	assert.Equal(t, 10, TaskStatusEmergency.Priority())
	assert.Equal(t, 9, TaskStatusIssueReported.Priority())
	assert.Equal(t, 8, TaskStatusWarning.Priority())
	assert.Equal(t, 5, TaskStatusPending.Priority())
	assert.Equal(t, 2, TaskStatusNotified.Priority())
	assert.Equal(t, 1, TaskStatusConfirmed.Priority())
	assert.Equal(t, 0, TaskStatusChanged.Priority())
}

func TestTaskStatusNeedsAttention(t *testing.T) {
	attention := []TaskStatus{TaskStatusWarning, TaskStatusEmergency, TaskStatusIssueReported}
	for _, s := range attention {
		assert.True(t, s.NeedsAttention(), s.String())
	}
	settled := []TaskStatus{TaskStatusPending, TaskStatusNotified, TaskStatusConfirmed, TaskStatusChanged}
	for _, s := range settled {
		assert.False(t, s.NeedsAttention(), s.String())
	}
}

func TestIndexSetContains(t *testing.T) {
	set := IndexSet{0, 2, 5}
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(1))
	assert.False(t, IndexSet(nil).Contains(0))
}

func TestOpsLogPrepend(t *testing.T) {
	log := OpsLog{{Action: "old"}}
	log = log.Prepend(OpsLogEntry{Action: "new"})

	assert.Equal(t, "new", log[0].Action)
	assert.Equal(t, "old", log[1].Action)
}
