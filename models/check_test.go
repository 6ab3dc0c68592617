package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allCheckStatuses = []CheckStatus{
	CheckStatusPending,
	CheckStatusDeposited,
	CheckStatusCleared,
	CheckStatusBounced,
	CheckStatusCancelled,
}

var allCheckActions = []CheckAction{
	CheckActionDeposit,
	CheckActionClear,
	CheckActionBounce,
	CheckActionCancel,
}

// The transition table is total: every (status, action) pair either
// advances to exactly one status or is rejected.
func TestCheckTransitionTable(t *testing.T) {
	allowed := map[CheckStatus]map[CheckAction]CheckStatus{
		CheckStatusPending: {
			CheckActionDeposit: CheckStatusDeposited,
			CheckActionBounce:  CheckStatusBounced,
			CheckActionCancel:  CheckStatusCancelled,
		},
		CheckStatusDeposited: {
			CheckActionClear:  CheckStatusCleared,
			CheckActionBounce: CheckStatusBounced,
		},
	}

	for _, status := range allCheckStatuses {
		for _, action := range allCheckActions {
			next, ok := NextCheckStatus(status, action)
			want, wantOK := allowed[status][action]
			assert.Equal(t, wantOK, ok, "(%s, %s)", status, action)
			if wantOK {
				assert.Equal(t, want, next, "(%s, %s)", status, action)
			}
		}
	}
}

func TestTerminalStatesAreFrozen(t *testing.T) {
	for _, status := range []CheckStatus{CheckStatusCleared, CheckStatusBounced, CheckStatusCancelled} {
		for _, action := range allCheckActions {
			_, ok := NextCheckStatus(status, action)
			assert.False(t, ok, "terminal %s must reject %s", status, action)
		}
	}
}

func TestIsBankable(t *testing.T) {
	assert.False(t, CheckStatusPending.IsBankable())
	assert.True(t, CheckStatusDeposited.IsBankable())
	assert.True(t, CheckStatusCleared.IsBankable())
	assert.False(t, CheckStatusBounced.IsBankable())
	assert.False(t, CheckStatusCancelled.IsBankable())
}
