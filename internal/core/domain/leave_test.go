package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveBalanceRemaining(t *testing.T) {
	b := LeaveBalance{Annual: 20, Sick: 10, Casual: 5}

	assert.Equal(t, 20, b.Remaining(LeaveAnnual))
	assert.Equal(t, 10, b.Remaining(LeaveSick))
	assert.Equal(t, 5, b.Remaining(LeaveCasual))
	assert.Equal(t, 0, b.Remaining(LeaveType("unpaid")))
}

func TestLeaveBalanceCanCover(t *testing.T) {
	b := DefaultLeaveBalance()

	assert.True(t, b.CanCover(LeaveAnnual, 20))
	assert.False(t, b.CanCover(LeaveAnnual, 21))
	assert.True(t, b.CanCover(LeaveCasual, 5))
	assert.False(t, b.CanCover(LeaveCasual, 6))
}

func TestLeaveStatusIsTerminal(t *testing.T) {
	assert.False(t, LeavePending.IsTerminal())
	assert.True(t, LeaveApproved.IsTerminal())
	assert.True(t, LeaveRejected.IsTerminal())
}

func TestLeaveStatusEventRecipients(t *testing.T) {
	ev := LeaveStatusEvent{
		EmployeeID: "emp-1",
		ManagerIDs: []string{"mgr-1", "mgr-2", "mgr-1"},
	}

	assert.Equal(t, []string{"emp-1", "mgr-1", "mgr-2"}, ev.Recipients())

	// An employee who is also listed as manager is not duplicated.
	ev.ManagerIDs = []string{"emp-1", "mgr-1"}
	assert.Equal(t, []string{"emp-1", "mgr-1"}, ev.Recipients())
}
