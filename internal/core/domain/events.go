package domain

import "time"

// LeaveStatusEvent is published when a manager decides a leave request.
// It is delivered to the affected employee and to all managers of the
// request's department.
type LeaveStatusEvent struct {
	EmployeeID   string           `json:"employeeId"`
	EmployeeName string           `json:"employeeName"`
	Department   string           `json:"department"`
	Status       LeaveStatus      `json:"status"`
	ManagerIDs   []string         `json:"managers"`
	LeaveRequest LeaveStatusEntry `json:"leaveRequest"`
}

// LeaveStatusEntry is the subset of the decided request carried on the event.
type LeaveStatusEntry struct {
	LeaveRequestID string      `json:"id"`
	Status         LeaveStatus `json:"status"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	LeaveType      LeaveType   `json:"leaveType"`
	ManagerNote    *string     `json:"managerNote,omitempty"`
}

// Recipients returns the distinct user IDs the event should be delivered to.
func (e LeaveStatusEvent) Recipients() []string {
	seen := map[string]struct{}{e.EmployeeID: {}}
	recipients := []string{e.EmployeeID}
	for _, id := range e.ManagerIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}
	return recipients
}
