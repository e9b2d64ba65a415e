package events

import "time"

const EmployeeAbsenceTopic = "hr.employee.absence.v1"

type EmployeeAbsentEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
