package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHECKPOINT_RECORDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeCheckpointRecorded = "CHECKPOINT_RECORDED"
	TypeProgramGraduated   = "PROGRAM_GRADUATED"
)

// NewCheckpointRecordedEvent is emitted after a periodic check-in is persisted.
func NewCheckpointRecordedEvent(employeeId, checkpointId string, checkpointNumber int) Event {
	return BaseEvent{
		Type: TypeCheckpointRecorded,
		Data: map[string]interface{}{
			"employee_id":       employeeId,
			"checkpoint_id":     checkpointId,
			"checkpoint_number": checkpointNumber,
		},
		OccurredAt: time.Now(),
	}
}

// NewProgramGraduatedEvent is emitted when a client first classifies as a
// program graduate.
func NewProgramGraduatedEvent(employeeId, program string) Event {
	return BaseEvent{
		Type: TypeProgramGraduated,
		Data: map[string]interface{}{
			"employee_id": employeeId,
			"program":     program,
		},
		OccurredAt: time.Now(),
	}
}
