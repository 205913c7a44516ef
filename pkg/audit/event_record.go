package audit

import "fmt"

// RecordEvent represents a change to a stored record
type RecordEvent struct {
	Actor    string
	Resource string
	RecordID int64
	Action   string // create, update or delete
	Success  bool
}

func (e RecordEvent) MessageID() string {
	return "record"
}

func (e RecordEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s performed %s on %s %d", e.Actor, e.Action, e.Resource, e.RecordID)
	}
	return fmt.Sprintf("%s failed to %s %s %d", e.Actor, e.Action, e.Resource, e.RecordID)
}

func (e RecordEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RecordEvent) Facility() int {
	return FacilityUser
}

func (e RecordEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"resource": e.Resource,
			"id":       fmt.Sprintf("%d", e.RecordID),
		},
		SDIDAction: {
			"operation": e.Action,
			"user":      e.Actor,
		},
	}
}
