package audit

import "fmt"

// MailReadEvent represents a user marking a piece of mail as read
type MailReadEvent struct {
	Actor  string
	MailID int64
	UserID int64
}

func (e MailReadEvent) MessageID() string {
	return "mail-read"
}

func (e MailReadEvent) Message() string {
	return fmt.Sprintf("%s marked mail %d as read for user %d", e.Actor, e.MailID, e.UserID)
}

func (e MailReadEvent) Severity() Severity {
	return SeverityInfo
}

func (e MailReadEvent) Facility() int {
	return FacilityUser
}

func (e MailReadEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"mail": fmt.Sprintf("%d", e.MailID),
			"user": fmt.Sprintf("%d", e.UserID),
		},
		SDIDAction: {
			"operation": "mark-read",
			"user":      e.Actor,
		},
	}
}
