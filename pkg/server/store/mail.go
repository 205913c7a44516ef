package store

import (
	"time"

	"townclerk/pkg/model"
)

// MailInput is the payload for registering a piece of incoming mail.
type MailInput struct {
	Reference  string            `json:"reference"`
	Subject    string            `json:"subject"`
	ContactID  *int64            `json:"contactId"`
	ServiceID  *int64            `json:"serviceId"`
	Status     *model.MailStatus `json:"status"`
	ReceivedAt *time.Time        `json:"receivedAt"`
}

// MailUpdate carries the fields of a partial mail update.
type MailUpdate struct {
	Reference  *string           `json:"reference"`
	Subject    *string           `json:"subject"`
	ContactID  *int64            `json:"contactId"`
	ServiceID  *int64            `json:"serviceId"`
	Status     *model.MailStatus `json:"status"`
	ReceivedAt *time.Time        `json:"receivedAt"`
}

// MailStore abstracts incoming correspondence storage. Searches match a
// case-insensitive substring of reference or subject.
type MailStore interface {
	ListMail(search string, page, limit int) ([]model.MailIn, Pagination, error)
	FetchMail(id int64) (*model.MailIn, error)
	CreateMail(input MailInput) (*model.MailIn, error)
	UpdateMail(id int64, update MailUpdate) (*model.MailIn, error)
	DeleteMail(id int64) error

	// MarkRead records that a user has read a piece of mail. Idempotent:
	// marking already-read mail returns the existing read record. Returns
	// ErrNotFound when the mail row does not exist.
	MarkRead(mailID, userID int64) (*model.MailRead, error)

	// NextID predicts the identifier the next registered mail will get,
	// computed as max(id)+1 (1 when the table is empty). Advisory only:
	// concurrent registrations can race, so the value must never be used
	// as a reservation.
	NextID() (int64, error)
}
