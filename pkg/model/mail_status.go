package model

//go:generate go run github.com/dmarkham/enumer -type MailStatus -trimprefix MailStatus -transform lower -json -sql -output mail_status.gen.go

// MailStatus tracks the processing state of a piece of incoming mail.
type MailStatus int

const (
	MailStatusReceived MailStatus = iota
	MailStatusProcessing
	MailStatusArchived
)
