package model

import "time"

// MailIn is a registered piece of incoming correspondence.
type MailIn struct {
	ID         int64      `gorm:"column:id;primaryKey" json:"id"`
	Reference  string     `gorm:"column:reference" json:"reference"`
	Subject    string     `gorm:"column:subject" json:"subject"`
	ContactID  *int64     `gorm:"column:contact_id" json:"contactId"`
	ServiceID  *int64     `gorm:"column:service_id" json:"serviceId"`
	Status     MailStatus `gorm:"column:status" json:"status"`
	ReceivedAt time.Time  `gorm:"column:received_at" json:"receivedAt"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (MailIn) TableName() string {
	return "mail_in"
}

// MailRead marks a piece of mail as read by a user. The (mail, user) pair
// is unique; marking twice is a no-op.
type MailRead struct {
	MailID int64     `gorm:"column:mail_id;primaryKey" json:"mailId"`
	UserID int64     `gorm:"column:user_id;primaryKey" json:"userId"`
	ReadAt time.Time `gorm:"column:read_at" json:"readAt"`
}

func (MailRead) TableName() string {
	return "mail_reads"
}
