package model

import "time"

// ContactIn is an external correspondent that sends mail to the
// municipality. Kept in a separate namespace from outbound contacts.
type ContactIn struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Organization string    `gorm:"column:organization" json:"organization"`
	Email        string    `gorm:"column:email" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Address      string    `gorm:"column:address" json:"address"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ContactIn) TableName() string {
	return "contacts_in"
}

// ContactOut is an external recipient of outgoing municipal mail.
type ContactOut struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Name         string    `gorm:"column:name" json:"name"`
	Organization string    `gorm:"column:organization" json:"organization"`
	Email        string    `gorm:"column:email" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	Address      string    `gorm:"column:address" json:"address"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ContactOut) TableName() string {
	return "contacts_out"
}
