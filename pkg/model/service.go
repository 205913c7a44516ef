package model

import "time"

// Service is an organizational unit of the municipality (state registry,
// urban planning, ...). Users and mail reference services.
type Service struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Code      string    `gorm:"column:code" json:"code"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Service) TableName() string {
	return "services"
}
