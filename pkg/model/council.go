package model

import "time"

// CouncilMember is an elected representative of the municipal council.
type CouncilMember struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	FullName   string    `gorm:"column:full_name" json:"fullName"`
	Title      string    `gorm:"column:title" json:"title"`
	Commission string    `gorm:"column:commission" json:"commission"`
	Email      string    `gorm:"column:email" json:"email"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (CouncilMember) TableName() string {
	return "council_members"
}
