package model

import "time"

// Admin is a back-office account that can sign in to the admin UI.
type Admin struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id"`
	Username     string    `gorm:"column:username" json:"username"`
	Email        string    `gorm:"column:email" json:"email"`
	DisplayName  string    `gorm:"column:display_name" json:"displayName"`
	Role         Role      `gorm:"column:role" json:"role"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Admin) TableName() string {
	return "admins"
}
