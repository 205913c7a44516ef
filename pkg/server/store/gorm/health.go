package gorm

import (
	"gorm.io/gorm"

	"townclerk/pkg/server/store"
)

// Ensure HealthStore implements store.HealthStore
var _ store.HealthStore = (*HealthStore)(nil)

// HealthStore implements store.HealthStore using GORM
type HealthStore struct {
	db *gorm.DB
}

// NewHealthStore creates a new HealthStore
func NewHealthStore(db *gorm.DB) *HealthStore {
	return &HealthStore{db: db}
}

// CheckConnectivity runs a trivial query against the database.
func (s *HealthStore) CheckConnectivity() error {
	var one int
	return s.db.Raw("SELECT 1").Scan(&one).Error
}
