package gorm

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure ServicesStore implements store.ServicesStore
var _ store.ServicesStore = (*ServicesStore)(nil)

// ServicesStore implements store.ServicesStore using GORM
type ServicesStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewServicesStore creates a new ServicesStore
func NewServicesStore(db *gorm.DB, limits store.Limits) *ServicesStore {
	return &ServicesStore{db: db, limits: limits}
}

func (s *ServicesStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.Service{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	return query
}

// ListServices returns one page of services in id order, optionally
// filtered by a case-insensitive substring of name or code.
func (s *ServicesStore) ListServices(search string, page, limit int) ([]model.Service, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	services := make([]model.Service, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&services).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return services, store.NewPagination(total, page, limit), nil
}

// FetchService retrieves a service by id.
func (s *ServicesStore) FetchService(id int64) (*model.Service, error) {
	var service model.Service
	if err := s.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &service, nil
}

// CreateService validates and inserts a new service.
func (s *ServicesStore) CreateService(input store.ServiceInput) (*model.Service, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", store.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Code) == "" {
		return nil, fmt.Errorf("%w: code is required", store.ErrInvalidInput)
	}

	var existing int64
	if err := s.db.Model(&model.Service{}).Where("code = ?", input.Code).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: service code %q", store.ErrConflict, input.Code)
	}

	service := model.Service{
		Name: input.Name,
		Code: input.Code,
	}
	if err := s.db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService merges the provided fields into an existing service.
func (s *ServicesStore) UpdateService(id int64, update store.ServiceUpdate) (*model.Service, error) {
	if _, err := s.FetchService(id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", store.ErrInvalidInput)
		}
		changes["name"] = *update.Name
	}
	if update.Code != nil {
		if strings.TrimSpace(*update.Code) == "" {
			return nil, fmt.Errorf("%w: code must not be empty", store.ErrInvalidInput)
		}
		changes["code"] = *update.Code
	}

	if len(changes) > 0 {
		if err := s.db.Model(&model.Service{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchService(id)
}

// DeleteService removes a service.
func (s *ServicesStore) DeleteService(id int64) error {
	tx := s.db.Delete(&model.Service{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: service %d", store.ErrNotFound, id)
	}
	return nil
}
