package gorm

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB, limits store.Limits) *UsersStore {
	return &UsersStore{db: db, limits: limits}
}

func (s *UsersStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.User{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	return query
}

// ListUsers returns one page of users in id order, optionally filtered by
// a case-insensitive substring of name or email.
func (s *UsersStore) ListUsers(search string, page, limit int) ([]model.User, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	users := make([]model.User, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return users, store.NewPagination(total, page, limit), nil
}

// FetchUser retrieves a user by id.
func (s *UsersStore) FetchUser(id int64) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser validates and inserts a new user.
func (s *UsersStore) CreateUser(input store.UserInput) (*model.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", store.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", store.ErrInvalidInput)
	}

	user := model.User{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		ServiceID: input.ServiceID,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser merges the provided fields into an existing user.
func (s *UsersStore) UpdateUser(id int64, update store.UserUpdate) (*model.User, error) {
	if _, err := s.FetchUser(id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", store.ErrInvalidInput)
		}
		changes["name"] = *update.Name
	}
	if update.Email != nil {
		if strings.TrimSpace(*update.Email) == "" {
			return nil, fmt.Errorf("%w: email must not be empty", store.ErrInvalidInput)
		}
		changes["email"] = *update.Email
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.ServiceID != nil {
		changes["service_id"] = *update.ServiceID
	}

	if len(changes) > 0 {
		if err := s.db.Model(&model.User{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchUser(id)
}

// DeleteUser removes a user.
func (s *UsersStore) DeleteUser(id int64) error {
	tx := s.db.Delete(&model.User{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", store.ErrNotFound, id)
	}
	return nil
}
