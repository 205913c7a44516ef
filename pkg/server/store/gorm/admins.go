package gorm

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure AdminsStore implements store.AdminsStore
var _ store.AdminsStore = (*AdminsStore)(nil)

// AdminsStore implements store.AdminsStore using GORM
type AdminsStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewAdminsStore creates a new AdminsStore
func NewAdminsStore(db *gorm.DB, limits store.Limits) *AdminsStore {
	return &AdminsStore{db: db, limits: limits}
}

func (s *AdminsStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.Admin{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where(
			"username ILIKE ? OR email ILIKE ? OR display_name ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

// ListAdmins returns one page of admins in id order, optionally filtered
// by a case-insensitive substring of username, email or display name.
func (s *AdminsStore) ListAdmins(search string, page, limit int) ([]model.Admin, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	admins := make([]model.Admin, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&admins).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return admins, store.NewPagination(total, page, limit), nil
}

// FetchAdmin retrieves an admin by id.
func (s *AdminsStore) FetchAdmin(id int64) (*model.Admin, error) {
	var admin model.Admin
	if err := s.db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: admin %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &admin, nil
}

// FetchAdminByUsername retrieves an admin by login name.
func (s *AdminsStore) FetchAdminByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	if err := s.db.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: admin %q", store.ErrNotFound, username)
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin validates and inserts a new admin account. The plaintext
// password is hashed with bcrypt before storage.
func (s *AdminsStore) CreateAdmin(input store.AdminInput) (*model.Admin, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", store.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", store.ErrInvalidInput)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", store.ErrInvalidInput)
	}
	if !input.Role.IsARole() {
		return nil, fmt.Errorf("%w: unknown role", store.ErrInvalidInput)
	}

	var existing int64
	if err := s.db.Model(&model.Admin{}).Where("username = ?", input.Username).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: username %q", store.ErrConflict, input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := model.Admin{
		Username:     input.Username,
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		Role:         input.Role,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateAdmin merges the provided fields into an existing admin.
func (s *AdminsStore) UpdateAdmin(id int64, update store.AdminUpdate) (*model.Admin, error) {
	if _, err := s.FetchAdmin(id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Email != nil {
		if strings.TrimSpace(*update.Email) == "" {
			return nil, fmt.Errorf("%w: email must not be empty", store.ErrInvalidInput)
		}
		changes["email"] = *update.Email
	}
	if update.DisplayName != nil {
		changes["display_name"] = *update.DisplayName
	}
	if update.Role != nil {
		if !update.Role.IsARole() {
			return nil, fmt.Errorf("%w: unknown role", store.ErrInvalidInput)
		}
		changes["role"] = *update.Role
	}

	if len(changes) > 0 {
		if err := s.db.Model(&model.Admin{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchAdmin(id)
}

// DeleteAdmin removes an admin account.
func (s *AdminsStore) DeleteAdmin(id int64) error {
	tx := s.db.Delete(&model.Admin{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: admin %d", store.ErrNotFound, id)
	}
	return nil
}

// SetAdminPassword replaces the stored password hash for a login name.
func (s *AdminsStore) SetAdminPassword(username string, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", store.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx := s.db.Model(&model.Admin{}).Where("username = ?", username).Update("password_hash", string(hash))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: admin %q", store.ErrNotFound, username)
	}
	return nil
}
