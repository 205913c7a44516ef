package gorm

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure the contact stores implement their interfaces
var (
	_ store.ContactsInStore  = (*ContactsInStore)(nil)
	_ store.ContactsOutStore = (*ContactsOutStore)(nil)
)

const contactSearchClause = "name ILIKE ? OR organization ILIKE ? OR email ILIKE ?"

func validateContactInput(input store.ContactInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", store.ErrInvalidInput)
	}
	return nil
}

func contactChanges(update store.ContactUpdate) (map[string]interface{}, error) {
	changes := map[string]interface{}{}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", store.ErrInvalidInput)
		}
		changes["name"] = *update.Name
	}
	if update.Organization != nil {
		changes["organization"] = *update.Organization
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}
	if update.Address != nil {
		changes["address"] = *update.Address
	}
	return changes, nil
}

// ContactsInStore implements store.ContactsInStore using GORM
type ContactsInStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewContactsInStore creates a new ContactsInStore
func NewContactsInStore(db *gorm.DB, limits store.Limits) *ContactsInStore {
	return &ContactsInStore{db: db, limits: limits}
}

func (s *ContactsInStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.ContactIn{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where(contactSearchClause, pattern, pattern, pattern)
	}
	return query
}

// ListContacts returns one page of inbound correspondents in id order.
func (s *ContactsInStore) ListContacts(search string, page, limit int) ([]model.ContactIn, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	contacts := make([]model.ContactIn, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&contacts).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return contacts, store.NewPagination(total, page, limit), nil
}

// FetchContact retrieves an inbound correspondent by id.
func (s *ContactsInStore) FetchContact(id int64) (*model.ContactIn, error) {
	var contact model.ContactIn
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contact %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &contact, nil
}

// CreateContact validates and inserts a new inbound correspondent.
func (s *ContactsInStore) CreateContact(input store.ContactInput) (*model.ContactIn, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact := model.ContactIn{
		Name:         input.Name,
		Organization: input.Organization,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact merges the provided fields into an inbound correspondent.
func (s *ContactsInStore) UpdateContact(id int64, update store.ContactUpdate) (*model.ContactIn, error) {
	if _, err := s.FetchContact(id); err != nil {
		return nil, err
	}

	changes, err := contactChanges(update)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.Model(&model.ContactIn{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchContact(id)
}

// DeleteContact removes an inbound correspondent.
func (s *ContactsInStore) DeleteContact(id int64) error {
	tx := s.db.Delete(&model.ContactIn{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: contact %d", store.ErrNotFound, id)
	}
	return nil
}

// ContactsOutStore implements store.ContactsOutStore using GORM
type ContactsOutStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewContactsOutStore creates a new ContactsOutStore
func NewContactsOutStore(db *gorm.DB, limits store.Limits) *ContactsOutStore {
	return &ContactsOutStore{db: db, limits: limits}
}

func (s *ContactsOutStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.ContactOut{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where(contactSearchClause, pattern, pattern, pattern)
	}
	return query
}

// ListContacts returns one page of outbound recipients in id order.
func (s *ContactsOutStore) ListContacts(search string, page, limit int) ([]model.ContactOut, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	contacts := make([]model.ContactOut, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&contacts).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return contacts, store.NewPagination(total, page, limit), nil
}

// FetchContact retrieves an outbound recipient by id.
func (s *ContactsOutStore) FetchContact(id int64) (*model.ContactOut, error) {
	var contact model.ContactOut
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contact %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &contact, nil
}

// CreateContact validates and inserts a new outbound recipient.
func (s *ContactsOutStore) CreateContact(input store.ContactInput) (*model.ContactOut, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	contact := model.ContactOut{
		Name:         input.Name,
		Organization: input.Organization,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact merges the provided fields into an outbound recipient.
func (s *ContactsOutStore) UpdateContact(id int64, update store.ContactUpdate) (*model.ContactOut, error) {
	if _, err := s.FetchContact(id); err != nil {
		return nil, err
	}

	changes, err := contactChanges(update)
	if err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		if err := s.db.Model(&model.ContactOut{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchContact(id)
}

// DeleteContact removes an outbound recipient.
func (s *ContactsOutStore) DeleteContact(id int64) error {
	tx := s.db.Delete(&model.ContactOut{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: contact %d", store.ErrNotFound, id)
	}
	return nil
}
