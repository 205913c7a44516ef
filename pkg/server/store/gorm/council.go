package gorm

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure CouncilStore implements store.CouncilStore
var _ store.CouncilStore = (*CouncilStore)(nil)

// CouncilStore implements store.CouncilStore using GORM
type CouncilStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewCouncilStore creates a new CouncilStore
func NewCouncilStore(db *gorm.DB, limits store.Limits) *CouncilStore {
	return &CouncilStore{db: db, limits: limits}
}

func (s *CouncilStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.CouncilMember{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where(
			"full_name ILIKE ? OR title ILIKE ? OR commission ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

// ListMembers returns one page of council members in id order.
func (s *CouncilStore) ListMembers(search string, page, limit int) ([]model.CouncilMember, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	members := make([]model.CouncilMember, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&members).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return members, store.NewPagination(total, page, limit), nil
}

// FetchMember retrieves a council member by id.
func (s *CouncilStore) FetchMember(id int64) (*model.CouncilMember, error) {
	var member model.CouncilMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: council member %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &member, nil
}

// CreateMember validates and inserts a new council member.
func (s *CouncilStore) CreateMember(input store.CouncilMemberInput) (*model.CouncilMember, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return nil, fmt.Errorf("%w: fullName is required", store.ErrInvalidInput)
	}

	member := model.CouncilMember{
		FullName:   input.FullName,
		Title:      input.Title,
		Commission: input.Commission,
		Email:      input.Email,
		Phone:      input.Phone,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMember merges the provided fields into an existing council member.
func (s *CouncilStore) UpdateMember(id int64, update store.CouncilMemberUpdate) (*model.CouncilMember, error) {
	if _, err := s.FetchMember(id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.FullName != nil {
		if strings.TrimSpace(*update.FullName) == "" {
			return nil, fmt.Errorf("%w: fullName must not be empty", store.ErrInvalidInput)
		}
		changes["full_name"] = *update.FullName
	}
	if update.Title != nil {
		changes["title"] = *update.Title
	}
	if update.Commission != nil {
		changes["commission"] = *update.Commission
	}
	if update.Email != nil {
		changes["email"] = *update.Email
	}
	if update.Phone != nil {
		changes["phone"] = *update.Phone
	}

	if len(changes) > 0 {
		if err := s.db.Model(&model.CouncilMember{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchMember(id)
}

// DeleteMember removes a council member.
func (s *CouncilStore) DeleteMember(id int64) error {
	tx := s.db.Delete(&model.CouncilMember{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: council member %d", store.ErrNotFound, id)
	}
	return nil
}
