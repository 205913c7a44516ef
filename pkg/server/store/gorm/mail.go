package gorm

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// Ensure MailStore implements store.MailStore
var _ store.MailStore = (*MailStore)(nil)

// MailStore implements store.MailStore using GORM
type MailStore struct {
	db     *gorm.DB
	limits store.Limits
}

// NewMailStore creates a new MailStore
func NewMailStore(db *gorm.DB, limits store.Limits) *MailStore {
	return &MailStore{db: db, limits: limits}
}

func (s *MailStore) scope(search string) *gorm.DB {
	query := s.db.Model(&model.MailIn{})
	if search != "" {
		pattern := likePattern(search)
		query = query.Where("reference ILIKE ? OR subject ILIKE ?", pattern, pattern)
	}
	return query
}

// ListMail returns one page of registered mail in id order.
func (s *MailStore) ListMail(search string, page, limit int) ([]model.MailIn, store.Pagination, error) {
	page, limit, offset := s.limits.Window(page, limit)

	var total int64
	if err := s.scope(search).Count(&total).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	mail := make([]model.MailIn, 0, limit)
	if err := s.scope(search).Order("id").Limit(limit).Offset(offset).Find(&mail).Error; err != nil {
		return nil, store.Pagination{}, err
	}

	return mail, store.NewPagination(total, page, limit), nil
}

// FetchMail retrieves a piece of mail by id.
func (s *MailStore) FetchMail(id int64) (*model.MailIn, error) {
	var mail model.MailIn
	if err := s.db.First(&mail, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: mail %d", store.ErrNotFound, id)
		}
		return nil, err
	}
	return &mail, nil
}

// CreateMail validates and registers a new piece of mail. Status defaults
// to received and receivedAt to now when omitted.
func (s *MailStore) CreateMail(input store.MailInput) (*model.MailIn, error) {
	if strings.TrimSpace(input.Reference) == "" {
		return nil, fmt.Errorf("%w: reference is required", store.ErrInvalidInput)
	}
	if strings.TrimSpace(input.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", store.ErrInvalidInput)
	}

	mail := model.MailIn{
		Reference:  input.Reference,
		Subject:    input.Subject,
		ContactID:  input.ContactID,
		ServiceID:  input.ServiceID,
		Status:     model.MailStatusReceived,
		ReceivedAt: time.Now().UTC(),
	}
	if input.Status != nil {
		if !input.Status.IsAMailStatus() {
			return nil, fmt.Errorf("%w: unknown status", store.ErrInvalidInput)
		}
		mail.Status = *input.Status
	}
	if input.ReceivedAt != nil {
		mail.ReceivedAt = *input.ReceivedAt
	}

	if err := s.db.Create(&mail).Error; err != nil {
		return nil, err
	}
	return &mail, nil
}

// UpdateMail merges the provided fields into an existing piece of mail.
func (s *MailStore) UpdateMail(id int64, update store.MailUpdate) (*model.MailIn, error) {
	if _, err := s.FetchMail(id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Reference != nil {
		if strings.TrimSpace(*update.Reference) == "" {
			return nil, fmt.Errorf("%w: reference must not be empty", store.ErrInvalidInput)
		}
		changes["reference"] = *update.Reference
	}
	if update.Subject != nil {
		if strings.TrimSpace(*update.Subject) == "" {
			return nil, fmt.Errorf("%w: subject must not be empty", store.ErrInvalidInput)
		}
		changes["subject"] = *update.Subject
	}
	if update.ContactID != nil {
		changes["contact_id"] = *update.ContactID
	}
	if update.ServiceID != nil {
		changes["service_id"] = *update.ServiceID
	}
	if update.Status != nil {
		if !update.Status.IsAMailStatus() {
			return nil, fmt.Errorf("%w: unknown status", store.ErrInvalidInput)
		}
		changes["status"] = *update.Status
	}
	if update.ReceivedAt != nil {
		changes["received_at"] = *update.ReceivedAt
	}

	if len(changes) > 0 {
		if err := s.db.Model(&model.MailIn{}).Where("id = ?", id).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return s.FetchMail(id)
}

// DeleteMail removes a piece of mail and its read records.
func (s *MailStore) DeleteMail(id int64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("mail_id = ?", id).Delete(&model.MailRead{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.MailIn{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: mail %d", store.ErrNotFound, id)
		}
		return nil
	})
}

// MarkRead records that a user has read a piece of mail. The insert is
// keyed on (mail_id, user_id) with conflicts ignored, so repeat calls
// return the original read record unchanged.
func (s *MailStore) MarkRead(mailID, userID int64) (*model.MailRead, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: userId is required", store.ErrInvalidInput)
	}
	if _, err := s.FetchMail(mailID); err != nil {
		return nil, err
	}

	read := model.MailRead{
		MailID: mailID,
		UserID: userID,
		ReadAt: time.Now().UTC(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "mail_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&read).Error
	if err != nil {
		return nil, err
	}

	var stored model.MailRead
	if err := s.db.Where("mail_id = ? AND user_id = ?", mailID, userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// NextID predicts the id the next registered mail will receive. The value
// is advisory: a concurrent registration can claim it first.
func (s *MailStore) NextID() (int64, error) {
	var next int64
	if err := s.db.Raw("SELECT COALESCE(MAX(id), 0) + 1 FROM mail_in").Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}
