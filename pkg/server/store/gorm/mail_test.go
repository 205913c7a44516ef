package gorm

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

func TestMailStore_NextID_EmptyTable(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	m.Mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\), 0\) \+ 1 FROM mail_in`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))

	next, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, int64(1), next)

	m.VerifyExpectations(t)
}

func TestMailStore_NextID(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	m.Mock.ExpectQuery(`SELECT COALESCE\(MAX\(id\), 0\) \+ 1 FROM mail_in`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(43))

	next, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, int64(43), next)

	m.VerifyExpectations(t)
}

func TestMailStore_CreateMail_RequiredFields(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	_, err := s.CreateMail(store.MailInput{Subject: "Streetlight outage"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = s.CreateMail(store.MailInput{Reference: "2026/0114"})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	m.VerifyExpectations(t)
}

func TestMailStore_CreateMail_UnknownStatus(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	bad := model.MailStatus(99)
	_, err := s.CreateMail(store.MailInput{
		Reference: "2026/0114",
		Subject:   "Streetlight outage",
		Status:    &bad,
	})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	m.VerifyExpectations(t)
}

func TestMailStore_MarkRead_InvalidUser(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	_, err := s.MarkRead(1, 0)
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	m.VerifyExpectations(t)
}

func TestMailStore_MarkRead_MailNotFound(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	m.Mock.ExpectQuery(`SELECT .* FROM "mail_in"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.MarkRead(42, 7)
	assert.ErrorIs(t, err, store.ErrNotFound)

	m.VerifyExpectations(t)
}

func TestMailStore_FetchMail_NotFound(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	m.Mock.ExpectQuery(`SELECT .* FROM "mail_in"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	mail, err := s.FetchMail(42)
	assert.Nil(t, mail)
	assert.ErrorIs(t, err, store.ErrNotFound)

	m.VerifyExpectations(t)
}

func TestMailStore_ListMail(t *testing.T) {
	m := NewMockDB(t)
	s := NewMailStore(m.GormDB, testLimits)

	m.Mock.ExpectQuery(`SELECT count\(\*\) FROM "mail_in"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	m.Mock.ExpectQuery(`SELECT .* FROM "mail_in"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reference", "subject", "status"}).
			AddRow(1, "2026/0114", "Streetlight outage", "received"))

	mail, pagination, err := s.ListMail("", 1, 20)
	require.NoError(t, err)
	require.Len(t, mail, 1)
	assert.Equal(t, "2026/0114", mail[0].Reference)
	assert.Equal(t, model.MailStatusReceived, mail[0].Status)
	assert.Equal(t, int64(1), pagination.Total)

	m.VerifyExpectations(t)
}
