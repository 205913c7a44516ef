package endpoints

import (
	"github.com/stretchr/testify/mock"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) ListUsers(search string, page, limit int) ([]model.User, store.Pagination, error) {
	args := m.Called(search, page, limit)
	return args.Get(0).([]model.User), args.Get(1).(store.Pagination), args.Error(2)
}

func (m *MockUsersStore) FetchUser(id int64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) CreateUser(input store.UserInput) (*model.User, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) UpdateUser(id int64, update store.UserUpdate) (*model.User, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) DeleteUser(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAdminsStore implements store.AdminsStore for testing using testify/mock
type MockAdminsStore struct {
	mock.Mock
}

func NewMockAdminsStore() *MockAdminsStore {
	return &MockAdminsStore{}
}

func (m *MockAdminsStore) ListAdmins(search string, page, limit int) ([]model.Admin, store.Pagination, error) {
	args := m.Called(search, page, limit)
	return args.Get(0).([]model.Admin), args.Get(1).(store.Pagination), args.Error(2)
}

func (m *MockAdminsStore) FetchAdmin(id int64) (*model.Admin, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminsStore) FetchAdminByUsername(username string) (*model.Admin, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminsStore) CreateAdmin(input store.AdminInput) (*model.Admin, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminsStore) UpdateAdmin(id int64, update store.AdminUpdate) (*model.Admin, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminsStore) DeleteAdmin(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdminsStore) SetAdminPassword(username string, password string) error {
	args := m.Called(username, password)
	return args.Error(0)
}

// MockMailStore implements store.MailStore for testing using testify/mock
type MockMailStore struct {
	mock.Mock
}

func NewMockMailStore() *MockMailStore {
	return &MockMailStore{}
}

func (m *MockMailStore) ListMail(search string, page, limit int) ([]model.MailIn, store.Pagination, error) {
	args := m.Called(search, page, limit)
	return args.Get(0).([]model.MailIn), args.Get(1).(store.Pagination), args.Error(2)
}

func (m *MockMailStore) FetchMail(id int64) (*model.MailIn, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MailIn), args.Error(1)
}

func (m *MockMailStore) CreateMail(input store.MailInput) (*model.MailIn, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MailIn), args.Error(1)
}

func (m *MockMailStore) UpdateMail(id int64, update store.MailUpdate) (*model.MailIn, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MailIn), args.Error(1)
}

func (m *MockMailStore) DeleteMail(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMailStore) MarkRead(mailID, userID int64) (*model.MailRead, error) {
	args := m.Called(mailID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MailRead), args.Error(1)
}

func (m *MockMailStore) NextID() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
