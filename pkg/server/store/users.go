package store

import "townclerk/pkg/model"

// UserInput is the payload for creating a user.
type UserInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	ServiceID *int64 `json:"serviceId"`
}

// UserUpdate carries the fields of a partial user update.
type UserUpdate struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	ServiceID *int64  `json:"serviceId"`
}

// UsersStore abstracts municipal agent storage.
type UsersStore interface {
	// ListUsers returns one page of users, filtered by a case-insensitive
	// substring search over name and email when search is non-empty.
	ListUsers(search string, page, limit int) ([]model.User, Pagination, error)

	// FetchUser retrieves a user by id. Returns ErrNotFound if absent.
	FetchUser(id int64) (*model.User, error)

	// CreateUser validates and inserts a new user. Name and email are
	// required; a missing field yields ErrInvalidInput.
	CreateUser(input UserInput) (*model.User, error)

	// UpdateUser merges the provided fields into an existing user.
	UpdateUser(id int64, update UserUpdate) (*model.User, error)

	// DeleteUser removes a user. Returns ErrNotFound if absent.
	DeleteUser(id int64) error
}
