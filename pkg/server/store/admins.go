package store

import "townclerk/pkg/model"

// AdminInput is the payload for creating an admin account.
type AdminInput struct {
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	Role        model.Role `json:"role"`
	Password    string     `json:"password"`
}

// AdminUpdate carries the fields of a partial admin update. Nil fields are
// left untouched.
type AdminUpdate struct {
	Email       *string     `json:"email"`
	DisplayName *string     `json:"displayName"`
	Role        *model.Role `json:"role"`
}

// AdminsStore abstracts admin account storage.
type AdminsStore interface {
	// ListAdmins returns one page of admins, filtered by a case-insensitive
	// substring search over username, email and display name when search is
	// non-empty.
	ListAdmins(search string, page, limit int) ([]model.Admin, Pagination, error)

	// FetchAdmin retrieves an admin by id. Returns ErrNotFound if absent.
	FetchAdmin(id int64) (*model.Admin, error)

	// FetchAdminByUsername retrieves an admin by login name.
	FetchAdminByUsername(username string) (*model.Admin, error)

	// CreateAdmin validates and inserts a new admin. Missing required
	// fields yield ErrInvalidInput; duplicate usernames yield ErrConflict.
	CreateAdmin(input AdminInput) (*model.Admin, error)

	// UpdateAdmin merges the provided fields into an existing admin.
	UpdateAdmin(id int64, update AdminUpdate) (*model.Admin, error)

	// DeleteAdmin removes an admin. Returns ErrNotFound if absent.
	DeleteAdmin(id int64) error

	// SetAdminPassword hashes the given password and replaces the stored
	// hash for a login name. Returns ErrNotFound for unknown usernames.
	SetAdminPassword(username string, password string) error
}
