package store

import "townclerk/pkg/model"

// ContactInput is the payload for creating a contact, shared by the
// inbound and outbound namespaces.
type ContactInput struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// ContactUpdate carries the fields of a partial contact update.
type ContactUpdate struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
}

// ContactsInStore abstracts inbound correspondent storage. Searches match
// a case-insensitive substring of name, organization or email.
type ContactsInStore interface {
	ListContacts(search string, page, limit int) ([]model.ContactIn, Pagination, error)
	FetchContact(id int64) (*model.ContactIn, error)
	CreateContact(input ContactInput) (*model.ContactIn, error)
	UpdateContact(id int64, update ContactUpdate) (*model.ContactIn, error)
	DeleteContact(id int64) error
}

// ContactsOutStore abstracts outbound recipient storage, with the same
// contract as ContactsInStore over the outbound namespace.
type ContactsOutStore interface {
	ListContacts(search string, page, limit int) ([]model.ContactOut, Pagination, error)
	FetchContact(id int64) (*model.ContactOut, error)
	CreateContact(input ContactInput) (*model.ContactOut, error)
	UpdateContact(id int64, update ContactUpdate) (*model.ContactOut, error)
	DeleteContact(id int64) error
}
