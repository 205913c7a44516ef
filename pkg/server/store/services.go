package store

import "townclerk/pkg/model"

// ServiceInput is the payload for creating a service.
type ServiceInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ServiceUpdate carries the fields of a partial service update.
type ServiceUpdate struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// ServicesStore abstracts organizational unit storage.
type ServicesStore interface {
	// ListServices returns one page of services, filtered by a
	// case-insensitive substring search over name and code.
	ListServices(search string, page, limit int) ([]model.Service, Pagination, error)

	// FetchService retrieves a service by id. Returns ErrNotFound if absent.
	FetchService(id int64) (*model.Service, error)

	// CreateService validates and inserts a new service. Name and code are
	// required; duplicate codes yield ErrConflict.
	CreateService(input ServiceInput) (*model.Service, error)

	// UpdateService merges the provided fields into an existing service.
	UpdateService(id int64, update ServiceUpdate) (*model.Service, error)

	// DeleteService removes a service. Returns ErrNotFound if absent.
	DeleteService(id int64) error
}
