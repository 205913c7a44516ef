// Package store defines the storage interfaces behind the townclerk API:
// one interface per resource family, each offering paginated listing with
// optional text search plus create/fetch/update/delete. Implementations
// live in the gorm subpackage; handlers depend only on these interfaces.
package store
