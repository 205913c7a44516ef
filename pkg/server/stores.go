package server

import "townclerk/pkg/server/store"

// Stores bundles the storage interfaces the endpoints depend on. Tests
// substitute mocks for individual members.
type Stores struct {
	Admins      store.AdminsStore
	Users       store.UsersStore
	Services    store.ServicesStore
	ContactsIn  store.ContactsInStore
	ContactsOut store.ContactsOutStore
	Council     store.CouncilStore
	Mail        store.MailStore
	Health      store.HealthStore
}
