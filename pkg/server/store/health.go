package store

// HealthStore abstracts the connectivity probe behind /health.
type HealthStore interface {
	// CheckConnectivity verifies that the database answers a trivial query.
	CheckConnectivity() error
}
