package endpoints

import (
	"townclerk/pkg/server"
)

// RegisterAll registers all API endpoints and pages on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterAdminsEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterServicesEndpoints(srv)
	RegisterContactsEndpoints(srv)
	RegisterCouncilEndpoints(srv)
	RegisterMailEndpoints(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoints(srv)

	// HTML pages
	RegisterPageEndpoints(srv)
}
