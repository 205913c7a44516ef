// Package main implements clerkctl, the CLI for the townclerk municipal
// correspondence server.
//
// townclerk tracks the incoming and outgoing correspondence of a municipal
// administration: registered mail, the contacts it involves, the services
// it is routed to, and the agents and admins who handle it.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers and HTML pages
//   - pkg/server/store: Storage interfaces and GORM implementations
//   - pkg/session: Session token issuing and verification
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Activity logging
//   - pkg/config: Configuration management
//   - pkg/ui: View models and page templates
//
// # Quick Start
//
//	# Run database migrations
//	clerkctl db migrate
//
//	# Create the first admin account
//	clerkctl admin create clerk --role admin
//
//	# Start the server
//	export SESSION_SECRET=...
//	clerkctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SESSION_SECRET: HMAC secret for session tokens
//   - CLERK_CONFIG_PATH: Directory holding townclerk.yml
//   - CLERK_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8000)
package main
