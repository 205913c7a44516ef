// Package audit provides activity logging for townclerk operations.
//
// This package implements structured audit logging for security-relevant
// operations such as login attempts, record changes, and mail reads.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Login events (success/failure)
//   - Record change events (create/update/delete)
//   - Mail read events
//
// # Usage
//
//	audit.Log(audit.LoginEvent{Username: username, Success: true})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements.
package audit
