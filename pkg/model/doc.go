// Package model defines the persistent records managed by townclerk:
// administrators, municipal agents, services, correspondents, council
// members and incoming mail. Each type maps to a table via GORM tags.
package model
