package db

import "embed"

// Migrations holds the SQL migration files, embedded so production builds
// can run migrations without shipping the source tree.
//
//go:embed migrations/*.sql
var Migrations embed.FS
