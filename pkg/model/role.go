package model

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform lower -json -sql -output role.gen.go

// Role is the privilege level of an administrator account.
type Role int

// RoleAgent comes first so a zero-valued Role never grants admin.
const (
	RoleAgent Role = iota
	RoleAdmin
)
