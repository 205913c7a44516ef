// Package db establishes the GORM connection to the townclerk database.
package db
