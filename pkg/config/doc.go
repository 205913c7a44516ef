// Package config loads townclerk configuration from an optional YAML file
// and CLERK_* environment variables. Environment values take precedence
// over file values, which take precedence over defaults; the source of
// every attribute is tracked for `clerkctl configuration show`.
package config
