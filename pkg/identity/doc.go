// Package identity carries the verified session identity through the
// request context, so handlers receive an explicit identity instead of
// re-reading ambient middleware state.
package identity
