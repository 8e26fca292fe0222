// Package token issues the opaque identifiers that reference stored pages.
package token

import "github.com/google/uuid"

// New returns a fresh page token. Tokens are random UUIDs, so they are not
// guessable from earlier tokens and collisions are negligible over the live
// set bounded by the retention window.
func New() string {
	return uuid.NewString()
}
