// Package domain defines the core business entities of the user account
// service: User accounts and their owned Address and Phone sub-resources.
//
// Entities carry no persistence or transport concerns. Partial updates are
// expressed through the *Patch types, where a nil field means "leave the
// stored value unchanged". There is deliberately no way to clear a field
// to empty through a patch.
package domain
