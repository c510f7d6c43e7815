// Package service contains the application's business logic: registration
// with email uniqueness enforcement, bearer-token identity resolution,
// partial-update merging and the token-scoped creation of owned
// sub-resources. Collaborators (stores, hasher, token service) are passed
// in explicitly so tests can substitute in-memory fakes.
package service
