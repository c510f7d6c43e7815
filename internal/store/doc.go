// Package store defines the persistence interfaces for the user account
// service and the sentinel errors shared by all implementations.
//
// Implementations live under internal/platform; tests substitute the
// func-field mocks from internal/mocks.
package store
