// Package mocks provides in-memory test doubles for the store interfaces
// and auth collaborators. Each mock has func fields to override individual
// methods and a map-backed default implementation for the common cases.
package mocks
