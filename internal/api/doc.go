// Package api implements the HTTP boundary: request/response DTOs with
// hand-written conversions to and from domain records, handlers for the
// /usuario routes and the mapping of core errors to HTTP status codes.
// No reflection-based field binding is used.
package api
