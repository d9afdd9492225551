// Package acl provides Anti-Corruption Layer adapters that translate between
// the upstream posts/comments API and domain types.
//
// # What is an Anti-Corruption Layer?
//
// The Anti-Corruption Layer (ACL) is a pattern from Domain-Driven Design that
// protects the domain model from external service representations. It acts as
// a translation boundary:
//
//   - Upstream DTOs never leak into the domain
//   - Upstream status codes map to [domain.Error] values
//   - Changes to the upstream API stay inside this package
//
// # Package Components
//
//   - [BaseAdapter]: embeddable struct that fetches JSON and maps failures
//   - [ErrorMessages]: per-operation detail text for failures
//   - [MapHTTPError]: client error to [domain.Error] mapping
//   - [TranslateSlice]: batch translation helper
//   - [PostClient]: the posts/comments adapter
//
// # Error Handling Strategy
//
// The upstream reports failures in three ways, all translated here:
//
//   - 404 on a keyed lookup → "Resource Not Found", status 404
//   - any other 4xx/5xx → "API Error", upstream status kept
//   - no response or undecodable body → "API Error", no status
//
// The HTTP adapter decides the final response status from the [domain.Error].
package acl
