// Package errs defines the error types shared by every layer.
//
// Two families live here:
//   - Error carries a domain failure Kind (duplicate key, not found, integrity
//     violation, unknown) from repositories and services up to the handlers.
//   - HTTPError is the transport shape a handler hands to the global error
//     handler, which renders it as a response envelope.
//
// StatusFor is the single place where a Kind becomes an HTTP status.
package errs
