// Package validation binds requests and turns validator failures into the
// field errors returned to API clients.
package validation
