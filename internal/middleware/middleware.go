// Package middleware holds the echo middleware shared by every route and the
// global error handler that turns escaped errors into response envelopes.
package middleware
