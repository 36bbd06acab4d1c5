// Package handler is the HTTP layer between the router and the services.
//
// Each endpoint binds and validates its request, calls one service operation
// and turns the outcome into a response envelope or an *errs.HTTPError for
// the global error handler.
package handler
