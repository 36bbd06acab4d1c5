// Package service holds the business rules between handlers and
// repositories. Every failure it returns is classified with an errs.Kind.
package service
