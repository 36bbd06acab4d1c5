// Package lib groups infrastructure that does not belong to a single layer:
// background jobs, email delivery, the redis page cache and dependency
// health monitoring.
package lib
