package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// DSN returns the postgres URL for the configured database. Host and port are
// joined IPv6-safely and the credentials are URL-escaped.
func (d DatabaseConfig) DSN() string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}
