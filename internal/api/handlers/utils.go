// filepath: internal/api/handlers/utils.go
package handlers

import (
	"net"
	"net/http"
)

// ClientIP returns the host part of the request's remote address. It is the
// caller identity for rate limiting and audit records.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
