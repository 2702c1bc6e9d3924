package util

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

//nolint:gochecknoglobals
var baseTransport *http.Transport

//nolint:gochecknoinits
func init() {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		panic(fmt.Errorf(
			"unsupported Go version: http.DefaultTransport is not of type *http.Transport: it is a %T",
			http.DefaultTransport,
		))
	}

	baseTransport = base
}

// DefaultHTTPTransport returns a new Transport with the same defaults as net/http.
func DefaultHTTPTransport() *http.Transport {
	return baseTransport.Clone()
}

// HTTPClientIP returns the IP of the client that sent `r`.
// Proxy headers take precedence over the remote address: "Forwarded" first, then "X-Forwarded-For".
func HTTPClientIP(r *http.Request) net.IP {
	if ip := forwardedFor(r.Header.Get("Forwarded")); ip != nil {
		return ip
	}

	if xff := commaSeparated(r.Header.Get("X-Forwarded-For")); len(xff) > 0 {
		if ip := net.ParseIP(xff[0]); ip != nil {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return net.ParseIP(r.RemoteAddr)
	}

	return net.ParseIP(host)
}

func commaSeparated(s string) []string {
	res := make([]string, 0, strings.Count(s, ",")+1)

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}

// forwardedFor returns the first usable "for" node of a RFC 7239 header value.
func forwardedFor(header string) net.IP {
	for _, element := range commaSeparated(header) {
		for _, pair := range strings.Split(element, ";") {
			key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
			if !found || !strings.EqualFold(key, "for") {
				continue
			}

			if ip := parseNode(strings.Trim(value, `"`)); ip != nil {
				return ip
			}
		}
	}

	return nil
}

// parseNode handles "ip", "ip:port", "[ipv6]" and "[ipv6]:port".
// Obfuscated identifiers and "unknown" result in nil.
func parseNode(node string) net.IP {
	if strings.HasPrefix(node, "[") {
		if end := strings.Index(node, "]"); end > 0 {
			return net.ParseIP(node[1:end])
		}

		return nil
	}

	if host, _, err := net.SplitHostPort(node); err == nil {
		node = host
	}

	return net.ParseIP(node)
}
