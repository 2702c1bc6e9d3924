package util

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTTP Util", func() {
	Describe("DefaultHTTPTransport", func() {
		It("returns a new transport", func() {
			a := DefaultHTTPTransport()
			Expect(a).Should(BeIdenticalTo(a))

			b := DefaultHTTPTransport()
			Expect(a).ShouldNot(BeIdenticalTo(b))
		})

		It("returns a copy of http.DefaultTransport", func() {
			Expect(cmp.Diff(
				DefaultHTTPTransport(), http.DefaultTransport,
				cmpopts.IgnoreUnexported(http.Transport{}),
				// Non nil func field comparers
				cmp.Comparer(cmpAsPtrs[func(context.Context, string, string) (net.Conn, error)]),
				cmp.Comparer(cmpAsPtrs[func(*http.Request) (*url.URL, error)]),
			)).Should(BeEmpty())
		})
	})

	Describe("HTTPClientIP", func() {
		It("extracts the IP from RemoteAddr", func() {
			r, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
			Expect(err).Should(Succeed())

			ip := net.IPv4allrouter
			r.RemoteAddr = net.JoinHostPort(ip.String(), "78954")

			Expect(HTTPClientIP(r)).Should(Equal(ip))
		})

		It("extracts the IP from RemoteAddr without a port", func() {
			r, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
			Expect(err).Should(Succeed())

			ip := net.IPv4allrouter
			r.RemoteAddr = ip.String()

			Expect(HTTPClientIP(r)).Should(Equal(ip))
		})

		It("extracts the IP from the X-Forwarded-For header", func() {
			r, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
			Expect(err).Should(Succeed())

			ip := net.IPv4bcast
			r.RemoteAddr = "10.0.0.1:1234"

			r.Header.Set("X-Forwarded-For", ip.String()+", 10.0.0.2")

			Expect(HTTPClientIP(r)).Should(Equal(ip))
		})

		DescribeTable("Forwarded header",
			func(header, expected string) {
				r, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
				Expect(err).Should(Succeed())

				r.RemoteAddr = "10.0.0.1:1234"
				r.Header.Set("X-Forwarded-For", "10.0.0.2")
				r.Header.Set("Forwarded", header)

				Expect(HTTPClientIP(r).String()).Should(Equal(expected))
			},
			Entry("plain", "for=192.0.2.43", "192.0.2.43"),
			Entry("with port and proto", `for="192.0.2.43:8080";proto=http`, "192.0.2.43"),
			Entry("IPv6", `For="[2001:db8::1]:4711"`, "2001:db8::1"),
			Entry("unknown first", "for=unknown, for=198.51.100.17", "198.51.100.17"),
			Entry("obfuscated falls back", "for=_hidden", "10.0.0.2"),
		)
	})
})

// Go and cmp don't define func comparisons, besides with nil.
// In practice we can just compare them as pointers.
// See https://github.com/google/go-cmp/issues/162
func cmpAsPtrs[T any](x, y T) bool {
	return reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
}
