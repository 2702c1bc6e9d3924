package helpertest

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"

	"github.com/0xERR0R/pslsplit/log"

	"github.com/onsi/ginkgo/v2"
)

// TempFile creates temp file with passed data
func TempFile(data string) *os.File {
	f, err := os.CreateTemp("", "pslsplit")
	if err != nil {
		log.Log().Fatal(err)
	}

	_, err = f.WriteString(data)
	if err != nil {
		log.Log().Fatal(err)
	}

	ginkgo.DeferCleanup(func() {
		_ = f.Close()
		_ = os.Remove(f.Name())
	})

	return f
}

// TestServer creates temp http server with passed data
func TestServer(data string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, err := rw.Write([]byte(data))
		if err != nil {
			log.Log().Fatal("can't write to buffer:", err)
		}
	}))

	ginkgo.DeferCleanup(srv.Close)

	return srv
}

// CountingServer is a test HTTP server serving the value of `Data`,
// counting the requests it receives.
type CountingServer struct {
	*httptest.Server

	data     atomic.Value
	requests atomic.Int32
}

// NewCountingServer starts a `CountingServer` serving `data`.
func NewCountingServer(data string) *CountingServer {
	s := &CountingServer{}
	s.SetData(data)

	s.Server = httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		s.requests.Add(1)

		_, _ = rw.Write([]byte(s.data.Load().(string)))
	}))

	ginkgo.DeferCleanup(s.Close)

	return s
}

// SetData changes the served content.
func (s *CountingServer) SetData(data string) {
	s.data.Store(data)
}

// Requests returns the number of requests served so far.
func (s *CountingServer) Requests() int {
	return int(s.requests.Load())
}

// DoGetRequest performs a GET request
func DoGetRequest(ctx context.Context, url string,
	fn func(w http.ResponseWriter, r *http.Request),
) (*httptest.ResponseRecorder, *bytes.Buffer) {
	r, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(fn)

	handler.ServeHTTP(rr, r)

	return rr, rr.Body
}
