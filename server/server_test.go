package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"

	"github.com/0xERR0R/pslsplit/api"
	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/helpertest"
	"github.com/0xERR0R/pslsplit/metrics"
	"github.com/0xERR0R/pslsplit/psl"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Server", func() {
	var (
		ctx  context.Context
		cfg  *config.Config
		list *psl.List
		sut  *Server
	)

	BeforeEach(func() {
		var cancelFn context.CancelFunc

		ctx, cancelFn = context.WithCancel(context.Background())
		DeferCleanup(cancelFn)

		c, err := config.WithDefaults[config.Config]()
		Expect(err).Should(Succeed())

		cfg = &c
		cfg.Ports.HTTP = config.ListenConfig{"127.0.0.1:0"}

		list, err = psl.NewList(ctx, psl.Options{
			DataSource: psl.DataSourceFunc(func(context.Context) (string, error) {
				return helpertest.SuffixList, nil
			}),
		})
		Expect(err).Should(Succeed())
		DeferCleanup(list.Close)
	})

	JustBeforeEach(func() {
		var err error

		sut, err = NewServer(cfg, list)
		Expect(err).Should(Succeed())
		DeferCleanup(sut.Stop)
	})

	Describe("HTTP endpoints", func() {
		serve := func(method, path string) *httptest.ResponseRecorder {
			req, err := http.NewRequestWithContext(ctx, method, path, nil)
			Expect(err).Should(Succeed())

			req.Header.Set("Origin", "http://example.com")

			rr := httptest.NewRecorder()
			sut.Handler().ServeHTTP(rr, req)

			return rr
		}

		It("should serve the split endpoint", func() {
			rr := serve(http.MethodGet, api.SplitPath("forums.bbc.co.uk"))
			Expect(rr).Should(HaveHTTPStatus(http.StatusOK))

			var res api.SplitResponse
			Expect(json.Unmarshal(rr.Body.Bytes(), &res)).Should(Succeed())
			Expect(res.RegisteredDomain).Should(Equal("bbc.co.uk"))
		})

		It("should serve the list endpoints", func() {
			Expect(serve(http.MethodGet, api.PathListsStatus)).Should(HaveHTTPStatus(http.StatusOK))
			Expect(serve(http.MethodPost, api.PathListsRefresh)).Should(HaveHTTPStatus(http.StatusOK))
		})

		It("should set CORS headers", func() {
			rr := serve(http.MethodGet, api.PathListsStatus)
			Expect(rr.Header().Get("Access-Control-Allow-Origin")).ShouldNot(BeEmpty())
		})

		It("should not serve metrics if disabled", func() {
			Expect(serve(http.MethodGet, cfg.Prometheus.Path)).Should(HaveHTTPStatus(http.StatusNotFound))
		})

		When("metrics are enabled", func() {
			BeforeEach(func() {
				cfg.Prometheus.Enable = true
				cfg.Prometheus.Path = "/custom-metrics"

				metrics.StartCollection()
			})

			It("should serve metrics on the configured path", func() {
				rr := serve(http.MethodGet, "/custom-metrics")
				Expect(rr).Should(HaveHTTPStatus(http.StatusOK))
				Expect(rr.Body.String()).Should(ContainSubstring("go_goroutines"))
			})
		})
	})

	Describe("Start and stop", func() {
		It("should serve on the configured address until stopped", func() {
			errCh := make(chan error, 1)
			sut.Start(ctx, errCh)

			Expect(sut.Addresses()).Should(HaveLen(1))
			url := "http://" + sut.Addresses()[0] + api.SplitPath("www.example.com")

			Eventually(func(g Gomega) {
				resp, err := http.Get(url) //nolint:noctx
				g.Expect(err).Should(Succeed())
				defer resp.Body.Close()

				body, err := io.ReadAll(resp.Body)
				g.Expect(err).Should(Succeed())
				g.Expect(string(body)).Should(ContainSubstring(`"registeredDomain":"example.com"`))
			}).Should(Succeed())

			sut.Stop()

			Eventually(func() error {
				conn, err := net.Dial("tcp", sut.Addresses()[0])
				if err == nil {
					conn.Close()
				}

				return err
			}).Should(HaveOccurred())
			Consistently(errCh).ShouldNot(Receive())
		})
	})

	Describe("Listener errors", func() {
		It("should fail if the address is already in use", func() {
			blocker, err := net.Listen("tcp", "127.0.0.1:0")
			Expect(err).Should(Succeed())
			DeferCleanup(blocker.Close)

			cfg.Ports.HTTP = config.ListenConfig{blocker.Addr().String()}

			_, err = NewServer(cfg, list)
			Expect(err).Should(MatchError(ContainSubstring("start http listener on")))
		})
	})
})
