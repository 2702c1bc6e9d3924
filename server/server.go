// Package server runs the HTTP endpoints of the suffix list service.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/pslsplit/api"
	"github.com/0xERR0R/pslsplit/config"
	"github.com/0xERR0R/pslsplit/log"
	"github.com/0xERR0R/pslsplit/metrics"
	"github.com/0xERR0R/pslsplit/psl"
	"github.com/0xERR0R/pslsplit/util"
)

// Server controls the HTTP endpoints
type Server struct {
	cfg  *config.Config
	list *psl.List

	httpListeners []net.Listener
	httpServer    *httpServer
	router        *chi.Mux

	cancel context.CancelFunc
}

func logger() *logrus.Entry {
	return log.PrefixedLog("server")
}

// NewServer creates new server instance with passed config, serving `list`.
// The listeners are opened immediately.
func NewServer(cfg *config.Config, list *psl.List) (*Server, error) {
	httpListeners, err := newListeners("http", cfg.Ports.HTTP)
	if err != nil {
		return nil, err
	}

	router := createRouter(cfg)

	api.RegisterEndpoint(router, list)

	s := &Server{
		cfg:           cfg,
		list:          list,
		httpListeners: httpListeners,
		httpServer:    newHTTPServer("http", router),
		router:        router,
	}

	s.printConfiguration()

	return s, nil
}

func newListeners(proto string, addresses config.ListenConfig) ([]net.Listener, error) {
	listeners := make([]net.Listener, 0, len(addresses))

	for _, address := range addresses.Addresses() {
		listener, err := net.Listen("tcp", address)
		if err != nil {
			for _, l := range listeners {
				_ = l.Close()
			}

			return nil, fmt.Errorf("start %s listener on %s failed: %w", proto, address, err)
		}

		listeners = append(listeners, listener)
	}

	return listeners, nil
}

// Handler returns the HTTP handler of all endpoints.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addresses returns the addresses the server listens on.
func (s *Server) Addresses() []string {
	return util.ConvertEach(s.httpListeners, func(l net.Listener) string {
		return l.Addr().String()
	})
}

// Start starts serving. Errors of the listeners are sent to `errCh`.
func (s *Server) Start(ctx context.Context, errCh chan<- error) {
	logger().Info("Starting server")

	ctx, s.cancel = context.WithCancel(ctx)

	for _, listener := range s.httpListeners {
		listener := listener

		go func() {
			logger().Infof("%s server is up and running on addr/port %s", s.httpServer, listener.Addr())

			if err := s.httpServer.Serve(ctx, listener); err != nil {
				errCh <- fmt.Errorf("start %s listener failed: %w", s.httpServer, err)
			}
		}()
	}

	registerPrintConfigurationTrigger(ctx, s)
}

// Stop stops the server
func (s *Server) Stop() {
	logger().Info("Stopping server")

	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Server) printConfiguration() {
	logger().Info("current configuration:")

	log.WithIndent(logger(), "  ", s.cfg.LogConfig)

	logger().Infof("- HTTP listening on addrs/ports: %v", s.cfg.Ports.HTTP)

	snapshot := s.list.Snapshot()
	logger().Infof("- suffix list: state = %s, rules = %d, cached splits = %d",
		s.list.State(), snapshot.RuleCount, snapshot.CacheSize())

	logger().Info("runtime information:")

	var m runtime.MemStats

	runtime.ReadMemStats(&m)

	logger().Infof("MEM Alloc =        %10v MB", toMB(m.Alloc))
	logger().Infof("MEM HeapAlloc =    %10v MB", toMB(m.HeapAlloc))
	logger().Infof("MEM Sys =          %10v MB", toMB(m.Sys))
	logger().Infof("MEM NumGC =        %10v", m.NumGC)
	logger().Infof("RUN NumCPU =       %10d", runtime.NumCPU())
	logger().Infof("RUN NumGoroutine = %10d", runtime.NumGoroutine())
}

func toMB(b uint64) uint64 {
	const bytesInKB = 1024

	return b / bytesInKB / bytesInKB
}

func createRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	configureCorsHandler(router)

	router.Use(requestLogger)

	configureDebugHandler(router)

	configureMetricsHandler(cfg, router)

	return router
}

func configureDebugHandler(router *chi.Mux) {
	router.Mount("/debug", middleware.Profiler())
}

func configureMetricsHandler(cfg *config.Config, router *chi.Mux) {
	if cfg.Prometheus.IsEnabled() {
		router.Handle(cfg.Prometheus.Path, metrics.Handler())
	}
}

func configureCorsHandler(router *chi.Mux) {
	crs := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	router.Use(crs.Handler)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(rw, req.ProtoMajor)

		next.ServeHTTP(ww, req)

		logger().WithFields(logrus.Fields{
			"client_ip":   util.HTTPClientIP(req),
			"method":      req.Method,
			"path":        log.EscapeInput(req.URL.Path),
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("request processed")
	})
}
