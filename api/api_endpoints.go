package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hako/durafmt"
	"github.com/sirupsen/logrus"

	"github.com/0xERR0R/pslsplit/log"
	"github.com/0xERR0R/pslsplit/psl"
)

const (
	contentTypeHeader = "content-type"
	jsonContentType   = "application/json"
)

// Splitter splits domains
type Splitter interface {
	SplitResult(domain string) psl.SplitResult
}

// ListRefresher interface to control the list refresh
type ListRefresher interface {
	Refresh(ctx context.Context) error
}

// ListStatusProvider reports the state of the suffix list
type ListStatusProvider interface {
	State() psl.State
	Snapshot() *psl.Snapshot
}

// SplitEndpoint endpoint for domain splits
type SplitEndpoint struct {
	splitter Splitter
}

// ListEndpoint endpoint for the list refresh and status
type ListEndpoint struct {
	refresher ListRefresher
	status    ListStatusProvider
}

func logger() *logrus.Entry {
	return log.PrefixedLog("api")
}

// RegisterEndpoint registers an implementation as HTTP endpoint
func RegisterEndpoint(router chi.Router, t interface{}) {
	if a, ok := t.(Splitter); ok {
		registerSplitEndpoints(router, a)
	}

	if a, ok := t.(ListStatusProvider); ok {
		l := &ListEndpoint{status: a}

		router.Get(PathListsStatus, l.apiListStatus)

		if r, ok := t.(ListRefresher); ok {
			l.refresher = r

			router.Post(PathListsRefresh, l.apiListRefresh)
		}
	}
}

func registerSplitEndpoints(router chi.Router, splitter Splitter) {
	s := &SplitEndpoint{splitter}

	router.Get(PathSplit, s.apiSplit)
}

// apiSplit is the http endpoint to split a domain
// Query parameter "unicode=true" returns IDN labels in Unicode instead of ACE form.
func (s *SplitEndpoint) apiSplit(rw http.ResponseWriter, req *http.Request) {
	domain, err := url.PathUnescape(chi.URLParam(req, "domain"))
	if err != nil {
		writeError(rw, http.StatusBadRequest, "invalid domain encoding")

		return
	}

	unicode := false

	if v := req.URL.Query().Get("unicode"); v != "" {
		if unicode, err = strconv.ParseBool(v); err != nil {
			writeError(rw, http.StatusBadRequest, "invalid unicode parameter")

			return
		}
	}

	res := s.splitter.SplitResult(domain)
	if unicode {
		res = res.ToUnicode()
	}

	logger().WithField("domain", log.Domain(domain)).Debugf("split: %s", log.Domain(res.String()))

	writeJSON(rw, http.StatusOK, SplitResponse{
		Subdomain:        res.Subdomain,
		Domain:           res.Domain,
		Suffix:           res.Suffix,
		RegisteredDomain: res.RegisteredDomain(),
	})
}

// apiListRefresh is the http endpoint to trigger the refresh of the suffix list
func (l *ListEndpoint) apiListRefresh(rw http.ResponseWriter, req *http.Request) {
	logger().Info("refreshing suffix list...")

	if err := l.refresher.Refresh(req.Context()); err != nil {
		writeError(rw, http.StatusInternalServerError, err.Error())

		return
	}

	writeJSON(rw, http.StatusOK, l.listStatus())
}

// apiListStatus is the http endpoint to get the state of the suffix list
func (l *ListEndpoint) apiListStatus(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, l.listStatus())
}

func (l *ListEndpoint) listStatus() ListStatus {
	snapshot := l.status.Snapshot()

	res := ListStatus{
		State:     l.status.State().String(),
		RuleCount: snapshot.RuleCount,
		CacheSize: snapshot.CacheSize(),
	}

	if !snapshot.IsEmpty() {
		built := snapshot.Built

		res.ID = snapshot.ID.String()
		res.Built = &built
		res.Age = durafmt.Parse(time.Since(built)).LimitFirstN(2).String()
	}

	return res
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	writeJSON(rw, status, ErrorResponse{Error: msg})
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set(contentTypeHeader, jsonContentType)
	rw.WriteHeader(status)

	if err := json.NewEncoder(rw).Encode(v); err != nil {
		logger().Error("can't write response: ", log.EscapeInput(err.Error()))
	}
}
