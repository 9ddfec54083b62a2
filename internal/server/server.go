// Package server exposes the dashboard-facing HTTP API over the summary service.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/maxbolgarin/erro"
	"github.com/maxbolgarin/gitpulse/internal/model"
	"github.com/maxbolgarin/gitpulse/internal/service"
	"github.com/maxbolgarin/gitpulse/internal/summary"
	"github.com/maxbolgarin/logze/v2"
	"github.com/maxbolgarin/servex/v2"
)

const (
	summaryEndpoint  = "/api/v1/summary"
	validateEndpoint = "/api/v1/summary/validate"

	// callerHeader identifies the dashboard client for single-flight
	// supersede semantics; the remote address is the fallback.
	callerHeader = "X-Client-ID"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// UserResolver reports the login of the authenticated user, used to resolve
// the "me" placeholder before validation.
type UserResolver interface {
	CurrentUserLogin(ctx context.Context) (string, error)
}

// Server handles summary requests from the dashboard.
type Server struct {
	service  *service.Service
	resolver UserResolver
	config   Config
	log      logze.Logger
	server   *servex.Server

	userMu      sync.Mutex
	currentUser string
}

// New creates a new API server. resolver may be nil when the provider
// cannot report the authenticated user.
func New(cfg Config, svc *service.Service, resolver UserResolver) (*Server, error) {
	if err := cfg.PrepareAndValidate(); err != nil {
		return nil, erro.Wrap(err, "validate config")
	}

	log := logze.With("module", "server")

	server, err := servex.NewServer(
		servex.WithReadTimeout(cfg.Timeout),
		servex.WithIdleTimeout(cfg.Timeout*2),
		servex.WithLogger(log),
		servex.WithHealthEndpoint(),
		servex.WithDefaultMetrics(),
		servex.WithCertificate(cfg.Certificate),
	)
	if err != nil {
		return nil, erro.Wrap(err, "failed to create server")
	}

	h := &Server{
		service:  svc,
		resolver: resolver,
		config:   cfg,
		log:      log,
		server:   server,
	}

	server.HandleFunc(summaryEndpoint, h.handleSummary)
	server.HandleFunc(validateEndpoint, h.handleValidate)

	return h, nil
}

// Start starts the API server.
func (h *Server) Start(ctx context.Context) error {
	if h.config.EnableHTTPS {
		return h.server.StartHTTPS(h.config.Address)
	}
	return h.server.StartHTTP(h.config.Address)
}

// Stop stops the API server.
func (h *Server) Stop(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// handleSummary runs the full summary workflow and returns the report.
func (h *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	raw, ok := h.readRequest(ctx, r)
	if !ok {
		return
	}

	report, err := h.service.GenerateSummary(r.Context(), callerKey(r), raw)
	if err != nil {
		if errors.Is(err, service.ErrSuperseded) {
			// The stale result is suppressed; only the newest request
			// for this caller gets a body.
			ctx.Response(http.StatusConflict)
			return
		}
		ctx.BadRequest(err, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// handleValidate is the pre-flight check: validation only, no fetch.
func (h *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := servex.NewContext(w, r)

	raw, ok := h.readRequest(ctx, r)
	if !ok {
		return
	}

	if errs := h.service.Validate(raw); errs != nil {
		h.respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func (h *Server) readRequest(ctx *servex.Context, r *http.Request) (model.RawSummaryRequest, bool) {
	var raw model.RawSummaryRequest

	if r.Method != http.MethodPost {
		ctx.Response(http.StatusMethodNotAllowed)
		return raw, false
	}

	body, err := ctx.Read()
	if err != nil {
		ctx.BadRequest(err, "failed to read request body")
		return raw, false
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		ctx.BadRequest(err, "failed to parse request body")
		return raw, false
	}

	return h.resolveCurrentUser(r.Context(), raw), true
}

// resolveCurrentUser replaces the "me" placeholder before validation. The
// login is resolved once and memoized; on resolver failure the placeholder
// is left as-is and validation proceeds without it.
func (h *Server) resolveCurrentUser(ctx context.Context, raw model.RawSummaryRequest) model.RawSummaryRequest {
	if h.resolver == nil || !hasPlaceholder(raw.Users) {
		return raw
	}

	h.userMu.Lock()
	defer h.userMu.Unlock()

	if h.currentUser == "" {
		login, err := h.resolver.CurrentUserLogin(ctx)
		if err != nil {
			h.log.Error("failed to resolve current user", "error", err)
			return raw
		}
		h.currentUser = login
	}

	return summary.ResolveCurrentUser(raw, h.currentUser)
}

func (h *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("failed to marshal response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Error("failed to write response", "error", err)
	}
}

func callerKey(r *http.Request) string {
	if key := r.Header.Get(callerHeader); key != "" {
		return key
	}
	return r.RemoteAddr
}

func hasPlaceholder(users []string) bool {
	for _, user := range users {
		if user == model.CurrentUserPlaceholder {
			return true
		}
	}
	return false
}
