// Package http exposes the controller's driver surface over a small JSON API
// for the simulator daemon.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rahel-ahmed/SCP-firmware/internal/observability"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// Controller is the slice of the system power controller the HTTP surface
// needs.
type Controller interface {
	SetState(target domain.PowerState) error
	GetState() domain.PowerState
	Shutdown(reason domain.ShutdownReason) error
	ReportRailTransition(element domain.ElementID, state domain.RailState) error
}

// Server dispatches HTTP requests to a Controller.
type Server struct {
	Controller Controller
}

// NewHandler builds the router for the control surface.
func NewHandler(ctrl Controller) http.Handler {
	observability.RegisterMetrics()
	s := &Server{Controller: ctrl}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state", s.getState)
		r.Put("/state", s.setState)
		r.Post("/shutdown", s.shutdown)
		r.Post("/report", s.report)
	})
	return r
}

type stateResponse struct {
	State string `json:"state"`
}

type setStateRequest struct {
	Target string `json:"target"`
}

type shutdownRequest struct {
	Reason string `json:"reason"`
}

type reportRequest struct {
	Element string `json:"element"`
	State   string `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{State: s.Controller.GetState().String()})
}

func (s *Server) setState(w http.ResponseWriter, r *http.Request) {
	var req setStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	target, err := domain.ParsePowerState(req.Target)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.Controller.SetState(target); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) shutdown(w http.ResponseWriter, r *http.Request) {
	var req shutdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	reason, err := domain.ParseShutdownReason(req.Reason)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.Controller.Shutdown(reason); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	element, err := domain.ParseElementID(req.Element)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	state, err := domain.ParseRailState(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.Controller.ReportRailTransition(element, state); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotSupported):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAccessDenied), errors.Is(err, domain.ErrInvalidCaller):
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
