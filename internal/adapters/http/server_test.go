package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// fakeController implements the adapter-side Controller interface.
type fakeController struct {
	state      domain.PowerState
	setErr     error
	shutErr    error
	reportErr  error
	lastTarget domain.PowerState
	lastReason domain.ShutdownReason
	lastReport domain.ElementID
}

func (f *fakeController) SetState(target domain.PowerState) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.state = target
	f.lastTarget = target
	return nil
}

func (f *fakeController) GetState() domain.PowerState { return f.state }

func (f *fakeController) Shutdown(reason domain.ShutdownReason) error {
	f.lastReason = reason
	return f.shutErr
}

func (f *fakeController) ReportRailTransition(element domain.ElementID, state domain.RailState) error {
	f.lastReport = element
	return f.reportErr
}

func serve(t *testing.T, ctrl Controller, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandler(ctrl)
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetState(t *testing.T) {
	ctrl := &fakeController{state: domain.StateSleep0}
	rr := serve(t, ctrl, "GET", "/v1/state", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "sleep0", resp["state"])
}

func TestPutState(t *testing.T) {
	t.Run("valid target", func(t *testing.T) {
		ctrl := &fakeController{}
		rr := serve(t, ctrl, "PUT", "/v1/state", `{"target":"sleep0"}`)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, domain.StateSleep0, ctrl.lastTarget)
	})

	t.Run("unknown target", func(t *testing.T) {
		ctrl := &fakeController{}
		rr := serve(t, ctrl, "PUT", "/v1/state", `{"target":"hibernate"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rail failure maps to bad gateway", func(t *testing.T) {
		ctrl := &fakeController{setErr: assert.AnError}
		rr := serve(t, ctrl, "PUT", "/v1/state", `{"target":"off"}`)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := &fakeController{}
		rr := serve(t, ctrl, "PUT", "/v1/state", `{`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPostShutdown(t *testing.T) {
	ctrl := &fakeController{}
	rr := serve(t, ctrl, "POST", "/v1/shutdown", `{"reason":"reboot"}`)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, domain.ShutdownReboot, ctrl.lastReason)
}

func TestPostReport(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		ctrl := &fakeController{}
		rr := serve(t, ctrl, "POST", "/v1/report", `{"element":"ppu/sys0","state":"off"}`)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, domain.NewElementID("ppu", "sys0"), ctrl.lastReport)
	})

	t.Run("invalid caller maps to forbidden", func(t *testing.T) {
		ctrl := &fakeController{reportErr: domain.ErrInvalidCaller}
		rr := serve(t, ctrl, "POST", "/v1/report", `{"element":"ppu/gpu","state":"off"}`)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("malformed element", func(t *testing.T) {
		ctrl := &fakeController{}
		rr := serve(t, ctrl, "POST", "/v1/report", `{"element":"nope","state":"off"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHealthz(t *testing.T) {
	rr := serve(t, &fakeController{}, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rr := serve(t, &fakeController{}, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}
