package health

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockUnirefAPI struct {
	err error
}

func (m mockUnirefAPI) ConnectivityCheck() error {
	return m.err
}

func TestHappyHealthCheck(t *testing.T) {
	hc := NewHealthCheck("test-system-code", "test-app-name", "test-app-desc", mockUnirefAPI{nil})

	req := httptest.NewRequest("GET", "http://example.com/__health", nil)
	w := httptest.NewRecorder()

	hc.Health()(w, req)

	assert.Equal(t, 200, w.Code, "It should return HTTP 200 OK")
	assert.Contains(t, w.Body.String(), `"name":"UniRef REST API Reachable","ok":true`, "Healthcheck should be happy")
}

func TestHealthCheckWithUnreachableAPI(t *testing.T) {
	hc := HealthCheck{"test-system-code", "test-app-name", "test-app-desc", mockUnirefAPI{errors.New("connection refused")}}

	req := httptest.NewRequest("GET", "http://example.com/__health", nil)
	w := httptest.NewRecorder()

	hc.Health()(w, req)

	assert.Equal(t, 200, w.Code, "It should return HTTP 200 OK")
	assert.Contains(t, w.Body.String(), `"name":"UniRef REST API Reachable","ok":false`, "UniRef API healthcheck should be unhappy")
}

func TestGTGHappyFlow(t *testing.T) {
	hc := HealthCheck{"test-system-code", "test-app-name", "test-app-desc", mockUnirefAPI{nil}}

	status := hc.GTG()
	assert.True(t, status.GoodToGo)
	assert.Empty(t, status.Message)
}

func TestGTGUnreachableAPI(t *testing.T) {
	hc := HealthCheck{"test-system-code", "test-app-name", "test-app-desc", mockUnirefAPI{errors.New("connection refused")}}

	status := hc.GTG()
	assert.False(t, status.GoodToGo)
	assert.Equal(t, "connection refused", status.Message)
}
