package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"loan-portal-api/config"
	"loan-portal-api/services"

	"github.com/gin-gonic/gin"
)

func TestMonitorStatusReportsUpstreamReachability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound) // any answer counts as reachable
	}))
	defer upstream.Close()
	config.Gateway = services.NewLoanGateway(upstream.URL, upstream.Client())

	router := gin.New()
	RegisterMonitorPage(router)

	req := httptest.NewRequest(http.MethodGet, "/monitor/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var reply struct {
		Status   string `json:"status"`
		Uptime   string `json:"uptime"`
		Upstream struct {
			Origin    string `json:"origin"`
			Reachable bool   `json:"reachable"`
		} `json:"upstream"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if reply.Status != "ok" || reply.Uptime == "" {
		t.Fatalf("reply = %+v", reply)
	}
	if reply.Upstream.Origin != upstream.URL || !reply.Upstream.Reachable {
		t.Fatalf("upstream = %+v", reply.Upstream)
	}
}

func TestMonitorStatusWithUnreachableUpstream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	config.Gateway = services.NewLoanGateway(dead.URL, nil)

	router := gin.New()
	RegisterMonitorPage(router)

	req := httptest.NewRequest(http.MethodGet, "/monitor/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var reply struct {
		Upstream struct {
			Reachable bool   `json:"reachable"`
			Error     string `json:"error"`
		} `json:"upstream"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("failed to decode reply: %v", err)
	}
	if reply.Upstream.Reachable || reply.Upstream.Error == "" {
		t.Fatalf("upstream = %+v", reply.Upstream)
	}
}
