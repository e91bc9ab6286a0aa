package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iWorld-y/text_radar/pkg/model"
)

func TestClient_Analyze(t *testing.T) {
	var got model.AnalysisRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"total_words":2,"unique_words":1,
			"chart_data":[{"word":"go","count":2}],"words_data":[{"word":"go","count":2}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	reply, err := c.Analyze(context.Background(), &model.AnalysisRequest{Text: "go go"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.Text != "go go" {
		t.Errorf("sent text = %q", got.Text)
	}
	if !reply.OK() || reply.Body == nil || !reply.Body.Success {
		t.Fatalf("reply = %+v", reply)
	}
	if reply.Body.TotalWords != 2 || len(reply.Body.ChartData) != 1 || reply.Body.ChartData[0].Word != "go" {
		t.Errorf("body = %+v", reply.Body)
	}
}

func TestClient_AnalyzeErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantBody bool
		wantErr  string
	}{
		{"json error", http.StatusBadRequest, `{"success":false,"error":"text too long"}`, true, "text too long"},
		{"html error page", http.StatusInternalServerError, `<html>boom</html>`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			reply, err := NewClient(srv.URL, time.Second).Analyze(context.Background(), &model.AnalysisRequest{Text: "x"})
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if reply.StatusCode != tt.status || reply.OK() {
				t.Errorf("StatusCode = %d", reply.StatusCode)
			}
			if (reply.Body != nil) != tt.wantBody {
				t.Fatalf("Body = %+v, wantBody %v", reply.Body, tt.wantBody)
			}
			if tt.wantBody && reply.Body.Error != tt.wantErr {
				t.Errorf("Error = %q, want %q", reply.Body.Error, tt.wantErr)
			}
		})
	}
}

func TestClient_AnalyzeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	reply, err := NewClient(addr, time.Second).Analyze(context.Background(), &model.AnalysisRequest{Text: "x"})
	if err == nil {
		t.Fatalf("Analyze() should fail, got reply %+v", reply)
	}
}

func TestClient_AnalyzeURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze/url" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req model.URLAnalysisRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.URL != "https://example.com" {
			t.Errorf("url = %q", req.URL)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL+"/api", time.Second).AnalyzeURL(context.Background(), &model.URLAnalysisRequest{URL: "https://example.com"})
	if err != nil {
		t.Fatalf("AnalyzeURL() error = %v", err)
	}
	if !reply.OK() || reply.Body == nil || !reply.Body.Success {
		t.Errorf("reply = %+v", reply)
	}
}
