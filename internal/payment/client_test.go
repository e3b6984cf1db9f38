package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestProcess_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/payments/process" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var in processRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.UserID != 7 || in.Amount != 99.90 {
			t.Errorf("bad request body: %+v err=%v", in, err)
		}
		_ = json.NewEncoder(w).Encode(processResponse{Success: true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})

	ok, err := c.Process(context.Background(), 7, 99.90)
	if err != nil || !ok {
		t.Fatalf("want success, got ok=%v err=%v", ok, err)
	}
}

func TestProcess_Declined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"success_false", func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(processResponse{Success: false})
		}},
		{"status_402", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, nopLogger{})

			ok, err := c.Process(context.Background(), 7, 10)
			if err != nil || ok {
				t.Fatalf("want declined without error, got ok=%v err=%v", ok, err)
			}
		})
	}
}

func TestProcess_ServiceError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nopLogger{})

	if _, err := c.Process(context.Background(), 7, 10); err == nil {
		t.Fatal("5xx must surface as error")
	}
}

func TestProcess_Unreachable(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nopLogger{})

	if _, err := c.Process(context.Background(), 7, 10); err == nil {
		t.Fatal("connection failure must surface as error")
	}
}
