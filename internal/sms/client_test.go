package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		Key:       "key-1",
		Secret:    "secret-1",
		ClientID:  "client-1",
		ServiceID: "service-1",
		Timeout:   2 * time.Second,
	}
}

func TestClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("posts form fields and succeeds on 2xx", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			if err := r.ParseForm(); err != nil {
				t.Errorf("parse form: %v", err)
			}
			got = map[string]string{}
			for key := range r.PostForm {
				got[key] = r.PostForm.Get(key)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), zap.NewNop())
		err := client.Send(context.Background(), Notification{
			FullName: "Jane Wanjiku",
			Phone:    "+254712345678",
			OrderID:  42,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := map[string]string{
			"apiClientID": "client-1",
			"secret":      "secret-1",
			"key":         "key-1",
			"MSISDN":      "+254712345678",
			"serviceID":   "service-1",
			"enqueue":     "yes",
		}
		for key, value := range want {
			if got[key] != value {
				t.Fatalf("expected form field %s=%q, got %q", key, value, got[key])
			}
		}
		msg := got["txtMessage"]
		if !strings.Contains(msg, "Jane Wanjiku") || !strings.Contains(msg, "42") {
			t.Fatalf("expected message to embed name and order id, got %q", msg)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := NewClient(testConfig(srv.URL), zap.NewNop())
		err := client.Send(context.Background(), Notification{FullName: "Jane", Phone: "+254712345678", OrderID: 1})
		if err == nil {
			t.Fatalf("expected error for non-2xx response")
		}
	})

	t.Run("unreachable gateway is an error", func(t *testing.T) {
		client := NewClient(testConfig("http://127.0.0.1:1"), zap.NewNop())
		err := client.Send(context.Background(), Notification{FullName: "Jane", Phone: "+254712345678", OrderID: 1})
		if err == nil {
			t.Fatalf("expected transport error")
		}
	})

	t.Run("slow gateway is bounded by timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		cfg := testConfig(srv.URL)
		cfg.Timeout = 50 * time.Millisecond
		client := NewClient(cfg, zap.NewNop())

		start := time.Now()
		err := client.Send(context.Background(), Notification{FullName: "Jane", Phone: "+254712345678", OrderID: 1})
		if err == nil {
			t.Fatalf("expected timeout error")
		}
		if elapsed := time.Since(start); elapsed > 2*time.Second {
			t.Fatalf("timeout not enforced, took %s", elapsed)
		}
	})
}
