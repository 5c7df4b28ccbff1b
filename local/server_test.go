package local

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func freeLocalAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen for free port: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()
	return addr
}

func waitHTTPReady(t *testing.T, baseURL string, timeout time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	client := &http.Client{Timeout: 250 * time.Millisecond}
	var lastErr error
	for {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health-check", nil)
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 500 {
				return
			}
			lastErr = errors.New("unexpected status")
		} else {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			t.Fatalf("server not ready within %s (last err: %v)", timeout, lastErr)
		case <-ticker.C:
		}
	}
}

func TestCloseBeforeServe(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("Close() error = %v before any Serve, want nil", err)
	}
}

func TestServeAndClose(t *testing.T) {
	addr := freeLocalAddr(t)

	done := make(chan error, 1)
	go func() {
		done <- Serve(addr, nil)
	}()

	waitHTTPReady(t, "http://"+addr, 3*time.Second)

	resp, err := http.Get("http://" + addr + "/health-check")
	if err != nil {
		t.Fatalf("GET /health-check error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Errorf("GET /health-check = %d %q, want 200 OK", resp.StatusCode, body)
	}

	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v, want nil", err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v after Close, want nil", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve() did not return after Close")
	}
}
