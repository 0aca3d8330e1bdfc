// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package services

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

// boundServer serves on a listener opened by the test, so the address is
// known before Serve starts.
type boundServer struct {
	*http.Server
	ln net.Listener
}

func (s *boundServer) ListenAndServe() error {
	return s.Serve(s.ln)
}

func newBoundServer(t *testing.T, h http.Handler) (*boundServer, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	return &boundServer{Server: &http.Server{Handler: h, ReadHeaderTimeout: time.Second}, ln: ln}, "http://" + ln.Addr().String()
}

// failingServer fails ListenAndServe and Shutdown with fixed errors.
type failingServer struct {
	listenErr   error
	shutdownErr error
	stop        chan struct{}
}

func (s *failingServer) ListenAndServe() error {
	if s.listenErr != nil {
		return s.listenErr
	}
	<-s.stop
	return http.ErrServerClosed
}

func (s *failingServer) Shutdown(context.Context) error {
	close(s.stop)
	return s.shutdownErr
}

func TestNewHTTPServerService_DefaultTimeout(t *testing.T) {
	svc := NewHTTPServerService(&failingServer{}, 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("Expected default timeout 10s, got %v", svc.shutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("Expected name http-server, got %s", svc.String())
	}
}

func TestHTTPServerService_ServesUntilCanceled(t *testing.T) {
	server, base := newBoundServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status":"healthy"}`)
	}))
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	resp, err := http.Get(base + "/health")
	if err != nil {
		cancel()
		t.Fatalf("GET /health failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != `{"status":"healthy"}` {
		t.Errorf("Expected 200 healthy, got %d %s", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled after graceful shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if _, err := http.Get(base + "/health"); err == nil {
		t.Error("Expected server to refuse connections after shutdown")
	}
}

func TestHTTPServerService_FinishesInFlightRequest(t *testing.T) {
	started := make(chan struct{})
	server, base := newBoundServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusNoContent)
	}))
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get(base + "/jobs")
		if err != nil {
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-started
	cancel()

	if code := <-status; code != http.StatusNoContent {
		t.Errorf("Expected in-flight request to complete with 204, got %d", code)
	}
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestHTTPServerService_ListenError(t *testing.T) {
	listenErr := errors.New("address already in use")
	svc := NewHTTPServerService(&failingServer{listenErr: listenErr, stop: make(chan struct{})}, time.Second)

	err := svc.Serve(context.Background())
	if !errors.Is(err, listenErr) {
		t.Errorf("Expected listen error to be wrapped, got %v", err)
	}
}

func TestHTTPServerService_ShutdownError(t *testing.T) {
	shutdownErr := errors.New("shutdown deadline")
	svc := NewHTTPServerService(&failingServer{shutdownErr: shutdownErr, stop: make(chan struct{})}, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx)
	if !errors.Is(err, shutdownErr) {
		t.Errorf("Expected shutdown error to be wrapped, got %v", err)
	}
}
