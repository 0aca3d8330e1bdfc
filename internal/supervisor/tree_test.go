// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// flakyService fails its first few starts, then runs until canceled.
type flakyService struct {
	name     string
	failures int32
	starts   atomic.Int32
}

func (s *flakyService) Serve(ctx context.Context) error {
	if s.starts.Add(1) <= s.failures {
		return errors.New("connection refused")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *flakyService) String() string { return s.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_Defaults(t *testing.T) {
	tree := New(quietLogger(), TreeConfig{FailureBackoff: time.Second})

	want := DefaultTreeConfig()
	want.FailureBackoff = time.Second
	if tree.config != want {
		t.Errorf("Expected config %+v, got %+v", want, tree.config)
	}
}

func TestTree_DataFailureIsolatedFromAPI(t *testing.T) {
	tree := New(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	health := &flakyService{name: "db-health", failures: 3}
	server := &flakyService{name: "http-server"}
	tree.AddDataService(health)
	tree.AddAPIService(server)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for health.starts.Load() < 4 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-errCh

	if n := health.starts.Load(); n < 4 {
		t.Errorf("Expected health checker restarted past its failures, got %d starts", n)
	}
	if n := server.starts.Load(); n != 1 {
		t.Errorf("Expected HTTP server started once, got %d", n)
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport failed: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("Expected all services stopped, got %v", report)
	}
}
