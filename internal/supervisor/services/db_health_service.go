// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/tomtom215/jobly/internal/logging"
	"github.com/tomtom215/jobly/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBHealthService pings the database on an interval, publishes the result as
// the jobly_db_up gauge and logs transitions between up and down.
type DBHealthService struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	healthy  atomic.Bool
	checked  atomic.Bool
}

// NewDBHealthService creates the checker. A non-positive interval defaults to
// 30s; each ping is bounded by half the interval.
func NewDBHealthService(db Pinger, interval time.Duration) *DBHealthService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DBHealthService{
		db:       db,
		interval: interval,
		timeout:  interval / 2,
	}
}

// Serve implements suture.Service. It checks once immediately, then on
// every tick until ctx is canceled.
func (s *DBHealthService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *DBHealthService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.Ping(pingCtx)
	up := err == nil
	if ctx.Err() != nil {
		return
	}

	metrics.SetDBUp(up)
	was := s.healthy.Swap(up)
	first := !s.checked.Swap(true)

	switch {
	case !up && (first || was):
		logging.Warn().Err(err).Msg("Database ping failed")
	case up && !first && !was:
		logging.Info().Msg("Database ping recovered")
	}
}

// Healthy reports the result of the most recent ping.
func (s *DBHealthService) Healthy() bool {
	return s.healthy.Load()
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *DBHealthService) String() string {
	return "db-health"
}
