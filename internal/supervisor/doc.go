// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

/*
Package supervisor provides process supervision for Jobly using suture v4.

The tree restarts crashed services with backoff and shuts everything down in
order when its context is canceled:

	RootSupervisor ("jobly")
	├── DataSupervisor ("data-layer")
	│   └── DBHealthService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service failures, restarts and backoff) are logged through
sutureslog into the zerolog-backed slog handler from internal/logging.

# Usage

	tree := supervisor.New(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewDBHealthService(db, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err := tree.Serve(ctx)

# Services

Services live in the services subpackage. Each implements suture.Service and
fmt.Stringer so suture can name it in log output. A service returns ctx.Err()
on cancellation so the supervisor treats the stop as intentional.
*/
package supervisor
