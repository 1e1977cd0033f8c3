// Reelmix - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package supervisor runs the long-lived parts of the server under a suture v4
tree.

	RootSupervisor ("reelmix")
	├── DataSupervisor ("data-layer")
	│   └── ArtifactWatcherService (if ARTIFACTS_WATCH)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing artifact watcher restarts on its own without touching the HTTP
listener, and the engine keeps serving the last good snapshot while it is
down.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog. Pass logging.NewSlogLogger() so they land in the same zerolog
stream as everything else:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))
	return tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
