// Package pkg provides the core libraries for Wayreach reach estimation.
//
// # Overview
//
// Wayreach bounds the directional connectivity of road-network edges so that
// route endpoint candidates on isolated micro-networks (private driveway
// loops, gated lots) can be rejected before route construction. The pkg
// directory is organized into:
//
//  1. [graph] - Network model: directed edges, adjacency, JSON/DOT IO
//  2. [costing] - Travel-mode costing models with TOML profiles
//  3. [expansion] - Generic label-correcting expansion engine
//  4. [reach] - Directional reach estimation (the core)
//  5. [batch] - Concurrent scoring of candidate edges
//  6. [cache] - Pluggable byte cache (file, Redis, MongoDB) for the API
//  7. [observability], [errors], [buildinfo] - Cross-cutting support
//
// # Architecture
//
// The typical data flow through a reach query:
//
//	Network JSON
//	     ↓
//	[graph] package (directed edges + adjacency indexes)
//	     ↓
//	[reach] package (seed one expansion per direction)
//	     ↓
//	[expansion] package (bucketed priority frontier, decision hooks)
//	     ↓
//	Result{Outbound, Inbound}, saturated at the threshold
//
// # Quick Start
//
// Compute the reach of one edge:
//
//	import (
//	    "github.com/wayreach/wayreach/pkg/costing"
//	    "github.com/wayreach/wayreach/pkg/graph"
//	    "github.com/wayreach/wayreach/pkg/reach"
//	)
//
//	n, _ := graph.ReadNetworkFile("network.json")
//	res, err := reach.Compute(graph.EdgeID(42), 50, n, costing.Auto(), reach.Both)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("outbound %d inbound %d\n", res.Outbound, res.Inbound)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/reach/...    # Specific package
//
// [graph]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/graph
// [costing]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/costing
// [expansion]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/expansion
// [reach]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/reach
// [batch]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/batch
// [cache]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/cache
// [observability]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/observability
// [errors]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/wayreach/wayreach/pkg/buildinfo
package pkg
