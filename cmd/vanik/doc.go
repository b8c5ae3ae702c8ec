// Package main provides the vanik CLI.
//
// Build and run from the repository root:
//
//	go build -o vanik ./cmd/vanik
//
//	vanik serve            # start the HTTP server
//	vanik migrate          # run pending migrations
//	vanik migrate:rollback # rollback the last batch
//	vanik migrate:status   # show migration state
//	vanik seed             # load the demo dataset
//	vanik route:list       # list the registered routes
package main
