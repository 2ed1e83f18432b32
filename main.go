// main.go
//
// Entry point for the cosmic-orb binary.
//   - `serve`: browser client + JSON API (internal/httpserver).
//   - `play`:  terminal client (internal/tui).
// Subcommands are registered in internal/cli.

package main

import "github.com/robalobadob/cosmic-orb/internal/cli"

func main() {
	cli.Execute()
}
