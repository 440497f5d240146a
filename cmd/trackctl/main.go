// Command trackctl drives the time tracker from the terminal. It talks to
// the database directly through the same services as the HTTP server.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"os"

	_ "time/tzdata"
)

func main() {
	c := &cli{}
	if err := execute(c, newCLIRoot(c)); err != nil {
		os.Exit(1)
	}
}
