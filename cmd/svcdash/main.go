// svcdash maps service names to URLs and serves a dashboard whose links
// follow whatever host it is opened on.
package main

import (
	"os"

	"github.com/corey/svcdash/cmd/svcdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
