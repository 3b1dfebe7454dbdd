// Package main is the schoolhub operations CLI.
package main

import (
	"os"
)

func main() {
	if err := NewRootCmd(openMigrator).Execute(); err != nil {
		os.Exit(1)
	}
}
