// Package main is the entry point for the covmap CLI.
package main

import "covmap.dev/pkg/covmap/cmd"

func main() {
	cmd.Execute()
}
