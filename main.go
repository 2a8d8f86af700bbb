// main package for fuze command-line tool
// Package main is the entry point for the Fuze CLI.
package main

import "fuze.dev/pkg/fuze/cmd"

func main() {
	cmd.Execute()
}
