// Package main is the entry point for the perfchart CLI.
package main

import "perfchart.dev/pkg/perfchart/cmd"

func main() {
	cmd.Execute()
}
