package main

import "github.com/aalvaropc/claudeswitch/internal/cli"

func main() {
	cli.Execute()
}
