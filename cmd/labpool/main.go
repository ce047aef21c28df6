package main

import "github.com/dmitrijs2005/labpool/internal/cli"

// version is set at build time via -ldflags "-X main.version=...".
var version string

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
