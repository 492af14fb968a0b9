// cmd/balbis/main.go
package main

import (
	cmd "github.com/mwiater/balbis/internal/cli"
)

// Build-time variables, overridden via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the balbis CLI application by delegating to the
// cobra root command defined in the balbis package. It does not
// take any arguments and does not return a value.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
