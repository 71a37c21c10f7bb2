// Package version holds build metadata stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/oukeidos/gt/internal/version.Version=0.2.0" ./cmd/gt
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info returns the --version text for program.
func Info(program string) string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuild: %s\ngo: %s", program, Version, Commit, BuildDate, runtime.Version())
}
