package profiler

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
)

// StartCPU writes a CPU profile into dir until the returned stop func is
// called. An empty dir disables profiling.
func StartCPU(dir string) (stop func(), err error) {
	if dir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile dir %q: %w", dir, err)
	}
	p := profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	return p.Stop, nil
}
