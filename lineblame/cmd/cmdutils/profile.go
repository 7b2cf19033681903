package cmdutils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
)

// ProfileKinds lists values accepted by EnableProfiling.
var ProfileKinds = []string{"cpu", "mem", "trace", "block", "mutex"}

// EnableProfiling starts profiling of passed kind. Call onEnd before exit to write the profile.
func EnableProfiling(kind string) (onEnd func(), _ error) {
	var mode func(p *profile.Profile)
	switch kind {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	case "block":
		mode = profile.BlockProfile
	case "mutex":
		mode = profile.MutexProfile
	default:
		return nil, errors.Errorf("unexpected profile: %v, use one of %v", kind, ProfileKinds)
	}

	dir, err := os.MkdirTemp("", "lineblame-profile")
	if err != nil {
		return nil, errors.Wrap(err, "could not create profile dir")
	}
	stop := profile.Start(mode, profile.ProfilePath(dir), profile.Quiet).Stop

	onEnd = func() {
		stop()
		fn := filepath.Join(dir, kind+".pprof")
		fmt.Fprintf(os.Stderr, "to view profile, run `go tool pprof --pdf %s`\n", fn)
	}
	return onEnd, nil
}
