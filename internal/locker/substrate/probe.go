package substrate

import (
	"fmt"
	"log/slog"
	"strings"
)

// Probe walks the ranked substrate list and returns the first one that
// opens. Unknown names fail the probe outright since a typo in config
// should not silently demote persistence to memory.
func Probe(ranked string, dataDir string, log *slog.Logger) (Substrate, error) {
	names := strings.Split(ranked, ",")
	for _, name := range names {
		name = strings.TrimSpace(name)

		var (
			sub Substrate
			err error
		)
		switch name {
		case "file":
			sub, err = NewFile(dataDir)
		case "keystore":
			sub, err = NewKeystore(dataDir)
		case "memory":
			sub, err = NewMemory(), nil
		case "":
			continue
		default:
			return nil, fmt.Errorf("unknown substrate %q", name)
		}

		if err != nil {
			log.Warn("substrate unavailable, trying next",
				slog.String("substrate", name),
				slog.String("error", err.Error()),
			)
			continue
		}

		log.Info("substrate selected", slog.String("substrate", sub.Name()))
		return sub, nil
	}

	return nil, fmt.Errorf("no substrate available in %q", ranked)
}
