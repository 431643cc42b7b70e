package node

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Klingon-tech/multisend/config"
)

// logFileName is the log written under the logs dir when log.file is unset.
const logFileName = "multisend.log"

// expandHome resolves "~" and "~/..." against the current user's home
// directory. "~name" paths are returned unchanged, as is any path when the
// home directory cannot be determined.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[1:])
}

// resolveLogFile returns the configured log file, or the default file in
// the logs dir, creating that dir when needed.
func resolveLogFile(cfg *config.Config) (string, error) {
	if cfg.Log.File != "" {
		return expandHome(cfg.Log.File), nil
	}
	dir := expandHome(cfg.LogsDir())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating logs dir: %w", err)
	}
	return filepath.Join(dir, logFileName), nil
}
