package bootstrap

import (
	"fmt"
	"log"
	"os"
)

// Scratch locations the service writes at runtime. Lambda only allows
// writes under /tmp.
const (
	UploadDir     = "/tmp/uploads"
	ChunkCacheDir = "/tmp/cached_chunks"
)

// Run creates every configured scratch directory. It is an explicit
// startup step, not a package-load side effect, so callers decide when
// filesystem work happens and see the error if it fails.
func Run(opts ...Option) error {
	options := NewOptions(opts...)

	for _, dir := range options.Dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("bootstrap: create %s: %w", dir, err)
		}
		if options.DebugMode {
			log.Printf("[Bootstrap] dir ready: %s", dir)
		}
	}

	return nil
}
