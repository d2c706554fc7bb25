package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
)

var (
	assetVersions   = map[string]string{}
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting.
// Paths are relative to the asset root, e.g. "css/style.css".
func InitAssetVersions(assets fs.FS) {
	versions := map[string]string{}
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasSuffix(p, ".go") || strings.HasSuffix(p, ".html") {
			return nil
		}
		if version := computeFileHash(assets, p); version != "" {
			versions[p] = version
		}
		return nil
	})
	if err != nil {
		log.Printf("[WARNING] Failed to walk assets for versioning: %v", err)
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(assets fs.FS, path string) string {
	file, err := assets.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash for an asset, or "" if unknown
func GetAssetVersion(path string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	return assetVersions[path]
}

// WatchAssets re-hashes dir whenever a file under it changes, until ctx is done.
// onChange runs after each re-hash. Used in development when assets are served from disk.
func WatchAssets(ctx context.Context, dir string, assets fs.FS, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		// Editors write files in bursts; coalesce them
		var debounce <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) {
					// New directories are not watched until added
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watcher.Add(event.Name); err != nil {
							log.Printf("[WARNING] Failed to watch %s: %v", event.Name, err)
						}
					}
				}
				if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					debounce = time.After(100 * time.Millisecond)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[WARNING] Asset watcher error: %v", err)
			case <-debounce:
				debounce = nil
				InitAssetVersions(assets)
				if onChange != nil {
					onChange()
				}
			}
		}
	}()

	log.Printf("[INFO] Watching %s for asset changes", dir)
	return nil
}

// StaticCacheControl marks versioned asset requests as immutable and
// everything else under /static as revalidate-on-use
func StaticCacheControl() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.QueryParam("v") != "" {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			} else {
				c.Response().Header().Set("Cache-Control", "public, max-age=0, must-revalidate")
			}
			return next(c)
		}
	}
}
