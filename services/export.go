package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const manifestKey = "manifest.json"

var ErrStorageNotConfigured = errors.New("export storage is not configured")

// PageRenderer writes the complete HTML document of the site
type PageRenderer func(ctx context.Context, w io.Writer) error

// ExportOptions describes one static build of the site
type ExportOptions struct {
	BaseURL string
	Render  PageRenderer
	Assets  fs.FS // served under /static/
	Clock   Clock
}

// ExportedFile is one object written by an export
type ExportedFile struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	URL         string `json:"url,omitempty"`
}

// ExportManifest is written as manifest.json next to the exported page
type ExportManifest struct {
	BuildID     string         `json:"buildId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Files       []ExportedFile `json:"files"`
	// Removed lists files of the previous build that this one no longer contains
	Removed []string `json:"removed,omitempty"`
}

// ExportSite renders the page once and writes it with every static asset,
// the sitemap, robots.txt and a manifest through the storage provider.
// Files listed in the previous manifest but absent from this build are deleted.
func ExportSite(ctx context.Context, storage StorageProvider, opts ExportOptions) (*ExportManifest, error) {
	if opts.Render == nil {
		return nil, fmt.Errorf("export requires a page renderer")
	}
	if !storage.IsConfigured() {
		return nil, ErrStorageNotConfigured
	}
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	manifest := &ExportManifest{
		BuildID:     uuid.New().String(),
		GeneratedAt: clock.Now().UTC(),
	}

	files := map[string][]byte{}

	var page bytes.Buffer
	if err := opts.Render(ctx, &page); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	files["index.html"] = page.Bytes()

	sitemap, err := BuildSitemap(opts.BaseURL, manifest.GeneratedAt)
	if err != nil {
		return nil, err
	}
	files["sitemap.xml"] = sitemap
	files["robots.txt"] = BuildRobots(opts.BaseURL)

	if opts.Assets != nil {
		err := fs.WalkDir(opts.Assets, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || p == "index.html" || path.Ext(p) == ".go" {
				return nil
			}
			data, err := fs.ReadFile(opts.Assets, p)
			if err != nil {
				return err
			}
			files[path.Join("static", p)] = data
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to collect assets: %w", err)
		}
	}

	keys := lo.Keys(files)
	sort.Strings(keys)

	for _, key := range keys {
		data := files[key]
		result, err := storage.UploadReader(ctx, bytes.NewReader(data), key, ContentTypeFor(key), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", key, err)
		}
		manifest.Files = append(manifest.Files, ExportedFile{
			Key:         result.Key,
			ContentType: result.MimeType,
			Size:        result.FileSize,
			URL:         result.URL,
		})
	}

	previous := previousKeys(ctx, storage)
	for _, key := range lo.Without(previous, keys...) {
		if err := storage.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("failed to remove stale %s: %w", key, err)
		}
		manifest.Removed = append(manifest.Removed, key)
	}

	body, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if _, err := storage.UploadReader(ctx, bytes.NewReader(body), manifestKey, ContentTypeFor(manifestKey), int64(len(body))); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	log.Printf("[INFO] Export %s complete: %d files, %d removed", manifest.BuildID, len(manifest.Files), len(manifest.Removed))
	return manifest, nil
}

// previousKeys returns the file keys of the last export, or nil when there is none
func previousKeys(ctx context.Context, storage StorageProvider) []string {
	reader, _, err := storage.Get(ctx, manifestKey)
	if err != nil {
		return nil
	}
	defer reader.Close()

	var previous ExportManifest
	if err := json.NewDecoder(reader).Decode(&previous); err != nil {
		log.Printf("[WARNING] Ignoring unreadable previous manifest: %v", err)
		return nil
	}
	return lo.Map(previous.Files, func(f ExportedFile, _ int) string { return f.Key })
}
