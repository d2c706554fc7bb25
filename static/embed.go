package static

import (
	"embed"
	"io/fs"
	"os"
)

// HostDocumentName is the host page the rendered site is mounted into
const HostDocumentName = "index.html"

//go:embed index.html favicon.svg css js
var files embed.FS

// Assets returns the embedded asset tree, or dir on disk when dir is set
func Assets(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return files
}

// HostDocument reads the host page from the asset tree
func HostDocument(assets fs.FS) ([]byte, error) {
	return fs.ReadFile(assets, HostDocumentName)
}
