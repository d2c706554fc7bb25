package layouts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"hopebridge_site/models"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	ErrMountPointMissing    = errors.New("mount point not found in host document")
	ErrMountPointDuplicated = errors.New("mount point id is not unique in host document")
	ErrMountPointNotEmpty   = errors.New("mount point must be empty")
)

const mountMarker = "hopebridge:mount"

// Document is a host page split around its mount point.
// It is built once at startup by Bootstrap; every render writes the host
// markup before the mount point, the component, then the rest of the host.
type Document struct {
	MountID string
	prefix  []byte
	suffix  []byte
}

type bootstrapOptions struct {
	seo          *models.SEO
	assetVersion func(path string) string
}

// Option customizes Bootstrap
type Option func(*bootstrapOptions)

// WithSEO injects title, description, canonical and social tags into <head>
func WithSEO(seo *models.SEO) Option {
	return func(o *bootstrapOptions) {
		o.seo = seo
	}
}

// WithAssetVersion appends ?v=<version> to every local /static/ asset URL.
// fn receives the path below /static/ and returns "" to leave a URL alone.
func WithAssetVersion(fn func(path string) string) Option {
	return func(o *bootstrapOptions) {
		o.assetVersion = fn
	}
}

// Bootstrap parses the host document and locates the single element with id mountID.
// A missing, duplicated or non-empty mount point is an error; callers treat it as fatal.
func Bootstrap(host []byte, mountID string, opts ...Option) (*Document, error) {
	var o bootstrapOptions
	for _, opt := range opts {
		opt(&o)
	}

	doc, err := html.Parse(bytes.NewReader(host))
	if err != nil {
		return nil, fmt.Errorf("failed to parse host document: %w", err)
	}

	mounts := findElements(doc, func(n *html.Node) bool {
		id, ok := attrValue(n, "id")
		return ok && id == mountID
	})
	switch len(mounts) {
	case 0:
		return nil, fmt.Errorf("%w: #%s", ErrMountPointMissing, mountID)
	case 1:
	default:
		return nil, fmt.Errorf("%w: #%s appears %d times", ErrMountPointDuplicated, mountID, len(mounts))
	}

	mount := mounts[0]
	for c := mount.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode || strings.TrimSpace(c.Data) != "" {
			return nil, fmt.Errorf("%w: #%s", ErrMountPointNotEmpty, mountID)
		}
	}
	for mount.FirstChild != nil {
		mount.RemoveChild(mount.FirstChild)
	}
	mount.AppendChild(&html.Node{Type: html.CommentNode, Data: mountMarker})

	if o.seo != nil {
		if heads := findElements(doc, func(n *html.Node) bool { return n.DataAtom == atom.Head }); len(heads) > 0 {
			injectSEO(heads[0], o.seo)
		}
	}
	if o.assetVersion != nil {
		versionAssets(doc, o.assetVersion)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render host document: %w", err)
	}

	marker := []byte("<!--" + mountMarker + "-->")
	out := buf.Bytes()
	i := bytes.Index(out, marker)
	if i < 0 {
		return nil, fmt.Errorf("%w: #%s", ErrMountPointMissing, mountID)
	}

	return &Document{
		MountID: mountID,
		prefix:  bytes.Clone(out[:i]),
		suffix:  bytes.Clone(out[i+len(marker):]),
	}, nil
}

// Render writes the host document with c attached at the mount point
func (d *Document) Render(ctx context.Context, w io.Writer, c templ.Component) error {
	if _, err := w.Write(d.prefix); err != nil {
		return err
	}
	if err := c.Render(ctx, w); err != nil {
		return err
	}
	_, err := w.Write(d.suffix)
	return err
}

// Wrap returns c mounted into the host document as a single component
func (d *Document) Wrap(c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return d.Render(ctx, w, c)
	})
}

func injectSEO(head *html.Node, seo *models.SEO) {
	titles := findElements(head, func(n *html.Node) bool { return n.DataAtom == atom.Title })
	for _, t := range titles {
		head.RemoveChild(t)
	}

	title := element(atom.Title)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: seo.Title})
	head.AppendChild(title)

	meta := func(keyAttr, key, content string) {
		if content == "" {
			return
		}
		head.AppendChild(element(atom.Meta, keyAttr, key, "content", content))
	}

	meta("name", "description", seo.Description)
	meta("name", "keywords", seo.Keywords)
	meta("name", "robots", seo.Robots())
	if seo.Canonical != "" {
		head.AppendChild(element(atom.Link, "rel", "canonical", "href", seo.Canonical))
	}
	meta("property", "og:title", seo.GetOGTitle())
	meta("property", "og:description", seo.GetOGDesc())
	meta("property", "og:type", seo.OGType)
	meta("property", "og:url", seo.Canonical)
	meta("property", "og:image", seo.OGImage)
	meta("name", "twitter:card", seo.TwitterCard)
}

func versionAssets(doc *html.Node, version func(string) string) {
	for _, n := range findElements(doc, func(n *html.Node) bool { return true }) {
		for i, a := range n.Attr {
			if a.Key != "href" && a.Key != "src" {
				continue
			}
			if !strings.HasPrefix(a.Val, "/static/") || strings.Contains(a.Val, "?") {
				continue
			}
			if v := version(strings.TrimPrefix(a.Val, "/static/")); v != "" {
				n.Attr[i].Val = a.Val + "?v=" + v
			}
		}
	}
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func findElements(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
