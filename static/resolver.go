// Package static resolves request paths to files confined under a root directory.
package static

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"chatbot-tutor-service/apperror"
)

const DefaultEntry = "index.html"

const defaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
}

// Asset is a file payload ready to be written to a response.
type Asset struct {
	Path        string
	ContentType string
	Data        []byte
}

// Resolver serves files from a single root directory.
type Resolver struct {
	root  string
	entry string
}

// NewResolver fixes the absolute root once. entry is the document served for "/".
func NewResolver(root, entry string) (*Resolver, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve static root %q: %w", root, err)
	}
	if entry == "" {
		entry = DefaultEntry
	}
	return &Resolver{root: abs, entry: entry}, nil
}

// Root returns the absolute root directory.
func (r *Resolver) Root() string {
	return r.root
}

// Locate maps a request path to an absolute file path without touching the
// file system. Paths resolving outside the root are Forbidden.
func (r *Resolver) Locate(requestPath string) (string, error) {
	if requestPath == "" || requestPath == "/" {
		requestPath = "/" + r.entry
	}

	// Separators are stripped before cleaning so ".." cannot be absorbed by a leading "/".
	rel := strings.TrimLeft(filepath.ToSlash(requestPath), "/")
	rel = strings.TrimLeft(path.Clean(rel), "/")

	resolved, err := filepath.Abs(filepath.Join(r.root, filepath.FromSlash(rel)))
	if err != nil || !r.contains(resolved) {
		return "", apperror.Wrap(apperror.Forbidden, "", fmt.Errorf("path %q escapes static root", requestPath))
	}
	return resolved, nil
}

// Resolve locates and reads the asset for requestPath. Missing and unreadable
// files are both reported as NotFound.
func (r *Resolver) Resolve(requestPath string) (*Asset, error) {
	resolved, err := r.Locate(requestPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, apperror.Wrap(apperror.NotFound, "", err)
	}

	return &Asset{
		Path:        resolved,
		ContentType: ContentType(resolved),
		Data:        data,
	}, nil
}

func (r *Resolver) contains(p string) bool {
	prefix := r.root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return p == r.root || strings.HasPrefix(p, prefix)
}

// ContentType infers a content type from the file extension alone.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}
