// Package media contains interface of media upload client and upload validation.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Decentr-net/plutus/internal/validation"
)

//go:generate mockgen -destination=./mock/media.go -package=mock -source=media.go

// MB ...
const MB = 1024 * 1024

// DefaultSignedURLTTL is a lifetime of signed upload url.
const DefaultSignedURLTTL = 30 * time.Second

// sniffLen is how many bytes are read to detect type of file without declared type.
const sniffLen = 3072

// nolint:gochecknoglobals
var (
	// DefaultPolicy accepts any type of file up to 100MB.
	DefaultPolicy = Policy{MaxSize: 100 * MB}
	// AvatarPolicy ...
	AvatarPolicy = Policy{MaxSize: 10 * MB, Allowed: []string{"image/*"}}
	// BannerPolicy ...
	BannerPolicy = Policy{MaxSize: 20 * MB, Allowed: []string{"image/*"}}
	// ContentPolicy ...
	ContentPolicy = Policy{MaxSize: 100 * MB, Allowed: []string{"image/*", "video/*", "audio/*", "text/*"}}
)

// UploadError is returned when pinning service rejected a file or failed.
type UploadError struct {
	// Status is a http status returned by remote service, 0 on transport errors.
	Status int
	Err    error
}

func (e *UploadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upload failed with status %d: %s", e.Status, e.Err)
	}

	return fmt.Sprintf("upload failed: %s", e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// File ...
type File struct {
	Name string
	// Type is a declared MIME type. Empty type is detected from content.
	Type    string
	Size    int64
	Content io.Reader
}

// Result ...
type Result struct {
	CID  string
	URL  string
	Size int64
	Name string
	MIME string
}

// Uploader pins files.
type Uploader interface {
	// Upload validates f against p and uploads it.
	Upload(ctx context.Context, f File, p Policy) (*Result, error)
	// SignedURL returns short-lived url which allows to upload file directly.
	SignedURL(ctx context.Context, ttl time.Duration) (string, error)
	// URL resolves content reference to gateway url.
	URL(ref string) string
}

// Policy restricts size and type of uploaded files.
type Policy struct {
	MaxSize int64
	// Allowed is a list of MIME types, "type/*" and "*/*" wildcards are supported. Empty list allows anything.
	Allowed []string
}

// PolicyByKind returns preset policy by its name.
func PolicyByKind(kind string) (Policy, error) {
	switch kind {
	case "", "content":
		return ContentPolicy, nil
	case "avatar":
		return AvatarPolicy, nil
	case "banner":
		return BannerPolicy, nil
	case "any":
		return DefaultPolicy, nil
	}

	return Policy{}, validation.Errorf("kind", "unknown upload kind %q", kind)
}

// Prepare validates f against p. File with empty type gets type detected from its content,
// so returned file should be used instead of f.
func (p Policy) Prepare(f File) (File, error) {
	if p.MaxSize <= 0 {
		p.MaxSize = DefaultPolicy.MaxSize
	}

	if f.Content == nil {
		return f, validation.Errorf("file", "is missing")
	}

	if f.Size > p.MaxSize {
		return f, validation.Errorf("file", "size %d exceeds maximum of %dMB", f.Size, p.MaxSize/MB)
	}

	if f.Type == "" {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(f.Content, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return f, validation.Errorf("file", "failed to read: %s", err)
		}
		head = head[:n]

		f.Type = mimetype.Detect(head).String()
		f.Content = io.MultiReader(bytes.NewReader(head), f.Content)
	}

	if !p.allows(f.Type) {
		return f, validation.Errorf("file", "type %s is not allowed", f.Type)
	}

	f.Content = &limitedReader{r: f.Content, max: p.MaxSize}

	return f, nil
}

// limitedReader fails with validation error once more than max bytes are read.
type limitedReader struct {
	r    io.Reader
	max  int64
	read int64
}

func (l *limitedReader) Read(b []byte) (int, error) {
	if l.read > l.max {
		return 0, l.err()
	}

	if left := l.max - l.read + 1; int64(len(b)) > left {
		b = b[:left]
	}

	n, err := l.r.Read(b)
	l.read += int64(n)

	if l.read > l.max {
		return n - int(l.read-l.max), l.err()
	}

	return n, err
}

func (l *limitedReader) err() error {
	return validation.Errorf("file", "size exceeds maximum of %dMB", l.max/MB)
}

func (p Policy) allows(t string) bool {
	if len(p.Allowed) == 0 {
		return true
	}

	mt, _, err := mime.ParseMediaType(t)
	if err != nil {
		return false
	}

	for _, v := range p.Allowed {
		if MatchType(v, mt) {
			return true
		}
	}

	return false
}

// MatchType returns true if MIME type t matches pattern.
func MatchType(pattern, t string) bool {
	pattern, t = strings.ToLower(strings.TrimSpace(pattern)), strings.ToLower(t)

	if pattern == "*/*" || pattern == "*" || pattern == t {
		return true
	}

	if strings.HasSuffix(pattern, "/*") {
		return strings.HasPrefix(t, strings.TrimSuffix(pattern, "*"))
	}

	return false
}

// ResolveURL resolves content reference to url over gateway.
// Absolute http(s) urls are returned unchanged.
func ResolveURL(gateway, ref string) string {
	if ref == "" {
		return ""
	}

	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return ref
	}

	ref = strings.TrimPrefix(ref, "ipfs://")
	ref = strings.TrimPrefix(ref, "ipfs/")

	return fmt.Sprintf("%s/%s", strings.TrimRight(gateway, "/"), ref)
}
