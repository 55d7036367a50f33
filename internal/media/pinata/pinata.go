// Package pinata is implementation of media uploader over Pinata pinning service.
package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/media"
	"github.com/Decentr-net/plutus/internal/validation"
)

var log = logrus.WithField("layer", "media").WithField("package", "pinata")

const maxErrorBodySize = 4096

// nolint:gochecknoglobals
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Config ...
type Config struct {
	// JWT is a Pinata API key.
	JWT string
	// UploadURL is a base url of the upload API, e.g. https://uploads.pinata.cloud/v3.
	UploadURL string
	// Gateway is a base url content identifiers are resolved over, e.g. https://gateway.pinata.cloud/ipfs.
	Gateway string
	// Network is "public" or "private".
	Network string
	Timeout time.Duration
}

type client struct {
	c       *http.Client
	cfg     Config
	nowFunc func() time.Time
}

type fileResponse struct {
	Data struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		CID      string `json:"cid"`
		Size     int64  `json:"size"`
		MimeType string `json:"mime_type"`
	} `json:"data"`
}

type signRequest struct {
	Date    int64 `json:"date"`
	Expires int64 `json:"expires"`
}

type signResponse struct {
	Data string `json:"data"`
}

// New creates new instance of pinata client.
func New(cfg Config) media.Uploader {
	if cfg.Network == "" {
		cfg.Network = "public"
	}

	cfg.UploadURL = strings.TrimRight(cfg.UploadURL, "/")

	return client{
		c:       &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		nowFunc: time.Now,
	}
}

func (c client) URL(ref string) string {
	return media.ResolveURL(c.cfg.Gateway, ref)
}

func (c client) Upload(ctx context.Context, f media.File, p media.Policy) (*media.Result, error) {
	f, err := p.Prepare(f)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	defer pr.Close() // nolint:errcheck

	mw := multipart.NewWriter(pw)
	werr := make(chan error, 1)
	go func() {
		err := writeForm(mw, f, c.cfg.Network)
		pw.CloseWithError(err) // nolint:errcheck
		werr <- err
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL+"/files", pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp fileResponse
	if err := c.do(req, &resp); err != nil {
		pr.Close() // nolint:errcheck
		if ferr := <-werr; validation.IsError(ferr) {
			return nil, ferr
		}
		return nil, err
	}

	if resp.Data.CID == "" {
		return nil, &media.UploadError{Err: errors.New("empty cid in response")}
	}

	log.WithField("cid", resp.Data.CID).WithField("size", resp.Data.Size).Debug("file pinned")

	res := media.Result{
		CID:  resp.Data.CID,
		URL:  c.URL(resp.Data.CID),
		Size: resp.Data.Size,
		Name: resp.Data.Name,
		MIME: f.Type,
	}

	if res.Size == 0 {
		res.Size = f.Size
	}

	if res.Name == "" {
		res.Name = f.Name
	}

	return &res, nil
}

func (c client) SignedURL(ctx context.Context, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = media.DefaultSignedURLTTL
	}

	body, err := json.Marshal(signRequest{
		Date:    c.nowFunc().Unix(),
		Expires: int64(ttl / time.Second),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL+"/files/sign", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp signResponse
	if err := c.do(req, &resp); err != nil {
		return "", err
	}

	if resp.Data == "" {
		return "", &media.UploadError{Err: errors.New("empty url in response")}
	}

	return resp.Data, nil
}

func (c client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)

	resp, err := c.c.Do(req)
	if err != nil {
		return &media.UploadError{Err: err}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		b, _ := ioutil.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &media.UploadError{
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(b))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &media.UploadError{Status: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

func writeForm(mw *multipart.Writer, f media.File, network string) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", f.Type)

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create part: %w", err)
	}

	if _, err := io.Copy(part, f.Content); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := mw.WriteField("network", network); err != nil {
		return fmt.Errorf("failed to write network: %w", err)
	}

	return mw.Close()
}
