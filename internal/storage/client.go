// Package storage is the client for the image-storage collaborator: an
// HTTP endpoint that accepts base64 payloads plus a target bucket/path and
// hands back a public URL. Validation of type and size happens here, before
// anything is transmitted.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MaxImageSize is the largest accepted upload (5MB).
const MaxImageSize = 5 * 1024 * 1024

// allowedTypes are the accepted image content types.
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidationError is a local rejection: the file never leaves the console.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Client talks to the storage endpoint.
type Client struct {
	endpoint     string
	bucket       string
	publicPrefix string
	secret       string
	httpc        *http.Client
}

// NewClient creates a storage client. publicPrefix is the URL prefix the
// endpoint puts on returned public URLs; deletion derives the object path
// by stripping it.
func NewClient(endpoint, bucket, publicPrefix, secret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		endpoint:     strings.TrimRight(endpoint, "/"),
		bucket:       bucket,
		publicPrefix: publicPrefix,
		secret:       secret,
		httpc:        &http.Client{Timeout: timeout},
	}
}

// ValidateImage checks content type and size before transmission.
func ValidateImage(contentType string, size int64) error {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if !allowedTypes[ct] {
		return &ValidationError{Message: fmt.Sprintf("unsupported image type %q (use jpeg, png, gif, or webp)", contentType)}
	}
	if size > MaxImageSize {
		return &ValidationError{Message: "image exceeds the 5MB limit"}
	}
	return nil
}

type uploadRequest struct {
	File   string `json:"file"`
	Bucket string `json:"bucket"`
	Path   string `json:"path"`
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Error   string `json:"error"`
}

// Upload validates and ships one image, returning its public URL.
func (c *Client) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	if err := ValidateImage(contentType, int64(len(data))); err != nil {
		return "", err
	}

	body, err := json.Marshal(uploadRequest{
		File:   base64.StdEncoding.EncodeToString(data),
		Bucket: c.bucket,
		Path:   objectPath,
	})
	if err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}

	resp, err := c.post(ctx, c.endpoint+"/upload", body)
	if err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("storage rejected upload: %s", resp.Error)
	}
	return resp.URL, nil
}

// Delete removes an object by its public URL. URLs outside the configured
// prefix are rejected rather than guessed at.
func (c *Client) Delete(ctx context.Context, publicURL string) error {
	objectPath, ok := c.ObjectPath(publicURL)
	if !ok {
		return &ValidationError{Message: "URL is not managed by this storage endpoint"}
	}

	body, err := json.Marshal(uploadRequest{Bucket: c.bucket, Path: objectPath})
	if err != nil {
		return fmt.Errorf("encode delete: %w", err)
	}

	resp, err := c.post(ctx, c.endpoint+"/delete", body)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("storage rejected delete: %s", resp.Error)
	}
	return nil
}

// ObjectPath derives the storage object path from a public URL.
func (c *Client) ObjectPath(publicURL string) (string, bool) {
	if c.publicPrefix == "" || !strings.HasPrefix(publicURL, c.publicPrefix) {
		return "", false
	}
	return strings.TrimPrefix(strings.TrimPrefix(publicURL, c.publicPrefix), "/"), true
}

func (c *Client) post(ctx context.Context, target string, body []byte) (*uploadResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Admin-Secret", c.secret)
	}

	httpResp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage endpoint unreachable: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read storage response: %w", err)
	}

	var resp uploadResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("malformed storage response (status %d)", httpResp.StatusCode)
	}
	return &resp, nil
}
