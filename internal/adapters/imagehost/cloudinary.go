package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Uploader pushes images to a Cloudinary-style unsigned upload endpoint and
// returns the hosted URL.
type Uploader struct {
	uploadURL string
	preset    string
	client    *http.Client
}

// New builds an uploader for the given cloud name and unsigned upload
// preset.
func New(cloudName, preset string) *Uploader {
	return &Uploader{
		uploadURL: fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		preset:    preset,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithEndpoint is used by tests to point the uploader at a fake host.
func NewWithEndpoint(uploadURL, preset string, client *http.Client) *Uploader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Uploader{uploadURL: uploadURL, preset: preset, client: client}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

// Upload posts the image as a multipart form and returns the secure URL
// (falling back to the plain one).
func (u *Uploader) Upload(ctx context.Context, r io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("upload_preset", u.preset); err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	part, err := form.CreateFormFile("file", "profile")
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload image: status %d: %s", resp.StatusCode, msg)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL, nil
	}
	if parsed.URL != "" {
		return parsed.URL, nil
	}
	return "", fmt.Errorf("upload response carried no url")
}
