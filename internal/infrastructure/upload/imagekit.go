package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"
)

const (
	DefaultImageKitUploadURL = "https://upload.imagekit.io/api/v1/files/upload"
	defaultUploadTimeout     = 30 * time.Second
)

// ImageKitConfig holds the settings of the ImageKit upload API.
type ImageKitConfig struct {
	PrivateKey string
	UploadURL  string
	Folder     string
	HTTPClient *http.Client
}

// ImageKitUploader stores images through the ImageKit upload API.
type ImageKitUploader struct {
	privateKey string
	uploadURL  string
	folder     string
	client     *http.Client
}

func NewImageKitUploader(cfg ImageKitConfig) *ImageKitUploader {
	u := &ImageKitUploader{
		privateKey: cfg.PrivateKey,
		uploadURL:  cfg.UploadURL,
		folder:     cfg.Folder,
		client:     cfg.HTTPClient,
	}
	if u.uploadURL == "" {
		u.uploadURL = DefaultImageKitUploadURL
	}
	if u.folder == "" {
		u.folder = "/"
	}
	if u.client == nil {
		u.client = &http.Client{Timeout: defaultUploadTimeout}
	}
	return u
}

type imageKitResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload posts the file as multipart/form-data and returns the hosted URL.
func (u *ImageKitUploader) Upload(ctx context.Context, fileName, contentType string, content io.Reader) (string, error) {
	body, formType, err := imageKitForm(fileName, contentType, u.folder, content)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("imagekit request: %w", err)
	}
	req.Header.Set("Content-Type", formType)
	req.Header.Set("Accept", "application/json")
	// The private key is the basic-auth user with an empty password.
	req.SetBasicAuth(u.privateKey, "")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("imagekit upload: %w", err)
	}
	defer resp.Body.Close()

	var out imageKitResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return "", fmt.Errorf("imagekit response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("imagekit upload: status %d: %s", resp.StatusCode, out.Message)
	}
	if out.URL == "" {
		return "", fmt.Errorf("imagekit upload: response has no url")
	}
	return out.URL, nil
}

func imageKitForm(fileName, contentType, folder string, content io.Reader) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("imagekit form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, "", fmt.Errorf("imagekit form: read image: %w", err)
	}

	fields := [][2]string{{"fileName", fileName}, {"folder", folder}}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("imagekit form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("imagekit form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
