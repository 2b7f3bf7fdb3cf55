package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"
)

// ErrUploadTimeout reports that the media host did not answer within the
// configured deadline. The caller maps it to 408.
var ErrUploadTimeout = errors.New("media upload timed out")

// UploadResult is the contract with the media host: one durable URL.
type UploadResult struct {
	URL string `json:"url"`
}

// storageResponse is the media host's upload response body.
type storageResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// StorageService uploads raw media buffers to the external storage host
// and returns the CDN URL. Credentials and endpoint come from the
// environment: STORAGE_URL_ENDPOINT, STORAGE_PRIVATE_KEY,
// UPLOAD_TIMEOUT_SECONDS.
type StorageService struct {
	endpoint   string
	privateKey string
	timeout    time.Duration
	client     *http.Client
}

func NewStorageService() *StorageService {
	timeout := 90 * time.Second
	if s := os.Getenv("UPLOAD_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	return &StorageService{
		endpoint:   os.Getenv("STORAGE_URL_ENDPOINT"),
		privateKey: os.Getenv("STORAGE_PRIVATE_KEY"),
		timeout:    timeout,
		client:     &http.Client{},
	}
}

// Upload sends the buffer to the media host under the given file name.
// The call is bounded by the configured timeout; the database write for
// the owning record must only happen after Upload returns a URL.
func (s *StorageService) Upload(ctx context.Context, file []byte, fileName string) (*UploadResult, error) {
	if s.endpoint == "" {
		return nil, fmt.Errorf("STORAGE_URL_ENDPOINT not configured")
	}

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("file", base64.StdEncoding.EncodeToString(file)); err != nil {
		return nil, fmt.Errorf("build request body: %w", err)
	}
	if err := writer.WriteField("fileName", fileName); err != nil {
		return nil, fmt.Errorf("build request body: %w", err)
	}
	if err := writer.WriteField("useUniqueFileName", "false"); err != nil {
		return nil, fmt.Errorf("build request body: %w", err)
	}
	writer.Close()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &requestBody)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.SetBasicAuth(s.privateKey, "")
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrUploadTimeout
		}
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var parsed storageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parse upload response: %w", err)
	}
	if parsed.URL == "" {
		return nil, fmt.Errorf("media host returned no url")
	}

	return &UploadResult{URL: parsed.URL}, nil
}
