package moonraker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultSnapshotPath is where a snapshot is written when no path is given.
const DefaultSnapshotPath = "snapshot.jpg"

// SnapshotDownloader saves a still image from a configured webcam. The image
// is fetched with its own HTTP client since the response is not JSON.
type SnapshotDownloader struct {
	webcams *WebcamService
	http    *http.Client
	baseURL string
}

// NewSnapshotDownloader builds a downloader that lists webcams through r and
// resolves relative snapshot URLs against baseURL. A nil httpClient uses a
// fresh client.
func NewSnapshotDownloader(r Requester, baseURL string, httpClient *http.Client) *SnapshotDownloader {
	if httpClient == nil {
		httpClient = &http.Client{CheckRedirect: noRedirect}
	}
	return &SnapshotDownloader{
		webcams: NewWebcamService(r),
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Download writes a snapshot of the named webcam, or the first configured
// webcam when name is empty, to outputPath and returns that path.
func (d *SnapshotDownloader) Download(ctx context.Context, name, outputPath string) (string, error) {
	if outputPath == "" {
		outputPath = DefaultSnapshotPath
	}

	resp, err := d.webcams.List(ctx)
	if err != nil {
		return "", err
	}
	cam, err := selectWebcam(webcamsFrom(resp), name)
	if err != nil {
		return "", err
	}

	snapshotURL, _ := cam["snapshot_url"].(string)
	if snapshotURL == "" {
		return "", fmt.Errorf("%w: webcam %q has no snapshot url", ErrNotFound, cam["name"])
	}
	if strings.HasPrefix(snapshotURL, "/") {
		snapshotURL = d.baseURL + snapshotURL
	}

	image, err := d.fetch(ctx, snapshotURL)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputPath, image, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	log.WithFields(log.Fields{"url": snapshotURL, "path": outputPath, "bytes": len(image)}).Debug("snapshot saved")
	return outputPath, nil
}

func (d *SnapshotDownloader) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create snapshot request: %w", err)
	}
	resp, err := d.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute snapshot request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			Method:     http.MethodGet,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return image, nil
}

func webcamsFrom(resp any) []map[string]any {
	envelope, _ := resp.(map[string]any)
	result, _ := envelope["result"].(map[string]any)
	list, _ := result["webcams"].([]any)

	cams := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if cam, ok := item.(map[string]any); ok {
			cams = append(cams, cam)
		}
	}
	return cams
}

func selectWebcam(cams []map[string]any, name string) (map[string]any, error) {
	if len(cams) == 0 {
		return nil, fmt.Errorf("%w: no webcams configured", ErrNotFound)
	}
	if name == "" {
		return cams[0], nil
	}
	for _, cam := range cams {
		if cam["name"] == name {
			return cam, nil
		}
	}
	return nil, fmt.Errorf("%w: webcam %q", ErrNotFound, name)
}
