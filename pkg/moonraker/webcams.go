package moonraker

import "context"

// WebcamService wraps the /server/webcams endpoints.
type WebcamService struct {
	client Requester
}

// NewWebcamService returns a WebcamService issuing requests through r.
func NewWebcamService(r Requester) *WebcamService {
	return &WebcamService{client: r}
}

// List lists the configured webcams.
func (s *WebcamService) List(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/webcams/list", nil)
}

// Get returns a single webcam.
func (s *WebcamService) Get(ctx context.Context, uid string) (any, error) {
	return s.client.Get(ctx, "/server/webcams/item", Params{"uid": uid})
}

// Save adds a webcam, or updates it when fields carries an existing uid.
func (s *WebcamService) Save(ctx context.Context, fields map[string]any) (any, error) {
	body := Body{}
	for k, v := range fields {
		body[k] = v
	}
	return s.client.Post(ctx, "/server/webcams/item", body)
}

// Delete removes a webcam.
func (s *WebcamService) Delete(ctx context.Context, uid string) (any, error) {
	return s.client.Delete(ctx, "/server/webcams/item", Params{"uid": uid})
}

// Test resolves the webcam's URLs on the Moonraker host.
func (s *WebcamService) Test(ctx context.Context, uid string) (any, error) {
	return s.client.Post(ctx, "/server/webcams/test", Body{"uid": uid})
}
