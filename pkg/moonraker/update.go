package moonraker

import "context"

// UpdateService wraps the /machine/update endpoints.
type UpdateService struct {
	client Requester
}

// NewUpdateService returns an UpdateService issuing requests through r.
func NewUpdateService(r Requester) *UpdateService {
	return &UpdateService{client: r}
}

// Status returns the update state of every managed component.
func (s *UpdateService) Status(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/machine/update/status", nil)
}

// Refresh refreshes update state for name, or for everything when name is empty.
func (s *UpdateService) Refresh(ctx context.Context, name string) (any, error) {
	return s.client.Post(ctx, "/machine/update/refresh", optionalName(name))
}

// Upgrade upgrades name, or everything when name is empty.
func (s *UpdateService) Upgrade(ctx context.Context, name string) (any, error) {
	return s.client.Post(ctx, "/machine/update/upgrade", optionalName(name))
}

// Recover repairs a corrupt repo. A hard recovery re-clones it.
func (s *UpdateService) Recover(ctx context.Context, name string, hard bool) (any, error) {
	return s.client.Post(ctx, "/machine/update/recover", Body{"name": name, "hard": hard})
}

// Rollback returns name to the version installed before its last update.
func (s *UpdateService) Rollback(ctx context.Context, name string) (any, error) {
	return s.client.Post(ctx, "/machine/update/rollback", Body{"name": name})
}

func optionalName(name string) Body {
	body := Body{}
	if name != "" {
		body["name"] = name
	}
	return body
}
