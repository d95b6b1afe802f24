package moonraker

import "context"

// ExtensionService wraps the /server/extensions endpoints.
type ExtensionService struct {
	client Requester
}

// NewExtensionService returns an ExtensionService issuing requests through r.
func NewExtensionService(r Requester) *ExtensionService {
	return &ExtensionService{client: r}
}

// List lists the connected extension agents.
func (s *ExtensionService) List(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/extensions/list", nil)
}

// Call invokes method on agent. Arguments may be a list, a map or nil.
func (s *ExtensionService) Call(ctx context.Context, agent, method string, arguments any) (any, error) {
	body := Body{"agent": agent, "method": method}
	if arguments != nil {
		body["arguments"] = arguments
	}
	return s.client.Post(ctx, "/server/extensions/request", body)
}
