package moonraker

import "context"

// DatabaseService wraps the /server/database endpoints. Keys are either a
// dotted string or a []string of path segments.
type DatabaseService struct {
	client Requester
}

// NewDatabaseService returns a DatabaseService issuing requests through r.
func NewDatabaseService(r Requester) *DatabaseService {
	return &DatabaseService{client: r}
}

// ListNamespaces lists the namespaces readable or writable by the caller.
func (s *DatabaseService) ListNamespaces(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/database/list", nil)
}

// GetItem reads key from namespace. A nil key returns the whole namespace.
func (s *DatabaseService) GetItem(ctx context.Context, namespace string, key any) (any, error) {
	params := Params{"namespace": namespace}
	if key != nil {
		params["key"] = key
	}
	return s.client.Get(ctx, "/server/database/item", params)
}

// AddItem writes value at key in namespace.
func (s *DatabaseService) AddItem(ctx context.Context, namespace string, key, value any) (any, error) {
	return s.client.Post(ctx, "/server/database/item", Body{"namespace": namespace, "key": key, "value": value})
}

// DeleteItem deletes key from namespace.
func (s *DatabaseService) DeleteItem(ctx context.Context, namespace string, key any) (any, error) {
	return s.client.Delete(ctx, "/server/database/item", Params{"namespace": namespace, "key": key})
}
