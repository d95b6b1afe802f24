package moonraker

import (
	"context"
	"fmt"
)

// AccessService wraps the /access authorization endpoints.
type AccessService struct {
	client Requester
}

// NewAccessService returns an AccessService issuing requests through r.
func NewAccessService(r Requester) *AccessService {
	return &AccessService{client: r}
}

// Login logs in a user. An empty source is not sent and Moonraker falls back
// to its default authentication source.
func (s *AccessService) Login(ctx context.Context, username, password, source string) (any, error) {
	body := Body{"username": username, "password": password}
	if source != "" {
		body["source"] = source
	}
	return s.client.Post(ctx, "/access/login", body)
}

// Logout logs out the current user.
func (s *AccessService) Logout(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/access/logout", nil)
}

// CurrentUser returns the logged in user.
func (s *AccessService) CurrentUser(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/access/user", nil)
}

// CreateUser creates a local user.
func (s *AccessService) CreateUser(ctx context.Context, username, password string) (any, error) {
	return s.client.Post(ctx, "/access/user", Body{"username": username, "password": password})
}

// DeleteUser deletes a local user.
func (s *AccessService) DeleteUser(ctx context.Context, username string) (any, error) {
	return s.client.Delete(ctx, "/access/user", Params{"username": username})
}

// ListUsers lists every local user.
func (s *AccessService) ListUsers(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/access/users/list", nil)
}

// ResetPassword changes the current user's password.
func (s *AccessService) ResetPassword(ctx context.Context, password, newPassword string) (any, error) {
	return s.client.Post(ctx, "/access/user/password", Body{"password": password, "new_password": newPassword})
}

// RefreshJWT exchanges a refresh token for a new access token.
func (s *AccessService) RefreshJWT(ctx context.Context, refreshToken string) (any, error) {
	return s.client.Post(ctx, "/access/refresh_jwt", Body{"refresh_token": refreshToken})
}

// OneshotToken returns a short lived token for unauthenticated GET requests.
func (s *AccessService) OneshotToken(ctx context.Context) (string, error) {
	resp, err := s.client.Get(ctx, "/access/oneshot_token", nil)
	if err != nil {
		return "", err
	}
	return resultString(resp)
}

// APIKey returns the current API key.
func (s *AccessService) APIKey(ctx context.Context) (string, error) {
	resp, err := s.client.Get(ctx, "/access/api_key", nil)
	if err != nil {
		return "", err
	}
	return resultString(resp)
}

// GenerateAPIKey replaces the API key and returns the new one. Clients
// holding the old key lose access.
func (s *AccessService) GenerateAPIKey(ctx context.Context) (string, error) {
	resp, err := s.client.Post(ctx, "/access/api_key", nil)
	if err != nil {
		return "", err
	}
	return resultString(resp)
}

// resultString unwraps {"result": "<value>"}. A bare string is returned as is.
func resultString(resp any) (string, error) {
	switch v := resp.(type) {
	case string:
		return v, nil
	case map[string]any:
		if s, ok := v["result"].(string); ok {
			return s, nil
		}
	}
	return "", fmt.Errorf("unexpected response shape %T", resp)
}
