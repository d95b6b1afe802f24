package moonraker

import "context"

// ServerService wraps the general /server endpoints.
type ServerService struct {
	client Requester
}

// NewServerService returns a ServerService issuing requests through r.
func NewServerService(r Requester) *ServerService {
	return &ServerService{client: r}
}

// Info returns Moonraker's version, loaded components and Klippy connection state.
func (s *ServerService) Info(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/info", nil)
}

// Config returns the parsed Moonraker configuration.
func (s *ServerService) Config(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/server/config", nil)
}

// TemperatureStore returns cached temperature data for the sensors Moonraker
// tracks.
func (s *ServerService) TemperatureStore(ctx context.Context, includeMonitors bool) (any, error) {
	return s.client.Get(ctx, "/server/temperature_store", Params{"include_monitors": includeMonitors})
}

// GcodeStore returns cached gcode responses. A count of zero or less returns
// the full store.
func (s *ServerService) GcodeStore(ctx context.Context, count int) (any, error) {
	var params Params
	if count > 0 {
		params = Params{"count": count}
	}
	return s.client.Get(ctx, "/server/gcode_store", params)
}

// Restart restarts the Moonraker server.
func (s *ServerService) Restart(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/server/restart", nil)
}
