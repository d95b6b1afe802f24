package moonraker

import "context"

// DeviceService wraps the /machine/device_power endpoints.
type DeviceService struct {
	client Requester
}

// NewDeviceService returns a DeviceService issuing requests through r.
func NewDeviceService(r Requester) *DeviceService {
	return &DeviceService{client: r}
}

// List lists the configured power devices.
func (s *DeviceService) List(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/machine/device_power/devices", nil)
}

// State returns the state of one device.
func (s *DeviceService) State(ctx context.Context, device string) (any, error) {
	return s.client.Get(ctx, "/machine/device_power/device", Params{"device": device})
}

// SetState applies action (on, off or toggle) to one device.
func (s *DeviceService) SetState(ctx context.Context, device, action string) (any, error) {
	return s.client.Post(ctx, "/machine/device_power/device", Body{"device": device, "action": action})
}

// BatchStatus returns the state of several devices. Device names are sent as
// valueless arguments.
func (s *DeviceService) BatchStatus(ctx context.Context, devices []string) (any, error) {
	params := Params{}
	for _, d := range devices {
		params[d] = nil
	}
	return s.client.Get(ctx, "/machine/device_power/status", params)
}

// PowerOn turns on several devices.
func (s *DeviceService) PowerOn(ctx context.Context, devices []string) (any, error) {
	return s.client.Post(ctx, "/machine/device_power/on", deviceBody(devices))
}

// PowerOff turns off several devices.
func (s *DeviceService) PowerOff(ctx context.Context, devices []string) (any, error) {
	return s.client.Post(ctx, "/machine/device_power/off", deviceBody(devices))
}

func deviceBody(devices []string) Body {
	body := Body{}
	for _, d := range devices {
		body[d] = nil
	}
	return body
}
