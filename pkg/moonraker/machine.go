package moonraker

import "context"

// MachineService wraps the /machine endpoints for the host operating system.
type MachineService struct {
	client Requester
}

// NewMachineService returns a MachineService issuing requests through r.
func NewMachineService(r Requester) *MachineService {
	return &MachineService{client: r}
}

// SystemInfo returns the host's CPU, memory, distribution and service details.
func (s *MachineService) SystemInfo(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/machine/system_info", nil)
}

// Shutdown powers off the host.
func (s *MachineService) Shutdown(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/machine/shutdown", nil)
}

// Reboot restarts the host.
func (s *MachineService) Reboot(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/machine/reboot", nil)
}

// RestartService restarts a systemd service such as klipper or moonraker.
func (s *MachineService) RestartService(ctx context.Context, service string) (any, error) {
	return s.client.Post(ctx, "/machine/services/restart", Body{"service": service})
}

// StopService stops a systemd service.
func (s *MachineService) StopService(ctx context.Context, service string) (any, error) {
	return s.client.Post(ctx, "/machine/services/stop", Body{"service": service})
}

// StartService starts a systemd service.
func (s *MachineService) StartService(ctx context.Context, service string) (any, error) {
	return s.client.Post(ctx, "/machine/services/start", Body{"service": service})
}

// ProcStats returns Moonraker process statistics and recent host load.
func (s *MachineService) ProcStats(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/machine/proc_stats", nil)
}

// SudoInfo reports whether Moonraker has sudo access. With checkAccess set
// Moonraker actively verifies the stored password.
func (s *MachineService) SudoInfo(ctx context.Context, checkAccess bool) (any, error) {
	return s.client.Get(ctx, "/machine/sudo/info", Params{"check_access": checkAccess})
}

// SetSudoPassword stores the sudo password used for privileged requests.
func (s *MachineService) SetSudoPassword(ctx context.Context, password string) (any, error) {
	return s.client.Post(ctx, "/machine/sudo/password", Body{"password": password})
}
