package moonraker

import "context"

// PrinterService wraps the /printer endpoints served through Klippy.
type PrinterService struct {
	client Requester
}

// NewPrinterService returns a PrinterService issuing requests through r.
func NewPrinterService(r Requester) *PrinterService {
	return &PrinterService{client: r}
}

// Info returns Klippy host information, including its state.
func (s *PrinterService) Info(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/printer/info", nil)
}

// EmergencyStop issues an emergency stop to the printer.
func (s *PrinterService) EmergencyStop(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/emergency_stop", nil)
}

// Restart requests a Klipper soft restart.
func (s *PrinterService) Restart(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/restart", nil)
}

// FirmwareRestart requests a complete Klipper restart.
func (s *PrinterService) FirmwareRestart(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/firmware_restart", nil)
}

// ListObjects lists the loaded printer objects.
func (s *PrinterService) ListObjects(ctx context.Context) (any, error) {
	return s.client.Get(ctx, "/printer/objects/list", nil)
}

// QueryObjects queries the status of the given objects. Each key is an object
// name and each value the list of attributes to return, or nil for all.
func (s *PrinterService) QueryObjects(ctx context.Context, objects map[string]any) (any, error) {
	return s.client.Post(ctx, "/printer/objects/query", Body{"objects": objects})
}

// RunGcode executes a gcode script.
func (s *PrinterService) RunGcode(ctx context.Context, script string) (any, error) {
	return s.client.Post(ctx, "/printer/gcode/script", Body{"script": script})
}

// StartPrint starts printing the named gcode file.
func (s *PrinterService) StartPrint(ctx context.Context, filename string) (any, error) {
	return s.client.Post(ctx, "/printer/print/start", Body{"filename": filename})
}

// PausePrint pauses the current print.
func (s *PrinterService) PausePrint(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/print/pause", nil)
}

// ResumePrint resumes a paused print.
func (s *PrinterService) ResumePrint(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/print/resume", nil)
}

// CancelPrint cancels the current print.
func (s *PrinterService) CancelPrint(ctx context.Context) (any, error) {
	return s.client.Post(ctx, "/printer/print/cancel", nil)
}
