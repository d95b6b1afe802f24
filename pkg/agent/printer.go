package agent

import (
	"context"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
)

func (a *Agent) printer(ctx context.Context, call func(context.Context, *moonraker.PrinterService) (any, error)) (any, error) {
	return withClient(ctx, a, func(ctx context.Context, c *moonraker.Client) (any, error) {
		return call(ctx, moonraker.NewPrinterService(c))
	})
}

// EmergencyStop halts the printer immediately.
func (a *Agent) EmergencyStop(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.EmergencyStop(ctx)
	})
}

// Restart restarts Klippy.
func (a *Agent) Restart(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.Restart(ctx)
	})
}

// FirmwareRestart restarts the MCU firmware and Klippy.
func (a *Agent) FirmwareRestart(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.FirmwareRestart(ctx)
	})
}

// ListObjects lists the loaded printer objects.
func (a *Agent) ListObjects(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.ListObjects(ctx)
	})
}

// QueryObjects returns the status of the requested printer objects.
func (a *Agent) QueryObjects(ctx context.Context, objects map[string]any) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.QueryObjects(ctx, objects)
	})
}

// RunGcodeScript runs a gcode script and waits for it to complete.
func (a *Agent) RunGcodeScript(ctx context.Context, script string) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.RunGcode(ctx, script)
	})
}

// StartPrint starts printing filename.
func (a *Agent) StartPrint(ctx context.Context, filename string) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.StartPrint(ctx, filename)
	})
}

// PausePrint pauses the current print.
func (a *Agent) PausePrint(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.PausePrint(ctx)
	})
}

// ResumePrint resumes a paused print.
func (a *Agent) ResumePrint(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.ResumePrint(ctx)
	})
}

// CancelPrint cancels the current print.
func (a *Agent) CancelPrint(ctx context.Context) (any, error) {
	return a.printer(ctx, func(ctx context.Context, s *moonraker.PrinterService) (any, error) {
		return s.CancelPrint(ctx)
	})
}
