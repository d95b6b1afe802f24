// Package moonraker provides a minimal client for the Moonraker 3D printer API.
//
// A Client owns one connection pool bound to http://host:port and exposes
// Get, Post and Delete. Each service type (PrinterService, FileService,
// JobQueueService and so on) maps its methods one to one onto a single REST
// endpoint and returns the decoded JSON response without reshaping it:
//
//	client := moonraker.NewClient("printer.local", moonraker.DefaultPort, "")
//	defer client.Close()
//
//	info, err := moonraker.NewPrinterService(client).Info(ctx)
//
// Responses outside the 2xx range fail with *HTTPError. Wrappers that need one
// of two mutually exclusive arguments fail with ErrInvalidArgument before any
// request is sent. Nothing is retried.
package moonraker
