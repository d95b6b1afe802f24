package agent

import (
	"context"

	"github.com/BrunoKrugel/moonraker-mcp/pkg/moonraker"
)

func (a *Agent) files(ctx context.Context, call func(context.Context, *moonraker.FileService) (any, error)) (any, error) {
	return withClient(ctx, a, func(ctx context.Context, c *moonraker.Client) (any, error) {
		return call(ctx, moonraker.NewFileService(c))
	})
}

// ListFiles lists the files in root. An empty root lists gcodes.
func (a *Agent) ListFiles(ctx context.Context, root string) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.List(ctx, root)
	})
}

// GetDirectoryInfo returns the contents of path.
func (a *Agent) GetDirectoryInfo(ctx context.Context, path string, extended bool) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.DirectoryInfo(ctx, path, extended)
	})
}

// CreateDirectory creates path.
func (a *Agent) CreateDirectory(ctx context.Context, path string) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.CreateDirectory(ctx, path)
	})
}

// DeleteDirectory deletes path, which must be empty unless force is set.
func (a *Agent) DeleteDirectory(ctx context.Context, path string, force bool) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.DeleteDirectory(ctx, path, force)
	})
}

// MoveItem moves a file or directory.
func (a *Agent) MoveItem(ctx context.Context, source, dest string) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.Move(ctx, source, dest)
	})
}

// CopyItem copies a file or directory.
func (a *Agent) CopyItem(ctx context.Context, source, dest string) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.Copy(ctx, source, dest)
	})
}

// DeleteFile deletes a file given with its root, e.g. gcodes/part.gcode.
func (a *Agent) DeleteFile(ctx context.Context, path string) (any, error) {
	return a.files(ctx, func(ctx context.Context, s *moonraker.FileService) (any, error) {
		return s.DeleteFile(ctx, path)
	})
}
