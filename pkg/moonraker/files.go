package moonraker

import (
	"context"
	"strings"
)

// DefaultRoot is the file root listed when none is given.
const DefaultRoot = "gcodes"

// FileService wraps the /server/files endpoints.
type FileService struct {
	client Requester
}

// NewFileService returns a FileService issuing requests through r.
func NewFileService(r Requester) *FileService {
	return &FileService{client: r}
}

// List lists the files available in root. An empty root lists gcodes.
func (s *FileService) List(ctx context.Context, root string) (any, error) {
	if root == "" {
		root = DefaultRoot
	}
	return s.client.Get(ctx, "/server/files/list", Params{"root": root})
}

// DirectoryInfo returns the contents of a directory. With extended set, gcode
// metadata is included for each file.
func (s *FileService) DirectoryInfo(ctx context.Context, path string, extended bool) (any, error) {
	if path == "" {
		path = DefaultRoot
	}
	return s.client.Get(ctx, "/server/files/directory", Params{"path": path, "extended": extended})
}

// CreateDirectory creates a directory.
func (s *FileService) CreateDirectory(ctx context.Context, path string) (any, error) {
	return s.client.Post(ctx, "/server/files/directory", Body{"path": path})
}

// DeleteDirectory deletes a directory. A non-empty directory requires force.
func (s *FileService) DeleteDirectory(ctx context.Context, path string, force bool) (any, error) {
	return s.client.Delete(ctx, "/server/files/directory", Params{"path": path, "force": force})
}

// Move moves a file or directory.
func (s *FileService) Move(ctx context.Context, source, dest string) (any, error) {
	return s.client.Post(ctx, "/server/files/move", Body{"source": source, "dest": dest})
}

// Copy copies a file or directory.
func (s *FileService) Copy(ctx context.Context, source, dest string) (any, error) {
	return s.client.Post(ctx, "/server/files/copy", Body{"source": source, "dest": dest})
}

// DeleteFile deletes a file. The path includes its root, e.g. gcodes/part.gcode.
func (s *FileService) DeleteFile(ctx context.Context, path string) (any, error) {
	return s.client.Delete(ctx, "/server/files/"+strings.TrimPrefix(path, "/"), nil)
}
