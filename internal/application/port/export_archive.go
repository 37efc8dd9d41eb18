package port

import "context"

// ExportArchive stores generated export files in durable object storage.
type ExportArchive interface {
	// Put uploads an export file and returns its storage URL
	Put(ctx context.Context, filename string, contentType string, data []byte) (string, error)
}
