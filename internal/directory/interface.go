package directory

import "context"

// UseCase resolves filter metadata from the organization directory.
type UseCase interface {
	GetMetadata(ctx context.Context) (Metadata, error)
}
