//go:generate mockgen -destination=./mocks/api.go -package=mocks . Client

package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/glorpus-work/gofile/pkg/model"
)

// Client defines the interface for the gofile.io REST API. Responses are
// treated as authoritative; the client performs no validation beyond decoding.
type Client interface {
	// GetContentByID resolves a content uuid to its description.
	GetContentByID(ctx context.Context, id uuid.UUID) (*model.Content, error)

	// GetContentByCode resolves a content code to its description.
	GetContentByCode(ctx context.Context, code string) (*model.Content, error)

	// GetServer returns the upload server assigned to this account.
	GetServer(ctx context.Context) (*model.Server, error)

	// UploadFile uploads the file at path to the given server and returns the
	// destination descriptor.
	UploadFile(ctx context.Context, server string, path string) (*model.UploadedFile, error)

	// SetPublicOption toggles public visibility of a content entry.
	SetPublicOption(ctx context.Context, contentID string, public bool) error
}
