//go:generate mockgen -destination=./mocks/download.go -package=mocks . Manager

package download

import (
	"context"
	"net/url"
)

// Manager defines the interface for streaming single-file transfers. It is
// designed so callers never buffer a payload in memory: bytes go from the
// network straight to disk, with the integrity digest computed on the way.
type Manager interface {
	// Transfer streams the resource at srcURL into a freshly created file at
	// destPath, authenticating with the account token as a session cookie.
	// It returns the hex-encoded MD5 digest of the bytes written to disk.
	Transfer(ctx context.Context, srcURL *url.URL, destPath string, token string) (string, error)
}
