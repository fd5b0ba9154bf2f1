// Package download implements the authenticated streaming transfer used for
// every gofile download. Response bodies are copied to disk chunk by chunk
// through an MD5 filter, so arbitrarily large files never occupy memory.
package download

import (
	"context"
	"crypto/md5"
	stderrors "errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/glorpus-work/gofile/internal/logger"
	"github.com/glorpus-work/gofile/pkg/errors"
	"github.com/glorpus-work/gofile/pkg/fsutil"
)

const tokenCookie = "accountToken"

// ManagerImpl is the HTTP-backed transfer implementation. It is intentionally
// minimal: no retries, no resume, one transfer at a time.
type ManagerImpl struct {
	client    *http.Client
	userAgent string
}

// NewManager creates a new transfer manager with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "gofile/1.0"
	}
	return &ManagerImpl{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Transfer downloads srcURL into destPath and returns the hex MD5 digest of
// the bytes written. Transport, file-creation and file-write failures carry
// distinct error kinds.
func (m *ManagerImpl) Transfer(ctx context.Context, srcURL *url.URL, destPath string, token string) (string, error) {
	logger.Debug("Starting transfer", logger.Fields{"url": srcURL.String(), "dest": destPath})

	resp, err := m.doRequest(ctx, srcURL, token)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return "", errors.Wrapf(errors.ErrFileCreate, "%s: %v", destPath, err)
	}

	hw := newHashWriter(&taggedWriter{w: out}, md5.New())
	if _, err := io.Copy(hw, resp.Body); err != nil {
		_ = out.Close()
		if stderrors.Is(err, errors.ErrFileWrite) {
			return "", err
		}
		return "", errors.Wrapf(errors.ErrDownloadFailed, "%s: %v", srcURL, err)
	}

	if err := out.Close(); err != nil {
		return "", errors.Wrapf(errors.ErrFileWrite, "%s: %v", destPath, err)
	}

	digest := hw.Sum()
	logger.Debug("Transfer complete", logger.Fields{"dest": destPath, "md5": digest})
	return digest, nil
}

func (m *ManagerImpl) doRequest(ctx context.Context, srcURL *url.URL, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srcURL.String(), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: tokenCookie, Value: token})
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "%s: %v", srcURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.Wrapf(errors.ErrDownloadFailed, "unexpected status code: %d", resp.StatusCode)
	}
	return resp, nil
}

// taggedWriter marks write failures with ErrFileWrite so they stay
// distinguishable from read-side transport failures after io.Copy.
type taggedWriter struct {
	w io.Writer
}

func (t *taggedWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil {
		return n, errors.Wrap(errors.ErrFileWrite, err.Error())
	}
	return n, nil
}
