// Package api implements the gofile.io REST client used to resolve content
// descriptions and negotiate uploads.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glorpus-work/gofile/pkg/errors"
	"github.com/glorpus-work/gofile/pkg/model"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.gofile.io"

// defaultServerURLFmt expands an upload server handle into its base URL.
const defaultServerURLFmt = "https://%s.gofile.io"

const statusOK = "ok"

// ClientImpl is the HTTP-backed API client.
type ClientImpl struct {
	client       *http.Client
	baseURL      string
	serverURLFmt string
	token        string
	userAgent    string
}

// New creates an API client authorized with the given account token. An
// empty baseURL selects the production endpoint.
func New(baseURL, token string, timeout time.Duration) *ClientImpl {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ClientImpl{
		client:       &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		serverURLFmt: defaultServerURLFmt,
		token:        token,
		userAgent:    "gofile/1.0",
	}
}

// envelope is the common response wrapper of every API endpoint.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// GetContentByID resolves a content uuid to its description.
func (c *ClientImpl) GetContentByID(ctx context.Context, id uuid.UUID) (*model.Content, error) {
	return c.getContent(ctx, id.String())
}

// GetContentByCode resolves a content code to its description.
func (c *ClientImpl) GetContentByCode(ctx context.Context, code string) (*model.Content, error) {
	return c.getContent(ctx, code)
}

func (c *ClientImpl) getContent(ctx context.Context, contentID string) (*model.Content, error) {
	query := url.Values{}
	query.Set("contentId", contentID)
	query.Set("token", c.token)

	var content model.Content
	if err := c.call(ctx, http.MethodGet, c.baseURL+"/getContent?"+query.Encode(), nil, "", &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// GetServer returns the upload server assigned to this account.
func (c *ClientImpl) GetServer(ctx context.Context) (*model.Server, error) {
	var server model.Server
	if err := c.call(ctx, http.MethodGet, c.baseURL+"/getServer", nil, "", &server); err != nil {
		return nil, err
	}
	return &server, nil
}

// SetPublicOption toggles public visibility of a content entry.
func (c *ClientImpl) SetPublicOption(ctx context.Context, contentID string, public bool) error {
	form := url.Values{}
	form.Set("contentId", contentID)
	form.Set("token", c.token)
	form.Set("option", "public")
	form.Set("value", strconv.FormatBool(public))

	body := strings.NewReader(form.Encode())
	return c.call(ctx, http.MethodPut, c.baseURL+"/setOption", body, "application/x-www-form-urlencoded", nil)
}

// UploadFile uploads the file at path to the given server. The multipart body
// is streamed through a pipe so large files are never buffered in memory.
func (c *ClientImpl) UploadFile(ctx context.Context, server string, path string) (*model.UploadedFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrAPIFailure, "open upload file: %v", err)
	}
	defer func() { _ = file.Close() }()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := writeUploadBody(mw, c.token, filepath.Base(path), file)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	uploadURL := fmt.Sprintf(c.serverURLFmt, server) + "/uploadFile"

	var uploaded model.UploadedFile
	if err := c.call(ctx, http.MethodPost, uploadURL, pr, mw.FormDataContentType(), &uploaded); err != nil {
		return nil, err
	}
	return &uploaded, nil
}

func writeUploadBody(mw *multipart.Writer, token, filename string, file io.Reader) error {
	if err := mw.WriteField("token", token); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}

// call performs one API request and decodes the enveloped response into out.
// Any transport failure, non-ok envelope status or decode failure is reported
// as a remote-service error.
func (c *ClientImpl) call(ctx context.Context, method, rawURL string, body io.Reader, contentType string, out interface{}) error {
	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(errors.ErrAPIFailure, "request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Wrapf(errors.ErrAPIFailure, "unexpected status code: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(errors.ErrAPIFailure, "malformed response: %v", err)
	}
	if env.Status != statusOK {
		return errors.Wrapf(errors.ErrAPIFailure, "status %q", env.Status)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(errors.ErrAPIFailure, "malformed response data: %v", err)
	}
	return nil
}
