// Package orchestrator ties the API client and the transfer manager together:
// it expands a resolved content identifier into the files behind it, streams
// each one to disk and verifies it against the server-declared digest.
package orchestrator

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/gofile/internal/logger"
	"github.com/glorpus-work/gofile/pkg/api"
	"github.com/glorpus-work/gofile/pkg/archive"
	"github.com/glorpus-work/gofile/pkg/contentid"
	"github.com/glorpus-work/gofile/pkg/download"
	"github.com/glorpus-work/gofile/pkg/errors"
	"github.com/glorpus-work/gofile/pkg/hooks"
	"github.com/glorpus-work/gofile/pkg/model"
)

// Orchestrator drives download and upload operations. API and DL are
// required; Archive and HookManager are optional extras.
type Orchestrator struct {
	API         api.Client
	DL          download.Manager
	Archive     *archive.Manager
	HookManager hooks.HookManager
	Hooks       Hooks // Hooks for progress and event notifications
	Token       string
	OutputDir   string
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|downloading|verifying|extracting|uploading|done
	Name  string // file or content name the event refers to
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// DownloadOptions control download execution.
type DownloadOptions struct {
	Extract bool // unpack recognised archives after a verified download
}

// New creates an orchestrator over the given collaborators.
func New(apiClient api.Client, dl download.Manager, hks Hooks) *Orchestrator {
	return &Orchestrator{API: apiClient, DL: dl, Hooks: hks}
}

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Download fetches every file behind the identifier into OutputDir. Folder
// children are processed strictly sequentially and the first failure aborts
// the whole operation.
func (o *Orchestrator) Download(ctx context.Context, id contentid.ContentID, opts DownloadOptions) error {
	switch id.Kind {
	case contentid.KindDirectLink:
		// No server-declared checksum travels with a direct link, so this
		// path downloads without verification.
		if err := o.transferOne(ctx, id.URL, id.Filename, "", "", opts); err != nil {
			return err
		}
		emit(o.Hooks, Event{Phase: "done", Name: id.Filename})
		return nil
	case contentid.KindUniqueID:
		emit(o.Hooks, Event{Phase: "resolving", Name: id.ID.String()})
		content, err := o.API.GetContentByID(ctx, id.ID)
		if err != nil {
			return err
		}
		return o.downloadChildren(ctx, content, opts)
	default:
		emit(o.Hooks, Event{Phase: "resolving", Name: id.Code})
		content, err := o.API.GetContentByCode(ctx, id.Code)
		if err != nil {
			return err
		}
		return o.downloadChildren(ctx, content, opts)
	}
}

func (o *Orchestrator) downloadChildren(ctx context.Context, content *model.Content, opts DownloadOptions) error {
	if !content.IsFolder() {
		return errors.Wrap(errors.ErrNotBrowsable, content.Name)
	}
	// An absent children field and a present-but-empty one are the same
	// user-visible condition.
	if len(content.Children) == 0 {
		return errors.Wrap(errors.ErrNoContent, content.Name)
	}

	logger.Debug("Enumerating folder", logger.Fields{"name": content.Name, "children": len(content.Children)})

	for _, childID := range sortedChildIDs(content.Children) {
		child := content.Children[childID]
		if !child.IsFile() {
			return errors.Wrap(errors.ErrNestedFolder, child.Name)
		}

		link, err := url.Parse(child.Link)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidURL, "child %s: %v", child.Name, err)
		}

		if err := o.transferOne(ctx, link, child.Name, content.Name, child.MD5, opts); err != nil {
			return err
		}
	}

	emit(o.Hooks, Event{Phase: "done", Name: content.Name})
	return nil
}

// transferOne streams a single file to disk, verifies it against wantMD5 when
// one is declared, and runs the per-file lifecycle extras.
func (o *Orchestrator) transferOne(ctx context.Context, srcURL *url.URL, filename, contentName, wantMD5 string, opts DownloadOptions) error {
	destPath := filepath.Join(o.OutputDir, filename)
	hookCtx := hooks.HookContext{
		ContentName: contentName,
		FileName:    filename,
		FilePath:    destPath,
		URL:         srcURL.String(),
	}

	if err := o.runHook(hooks.PreDownload, hookCtx); err != nil {
		return err
	}

	emit(o.Hooks, Event{Phase: "downloading", Name: filename, Msg: srcURL.String()})
	digest, err := o.DL.Transfer(ctx, srcURL, destPath, o.Token)
	if err != nil {
		return err
	}

	if wantMD5 != "" {
		emit(o.Hooks, Event{Phase: "verifying", Name: filename})
		if !strings.EqualFold(digest, wantMD5) {
			return errors.Wrapf(errors.ErrChecksumMismatch, "%s: expected %s, got %s", filename, wantMD5, digest)
		}
	} else {
		logger.Debug("No declared checksum, skipping verification", logger.Fields{"file": filename})
	}

	if err := o.runHook(hooks.PostDownload, hookCtx); err != nil {
		return err
	}

	if opts.Extract && o.Archive != nil && o.Archive.IsArchive(ctx, destPath) {
		emit(o.Hooks, Event{Phase: "extracting", Name: filename})
		if err := o.Archive.ExtractAll(ctx, destPath, o.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

// Upload sends the file at path to the assigned upload server and applies the
// requested visibility to its parent folder.
func (o *Orchestrator) Upload(ctx context.Context, path string, public bool) (*model.UploadedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrMetadataUnreadable, "%s: %v", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Wrap(errors.ErrNotAFile, path)
	}

	server, err := o.API.GetServer(ctx)
	if err != nil {
		return nil, err
	}

	emit(o.Hooks, Event{Phase: "uploading", Name: filepath.Base(path), Msg: server.Server})
	uploaded, err := o.API.UploadFile(ctx, server.Server, path)
	if err != nil {
		return nil, err
	}

	if err := o.API.SetPublicOption(ctx, uploaded.ParentFolder, public); err != nil {
		return nil, err
	}

	if err := o.runHook(hooks.PostUpload, hooks.HookContext{
		FileName: uploaded.FileName,
		FilePath: path,
		URL:      uploaded.DownloadPage,
	}); err != nil {
		return nil, err
	}

	logger.Debug("Upload complete", logger.Fields{"name": uploaded.FileName, "page": uploaded.DownloadPage})
	emit(o.Hooks, Event{Phase: "done", Name: uploaded.FileName, Msg: uploaded.DownloadPage})
	return uploaded, nil
}

func (o *Orchestrator) runHook(hookType hooks.HookType, ctx hooks.HookContext) error {
	if o.HookManager == nil {
		return nil
	}
	return o.HookManager.Execute(hookType, ctx)
}

// sortedChildIDs fixes the enumeration order of a children map so runs are
// deterministic and fail-fast behavior is reproducible.
func sortedChildIDs(children map[string]model.Content) []string {
	ids := make([]string, 0, len(children))
	for id := range children {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
