package orchestrator

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apimocks "github.com/glorpus-work/gofile/pkg/api/mocks"
	"github.com/glorpus-work/gofile/pkg/contentid"
	dlmocks "github.com/glorpus-work/gofile/pkg/download/mocks"
	"github.com/glorpus-work/gofile/pkg/errors"
	"github.com/glorpus-work/gofile/pkg/hooks"
	"github.com/glorpus-work/gofile/pkg/model"
)

func folderWith(children map[string]model.Content) *model.Content {
	return &model.Content{
		ID:       "3dbc2f87-4d56-4f5b-9c62-5ad3b0fd7e0c",
		Type:     model.ContentTypeFolder,
		Name:     "AbCdEf",
		Children: children,
	}
}

func fileChild(name, link, md5sum string) model.Content {
	return model.Content{
		ID:   uuid.NewString(),
		Type: model.ContentTypeFile,
		Name: name,
		Link: link,
		MD5:  md5sum,
	}
}

func TestDownloadFolder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	content := folderWith(map[string]model.Content{
		// Keys sort a < b, fixing the transfer order.
		"a": fileChild("first.txt", "https://store1.gofile.io/download/x/first.txt", "11111111111111111111111111111111"),
		"b": fileChild("second.txt", "https://store1.gofile.io/download/x/second.txt", "22222222222222222222222222222222"),
	})

	apiClient.EXPECT().GetContentByCode(gomock.Any(), "AbCdEf").Return(content, nil)

	outDir := t.TempDir()
	gomock.InOrder(
		dl.EXPECT().
			Transfer(gomock.Any(), gomock.Any(), filepath.Join(outDir, "first.txt"), "tok").
			Return("11111111111111111111111111111111", nil),
		dl.EXPECT().
			Transfer(gomock.Any(), gomock.Any(), filepath.Join(outDir, "second.txt"), "tok").
			Return("22222222222222222222222222222222", nil),
	)

	var phases []string
	orch := New(apiClient, dl, Hooks{OnEvent: func(e Event) { phases = append(phases, e.Phase) }})
	orch.Token = "tok"
	orch.OutputDir = outDir

	id, err := contentid.Parse("AbCdEf")
	require.NoError(t, err)

	require.NoError(t, orch.Download(context.Background(), id, DownloadOptions{}))
	assert.Contains(t, phases, "resolving")
	assert.Contains(t, phases, "downloading")
	assert.Contains(t, phases, "verifying")
	assert.Equal(t, "done", phases[len(phases)-1])
}

func TestDownloadFolder_ChecksumMismatchFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	content := folderWith(map[string]model.Content{
		"a": fileChild("first.txt", "https://store1.gofile.io/download/x/first.txt", "11111111111111111111111111111111"),
		"b": fileChild("second.txt", "https://store1.gofile.io/download/x/second.txt", "22222222222222222222222222222222"),
	})

	apiClient.EXPECT().GetContentByCode(gomock.Any(), "AbCdEf").Return(content, nil)

	// Only the first child is ever transferred; the mismatch aborts the run.
	dl.EXPECT().
		Transfer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("deadbeefdeadbeefdeadbeefdeadbeef", nil).
		Times(1)

	orch := New(apiClient, dl, Hooks{})
	orch.OutputDir = t.TempDir()

	id, err := contentid.Parse("AbCdEf")
	require.NoError(t, err)

	err = orch.Download(context.Background(), id, DownloadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrChecksumMismatch)
	assert.Contains(t, err.Error(), "11111111111111111111111111111111")
	assert.Contains(t, err.Error(), "deadbeefdeadbeefdeadbeefdeadbeef")
}

func TestDownloadFolder_NestedFolderRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	nested := model.Content{ID: uuid.NewString(), Type: model.ContentTypeFolder, Name: "sub"}
	content := folderWith(map[string]model.Content{
		"a": nested,
		"b": fileChild("late.txt", "https://store1.gofile.io/download/x/late.txt", ""),
	})

	apiClient.EXPECT().GetContentByCode(gomock.Any(), "AbCdEf").Return(content, nil)
	// No Transfer expectation: the nested folder is hit first and aborts.

	orch := New(apiClient, dl, Hooks{})
	orch.OutputDir = t.TempDir()

	id, err := contentid.Parse("AbCdEf")
	require.NoError(t, err)

	err = orch.Download(context.Background(), id, DownloadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNestedFolder)
}

func TestDownloadFolder_NoContent(t *testing.T) {
	tests := []struct {
		name     string
		children map[string]model.Content
	}{
		{name: "absent children field", children: nil},
		{name: "empty children", children: map[string]model.Content{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			apiClient := apimocks.NewMockClient(ctrl)
			dl := dlmocks.NewMockManager(ctrl)

			apiClient.EXPECT().GetContentByCode(gomock.Any(), "AbCdEf").Return(folderWith(tt.children), nil)

			orch := New(apiClient, dl, Hooks{})
			id, err := contentid.Parse("AbCdEf")
			require.NoError(t, err)

			err = orch.Download(context.Background(), id, DownloadOptions{})
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrNoContent)
		})
	}
}

func TestDownloadFolder_TopLevelFileRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	id := uuid.MustParse("d290f1ee-6c54-4b01-90e6-d701748f0851")
	apiClient.EXPECT().GetContentByID(gomock.Any(), id).Return(&model.Content{
		ID:   id.String(),
		Type: model.ContentTypeFile,
		Name: "solo.bin",
	}, nil)

	orch := New(apiClient, dl, Hooks{})

	cid, err := contentid.Parse(id.String())
	require.NoError(t, err)

	err = orch.Download(context.Background(), cid, DownloadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotBrowsable)
	assert.Contains(t, err.Error(), "solo.bin")
}

func TestDownloadDirectLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	rawURL := "https://store1.gofile.io/download/d290f1ee-6c54-4b01-90e6-d701748f0851/archive.tar.gz"
	outDir := t.TempDir()

	dl.EXPECT().
		Transfer(gomock.Any(), gomock.Any(), filepath.Join(outDir, "archive.tar.gz"), "tok").
		DoAndReturn(func(_ context.Context, srcURL *url.URL, _, _ string) (string, error) {
			// The original URL travels untouched to the transfer.
			assert.Equal(t, rawURL, srcURL.String())
			return "0123456789abcdef0123456789abcdef", nil
		})

	orch := New(apiClient, dl, Hooks{})
	orch.Token = "tok"
	orch.OutputDir = outDir

	id, err := contentid.Parse(rawURL)
	require.NoError(t, err)

	// No API lookup happens on the direct-link path, and the digest is not
	// checked against anything.
	require.NoError(t, orch.Download(context.Background(), id, DownloadOptions{}))
}

func TestDownloadHookFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	executor := hooks.NewTengoExecutor()
	require.NoError(t, executor.AddHook(hooks.Hook{
		Type:    hooks.PreDownload,
		Content: `err := "blocked by hook"`,
	}))

	rawURL := "https://store1.gofile.io/download/d290f1ee-6c54-4b01-90e6-d701748f0851/archive.tar.gz"

	orch := New(apiClient, dl, Hooks{})
	orch.HookManager = executor
	orch.OutputDir = t.TempDir()

	id, err := contentid.Parse(rawURL)
	require.NoError(t, err)

	err = orch.Download(context.Background(), id, DownloadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, hooks.ErrHookScript)
}

func TestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)

	path := filepath.Join(t.TempDir(), "payload.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	uploaded := &model.UploadedFile{
		DownloadPage: "https://gofile.io/d/AbCdEf",
		ParentFolder: "parent-id",
		FileName:     "payload.txt",
	}

	gomock.InOrder(
		apiClient.EXPECT().GetServer(gomock.Any()).Return(&model.Server{Server: "store3"}, nil),
		apiClient.EXPECT().UploadFile(gomock.Any(), "store3", path).Return(uploaded, nil),
		apiClient.EXPECT().SetPublicOption(gomock.Any(), "parent-id", true).Return(nil),
	)

	orch := New(apiClient, dl, Hooks{})
	got, err := orch.Upload(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, uploaded, got)
}

func TestUploadFilesystemErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	apiClient := apimocks.NewMockClient(ctrl)
	dl := dlmocks.NewMockManager(ctrl)
	orch := New(apiClient, dl, Hooks{})

	t.Run("missing path", func(t *testing.T) {
		_, err := orch.Upload(context.Background(), filepath.Join(t.TempDir(), "missing"), false)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrMetadataUnreadable)
	})

	t.Run("directory is not a file", func(t *testing.T) {
		_, err := orch.Upload(context.Background(), t.TempDir(), false)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNotAFile)
	})
}
