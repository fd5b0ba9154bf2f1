// Package model provides data structures for representing gofile.io content
// descriptions and upload results as returned by the remote API.
package model

// ContentType distinguishes folder and file content entries.
type ContentType string

// Supported content types.
const (
	ContentTypeFolder ContentType = "folder"
	ContentTypeFile   ContentType = "file"
)

// Content represents one resolved content entry. A folder carries its
// immediate children keyed by child id; a file carries its download link and
// declared MD5 digest. Constructed once per lookup and never mutated.
type Content struct {
	ID           string             `json:"id"`
	Type         ContentType        `json:"type"`
	Name         string             `json:"name"`
	ParentFolder string             `json:"parentFolder,omitempty"`
	Code         string             `json:"code,omitempty"`
	Children     map[string]Content `json:"contents,omitempty"`
	Link         string             `json:"link,omitempty"`
	MD5          string             `json:"md5,omitempty"`
	Size         int64              `json:"size,omitempty"`
}

// IsFolder reports whether the entry is a browsable folder.
func (c Content) IsFolder() bool {
	return c.Type == ContentTypeFolder
}

// IsFile reports whether the entry is a downloadable file.
func (c Content) IsFile() bool {
	return c.Type == ContentTypeFile
}

// Server identifies the upload server assigned by the API.
type Server struct {
	Server string `json:"server"`
}

// UploadedFile describes the outcome of a file upload.
type UploadedFile struct {
	DownloadPage string `json:"downloadPage"`
	Code         string `json:"code"`
	ParentFolder string `json:"parentFolder"`
	FileID       string `json:"fileId"`
	FileName     string `json:"fileName"`
	MD5          string `json:"md5"`
}
