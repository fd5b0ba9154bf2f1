// Package hooks runs user-supplied Tengo scripts at transfer lifecycle points.
package hooks

// HookType represents the lifecycle event a hook is attached to.
type HookType string

// Supported hook events.
const (
	PreDownload  HookType = "pre-download"
	PostDownload HookType = "post-download"
	PostUpload   HookType = "post-upload"
)

// Hook represents a hook script with its event and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hook scripts.
type HookContext struct {
	ContentName string
	FileName    string
	FilePath    string
	URL         string
	Vars        map[string]interface{}
}

// HookManager defines the interface for executing lifecycle hooks.
type HookManager interface {
	// Execute runs the hook registered for the event, if any.
	Execute(hookType HookType, ctx HookContext) error

	// AddHook registers a hook script for its event.
	AddHook(hook Hook) error

	// HasHook reports whether a hook is registered for the event.
	HasHook(hookType HookType) bool
}
