package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/gofile/internal/logger"
	"github.com/glorpus-work/gofile/pkg/contentid"
	"github.com/glorpus-work/gofile/pkg/orchestrator"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	var extract bool

	cmd := &cobra.Command{
		Use:   "download CONTENT_ID",
		Short: "Download content from gofile",
		Long: `Download the files behind a content identifier. The identifier may be a
content code, a content uuid, a https://gofile.io/d/<code> page URL, or a
direct download URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args[0], extract)
		},
	}

	cmd.Flags().BoolVar(&extract, "extract", false, "Unpack recognised archives after download")

	return cmd
}

func runDownload(cmd *cobra.Command, rawID string, extract bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := resolveToken(cfg)
	if err != nil {
		return err
	}

	id, err := contentid.Parse(rawID)
	if err != nil {
		return err
	}
	logger.Debug("Resolved content identifier", logger.Fields{"kind": string(id.Kind)})

	orch, err := newOrchestrator(cfg, token)
	if err != nil {
		return err
	}

	opts := orchestrator.DownloadOptions{Extract: extract}
	if err := orch.Download(cmd.Context(), id, opts); err != nil {
		return fmt.Errorf("failed to download %s: %w", id, err)
	}

	return nil
}
