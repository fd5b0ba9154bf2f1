package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUploadCmd creates the upload command.
func NewUploadCmd() *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "upload PATH",
		Short: "Upload a file to gofile",
		Long: `Upload a single file to the account's assigned upload server and print
the resulting download page URL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd, args[0], public)
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "Make the uploaded content publicly accessible")

	return cmd
}

func runUpload(cmd *cobra.Command, path string, public bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	token, err := resolveToken(cfg)
	if err != nil {
		return err
	}

	orch, err := newOrchestrator(cfg, token)
	if err != nil {
		return err
	}

	uploaded, err := orch.Upload(cmd.Context(), path, public)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}

	fmt.Println(uploaded.DownloadPage)
	return nil
}
