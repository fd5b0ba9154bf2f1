package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/gofile/internal/cli"
)

var (
	configPath string
	verbose    bool
	outputDir  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gofile",
		Short: "A CLI client for the gofile.io file host",
		Long: `gofile downloads and uploads files hosted on gofile.io:
- download: fetch a content code, uuid or direct link, verifying checksums
- upload: push a local file and print its download page`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "O", "", "directory for downloaded files (default: current directory)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.OutputDir = &outputDir

	// Add subcommands
	cmd.AddCommand(
		cli.NewDownloadCmd(),
		cli.NewUploadCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
