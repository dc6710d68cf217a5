package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"larkmedia/internal/config"
	"larkmedia/internal/larksdk"
	"larkmedia/internal/logging"
	"larkmedia/internal/media"
)

const version = "0.1.0"

var (
	green = color.New(color.FgGreen).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

type cliOptions struct {
	configPath string
	appID      string
	appSecret  string
	baseDomain string
	debug      bool
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:   "larkmedia",
		Short: "Upload images and files to Lark",
		Long: fmt.Sprintf(`%s uploads local images and files to the Lark open platform
and prints the returned media key.

Credentials come from %s, the LARKMEDIA_* environment, or flags.

%s
  larkmedia image ~/Pictures/shot.png
  larkmedia image avatar.png --avatar
  larkmedia file report.pdf
  larkmedia file voice.opus --duration 2300
  larkmedia upload "file:///Users/x/a%%20b.png"
  larkmedia classify clip.mp4`,
			bold("larkmedia"), gray("~/.larkmedia/config.yaml"), bold("EXAMPLES:")),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&opts.appID, "app-id", "", "Lark app ID (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.appSecret, "app-secret", "", "Lark app secret (overrides config)")
	rootCmd.PersistentFlags().StringVar(&opts.baseDomain, "domain", "", "Open-platform base domain (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Debug logging")

	rootCmd.AddCommand(newImageCommand(opts))
	rootCmd.AddCommand(newFileCommand(opts))
	rootCmd.AddCommand(newUploadCommand(opts))
	rootCmd.AddCommand(newClassifyCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// buildUploader loads the configuration, applies flag overrides, and wires the
// SDK-backed uploader.
func buildUploader(opts *cliOptions) (*media.Uploader, error) {
	cfg, source, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.appID != "" {
		cfg.AppID = opts.appID
	}
	if opts.appSecret != "" {
		cfg.AppSecret = opts.appSecret
	}
	if opts.baseDomain != "" {
		cfg.BaseDomain = opts.baseDomain
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewComponentLogger("larkmedia", opts.debug)
	logger.Debug("config loaded (source=%s)", source)

	uploader := media.NewUploader(larksdk.New(cfg.AppID, cfg.AppSecret, cfg.BaseDomain))
	uploader.SetLogger(logger)
	return uploader, nil
}

func newImageCommand(opts *cliOptions) *cobra.Command {
	var avatar bool
	cmd := &cobra.Command{
		Use:   "image <path>",
		Short: "Upload an image and print its image_key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploader, err := buildUploader(opts)
			if err != nil {
				return err
			}
			kind := media.ImageKindMessage
			if avatar {
				kind = media.ImageKindAvatar
			}
			path := media.ResolveMediaPath(args[0])
			key, err := uploader.UploadImage(cmd.Context(), media.FromPath(path), kind)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", green("✓"), key)
			return nil
		},
	}
	cmd.Flags().BoolVar(&avatar, "avatar", false, "Upload as a profile picture instead of a chat image")
	return cmd
}

func newFileCommand(opts *cliOptions) *cobra.Command {
	var (
		name       string
		fileType   string
		durationMS int
	)
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Upload a file and print its file_key",
		Long: `Upload a file and print its file_key.

The file category is classified from the extension unless --type is given.
--duration (milliseconds) is conventionally required by the endpoint for
audio and video categories.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploader, err := buildUploader(opts)
			if err != nil {
				return err
			}
			path := media.ResolveMediaPath(args[0])
			if name == "" {
				name = filepath.Base(path)
			}
			ftype := media.ClassifyFileType(path)
			if fileType != "" {
				ftype = media.FileType(strings.ToLower(fileType))
			}
			var duration *int
			if cmd.Flags().Changed("duration") {
				duration = &durationMS
			}
			key, err := uploader.UploadFile(cmd.Context(), media.FromPath(path), name, ftype, duration)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", green("✓"), key)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name sent to the endpoint (default: base name)")
	cmd.Flags().StringVar(&fileType, "type", "", "File category: opus|mp4|pdf|doc|xls|ppt|stream")
	cmd.Flags().IntVar(&durationMS, "duration", 0, "Media duration in milliseconds")
	return cmd
}

func newUploadCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a path, picking the image or file endpoint by extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uploader, err := buildUploader(opts)
			if err != nil {
				return err
			}
			key, err := uploader.UploadAuto(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", green("✓"), key)
			return nil
		},
	}
}

func newClassifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <path>",
		Short: "Show how a path would be classified (no network)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			resolved := media.ResolveMediaPath(args[0])
			fmt.Printf("%s %s\n", bold("resolved:"), resolved)
			fmt.Printf("%s %s\n", bold("type:"), media.ClassifyFileType(resolved))
			fmt.Printf("%s %v\n", bold("image:"), media.IsImagePath(resolved))
			fmt.Printf("%s %v\n", bold("audio:"), media.IsAudioPath(resolved))
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("larkmedia %s\n", version)
		},
	}
}
