package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "vidtext <url>",
		Short:        "Extract a timestamped transcript from a remote video",
		Long:         "vidtext extracts a timestamped transcript for a remote video. It prefers an existing subtitle track and falls back to local whisper.cpp transcription of the audio when no track is usable.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("lang", "", "Target subtitle language (default from config, \"en\")")
	root.Flags().StringP("format", "f", "json", "Output format: json, table, or markdown")
	root.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	root.Flags().String("config", "", "Config file path (default: user config dir)")
	root.Flags().String("cache", "", "Cache directory for per-run workspaces")
	root.Flags().Bool("verbose", false, "Log stage progress even when stderr is not a terminal")

	// Hidden tool-path overrides (internal)
	root.Flags().String("ytdlp", "", "yt-dlp binary path")
	root.Flags().String("whisper-bin", "", "whisper.cpp binary path")
	root.Flags().String("whisper-model", "", "whisper.cpp model path")
	_ = root.Flags().MarkHidden("ytdlp")
	_ = root.Flags().MarkHidden("whisper-bin")
	_ = root.Flags().MarkHidden("whisper-model")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
