package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/forPelevin/vidtext/internal/config"
	"github.com/forPelevin/vidtext/internal/pipeline"
	"github.com/forPelevin/vidtext/internal/types"
)

func run(cmd *cobra.Command, videoURL string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Reject a bad output format before any downloading happens.
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "table", "markdown":
	default:
		return fmt.Errorf("unknown format %q (want json, table, or markdown)", format)
	}

	lang := firstNonEmpty(
		flagValue(cmd, "lang"),
		os.Getenv("VIDTEXT_LANG"),
		cfg.Language,
	)

	pcfg := pipeline.Config{
		VideoURL:     videoURL,
		Language:     lang,
		CacheDir:     firstNonEmpty(flagValue(cmd, "cache"), os.Getenv("VIDTEXT_CACHE"), cfg.CacheDir),
		YtDlpPath:    firstNonEmpty(flagValue(cmd, "ytdlp"), os.Getenv("VIDTEXT_YTDLP"), cfg.Tools.YtDlp),
		WhisperBin:   firstNonEmpty(flagValue(cmd, "whisper-bin"), os.Getenv("VIDTEXT_WHISPER_BIN"), cfg.Tools.WhisperBin),
		WhisperModel: firstNonEmpty(flagValue(cmd, "whisper-model"), os.Getenv("VIDTEXT_WHISPER_MODEL"), cfg.Tools.WhisperModel),
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose || isatty.IsTerminal(os.Stderr.Fd()) {
		pcfg.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	if err := pcfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tr, err := pipeline.Run(ctx, pcfg)
	if err != nil {
		return err
	}

	rendered, err := render(tr, format)
	if err != nil {
		return err
	}

	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(rendered), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func render(tr types.Transcript, format string) (string, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(tr, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal transcript: %w", err)
		}
		return string(b), nil
	case "table":
		return renderTranscriptTable(tr), nil
	case "markdown":
		return tr.Markdown(), nil
	default:
		return "", fmt.Errorf("unknown format %q (want json, table, or markdown)", format)
	}
}

func flagValue(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
