package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pastedown/pastedown/internal/automation"
	"github.com/pastedown/pastedown/internal/clipboard"
	"github.com/pastedown/pastedown/internal/config"
	"github.com/pastedown/pastedown/internal/convert"
	"github.com/pastedown/pastedown/internal/hotkey"
	"github.com/pastedown/pastedown/internal/ipc"
	"github.com/pastedown/pastedown/internal/notify"
	"github.com/pastedown/pastedown/internal/place"
	"github.com/pastedown/pastedown/internal/target"
	"github.com/pastedown/pastedown/internal/workflow"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the hotkey service",
		Args:  cobra.NoArgs,
		RunE:  runService,
	}
	addConfigFlag(cmd)
	addLoggingFlags(cmd)
	cmd.Flags().String("hotkey", "", "override the configured hotkey binding")
	return cmd
}

func runService(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)

	configPath, _ := cmd.Flags().GetString("config")
	cfg, v, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if hk, _ := cmd.Flags().GetString("hotkey"); hk != "" {
		cfg.Hotkey = hk
	}

	if ipc.IsRunning() {
		return fmt.Errorf("another pastedown instance is already running")
	}

	backend := clipboard.New()
	defer backend.Close()

	pandoc := convert.NewPandoc(cfg.PandocPath, nil)
	pandoc.OnHeal = func(path string) {
		cfg.PandocPath = path
		if err := config.Save(v, cfg); err != nil {
			slog.Warn("could not persist converter path fix", "err", err)
		}
	}
	// The converter runs with the save directory as its cwd so filters that
	// emit side artifacts land somewhere writable.
	workDir := cfg.SaveDir
	if workDir == "" {
		workDir = filepath.Join(config.DataDir(), "exports")
	}
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		slog.Warn("could not create converter work dir", "path", workDir, "err", err)
		workDir = ""
	}
	svc := convert.NewService(pandoc, convert.Options{
		ReferenceDocx:     cfg.ReferenceDocx,
		Filters:           cfg.PandocFilters,
		RequestHeaders:    cfg.RequestHeaders,
		KeepFormula:       cfg.KeepFormula,
		LatexReplacements: cfg.LatexReplace,
		WorkDir:           workDir,
	}, config.DataDir())

	var notifier notify.Notifier = notify.New()
	if !cfg.Notify {
		notifier = notify.Discard{}
	}

	tempDir := cfg.TempDir
	if tempDir == "" {
		tempDir = filepath.Join(config.DataDir(), "temp")
	}

	scripter := automation.NewScripter()
	engine := &workflow.Engine{
		Clip:     backend,
		Detector: target.NewDetector(),
		Convert:  svc,
		Notifier: notifier,
		Doc: &place.Document{
			Scripter:        scripter,
			TempDir:         tempDir,
			MoveCursorToEnd: cfg.MoveCursorEnd,
		},
		Sheet: &place.Spreadsheet{
			Scripter:   scripter,
			KeepFormat: cfg.ExcelKeepFmt,
			CodeFill:   cfg.ExcelCodeBG,
		},
		Cfg: cfg,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		err := ipc.Serve(ctx, func(command string) error {
			switch command {
			case ipc.CmdPing:
				return nil
			case ipc.CmdTrigger:
				go engine.HandlePress()
				return nil
			}
			return fmt.Errorf("unknown command %q", command)
		})
		if err != nil && ctx.Err() == nil {
			slog.Error("control socket stopped", "err", err)
		}
	}()

	listener, err := hotkey.NewListener(cfg.Hotkey)
	if err != nil {
		return err
	}
	slog.Info("pastedown running", "hotkey", cfg.Hotkey, "version", Version)

	if err := listener.Run(ctx, func() { go engine.HandlePress() }); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("pastedown stopped")
	return nil
}
