package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pastedown/pastedown/internal/clipboard"
	"github.com/pastedown/pastedown/internal/config"
	"github.com/pastedown/pastedown/internal/convert"
	"github.com/pastedown/pastedown/internal/hotkey"
	"github.com/pastedown/pastedown/internal/ipc"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check converter, clipboard, and configuration health",
		Args:  cobra.NoArgs,
		RunE:  runDoctor,
	}
	addConfigFlag(cmd)
	addLoggingFlags(cmd)
	return cmd
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	failures := 0
	check := func(name string, err error, detail string) {
		if err != nil {
			failures++
			fmt.Printf("fail  %-12s %v\n", name, err)
			return
		}
		fmt.Printf("ok    %-12s %s\n", name, detail)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, _, err := config.Load(configPath)
	check("config", err, config.Dir())
	if err != nil {
		return fmt.Errorf("doctor: configuration unusable")
	}

	_, _, err = hotkey.ParseSpec(cfg.Hotkey)
	check("hotkey", err, cfg.Hotkey)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	version, err := convert.NewPandoc(cfg.PandocPath, nil).Version(ctx)
	check("converter", err, version)

	backend := clipboard.New()
	defer backend.Close()
	check("clipboard", nil, backend.Name())

	err = os.MkdirAll(config.DataDir(), 0o755)
	check("data dir", err, config.DataDir())

	if ipc.IsRunning() {
		fmt.Println("ok    service      running")
	} else {
		fmt.Println("info  service      not running")
	}

	if failures > 0 {
		return fmt.Errorf("doctor: %d check(s) failed", failures)
	}
	return nil
}
