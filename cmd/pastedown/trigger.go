package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pastedown/pastedown/internal/ipc"
)

func newTriggerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trigger",
		Short: "Ask the running service to convert the clipboard now",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			reply, err := ipc.Send(ipc.CmdTrigger)
			if err != nil {
				return fmt.Errorf("no running pastedown service: %w", err)
			}
			if reply != "ok" {
				return fmt.Errorf("service refused: %s", reply)
			}
			fmt.Println("triggered")
			return nil
		},
	}
}
