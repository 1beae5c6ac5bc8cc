package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fenrel/daygrid/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the day view",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	return ui.Run(cfg)
}

func today() string {
	return time.Now().In(cfg.Location()).Format("2006-01-02")
}
