package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	freeColor     = color.New(color.FgGreen)
	assignedColor = color.New(color.FgYellow)
	disabledColor = color.New(color.FgRed)
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List the state of every account in the pool",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, cleanup, err := newPoolForCmd()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := opCtx(cfg.OpTimeout)
		defer cancel()

		statuses, err := p.Statuses(ctx)
		if err != nil {
			return err
		}

		free := 0
		for _, s := range statuses {
			var state string
			switch {
			case s.Disabled:
				state = disabledColor.Sprint("disabled")
			case s.Assigned:
				state = assignedColor.Sprint("assigned")
			default:
				state = freeColor.Sprint("free")
				free++
			}

			line := fmt.Sprintf("%-10s %s", s.Username, state)
			if s.Assigned {
				line += fmt.Sprintf("  %s (%s)", s.Email, s.IP)
			}
			fmt.Println(line)
		}

		fmt.Printf("\n%d/%d assignable\n", free, len(statuses))
		return nil
	},
}
