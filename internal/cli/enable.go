package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <num>",
	Short: "Clear the disabled flag on an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := parseNum(args[0])
		if err != nil {
			return err
		}

		p, cfg, cleanup, err := newPoolForCmd()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := opCtx(cfg.OpTimeout)
		defer cancel()

		a, err := p.Account(num)
		if err != nil {
			return err
		}

		if err := a.Enable(ctx); err != nil {
			return err
		}

		fmt.Printf("Enabled %s\n", a.Username())
		return nil
	},
}
