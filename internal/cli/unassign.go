package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unassignCmd = &cobra.Command{
	Use:   "unassign <num>",
	Short: "Release an account",
	Long: `Clear the assignment timestamp and requester contact of the account
with the given index. A disabled flag set on the account survives the
release.`,
	Args: cobra.ExactArgs(1),
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

		if err := a.Unassign(ctx); err != nil {
			return err
		}

		fmt.Printf("Released %s\n", a.Username())
		return nil
	},
}
