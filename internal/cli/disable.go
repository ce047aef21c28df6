package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable <num>",
	Short: "Set the disabled flag on an account",
	Long: `Mark the account with the given index as disabled. Disabling does
not clear an existing assignment; it only removes the account from the
assignable set.`,
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

		if err := a.Disable(ctx); err != nil {
			return err
		}

		fmt.Printf("Disabled %s\n", a.Username())
		return nil
	},
}
