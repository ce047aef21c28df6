package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge <num>",
	Short: "Delete an account record from the store",
	Long: `Remove the stored record of the account with the given index. The
next read sees the free default record. This is an operator tool; normal
state transitions never delete records.`,
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

		if err := p.Purge(ctx, num); err != nil {
			return err
		}

		fmt.Printf("Purged record for account %d\n", num)
		return nil
	},
}
