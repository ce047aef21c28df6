package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign <num> <ip> <email>",
	Short: "Assign an account to a requester",
	Long: `Assign the account with the given index to the requester identified
by IP and email. The account record is replaced outright; a previously set
disabled flag does not survive an assign.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		num, err := parseNum(args[0])
		if err != nil {
			return err
		}
		ip, email := args[1], args[2]

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

		if err := a.Assign(ctx, ip, email); err != nil {
			return err
		}

		fmt.Printf("Assigned %s to %s (%s)\n", a.Username(), email, ip)
		return nil
	},
}
