package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <num>",
	Short: "Print the raw record of an account",
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

		rec, err := a.UserInfo(ctx)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}
