package cmd

import (
	"fmt"

	"gitee.com/taoJie_1/fin-assistant/global"
	"gitee.com/taoJie_1/fin-assistant/task"
	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Load the rule catalog from the database once and report what is active",
	RunE: func(cmd *cobra.Command, args []string) error {
		initSvc, err := bootstrap(nil)
		if err != nil {
			return err
		}
		defer initSvc.Close()

		if err := initSvc.Run(); err != nil {
			return err
		}
		if err := task.NewManager().RuleReloader(); err != nil {
			return err
		}

		s := global.Selector.Get()
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "rules: %d, terms: %d\n", len(s.Rules()), len(s.Terms()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}
