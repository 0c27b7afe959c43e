package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/darkrc/pkg/rules"
	"github.com/walteh/darkrc/pkg/status"
)

// newRulesCmd creates the rules command
func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the fixed rewrite rule table in application order",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), status.FormatRuleTable(rules.DarkMode(), rules.PostPass()))
		},
	}
}
