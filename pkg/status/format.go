package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/walteh/darkrc/pkg/rules"
)

// 🎨 Display configuration
const (
	ruleIndent = 4  // spaces to indent rule entries
	kindWidth  = 8  // width for rule kind
	nameWidth  = 40 // base width for matcher text
)

// 🎯 FormatRule renders one rewrite rule for display
func FormatRule(index int, r rules.Rule) string {
	var kind, matcher string
	if r.Token != nil {
		kind = color.CyanString("%-*s", kindWidth, "token")
		matcher = r.Name
	} else {
		kind = color.YellowString("%-*s", kindWidth, "literal")
		matcher = r.From
	}

	return fmt.Sprintf("%s%2d. %s %-*s -> %s",
		strings.Repeat(" ", ruleIndent),
		index+1,
		kind,
		nameWidth,
		matcher,
		r.To,
	)
}

// 📝 FormatRuleTable renders the full ordered rule table
func FormatRuleTable(table []rules.Rule, post rules.Rule) string {
	var b strings.Builder
	for i, r := range table {
		b.WriteString(FormatRule(i, r))
		b.WriteByte('\n')
	}
	b.WriteString(FormatRule(len(table), post))
	b.WriteByte('\n')
	return b.String()
}
