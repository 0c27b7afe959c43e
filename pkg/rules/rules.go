package rules

import (
	"regexp"
	"strings"
)

// Rule is a single ordered rewrite applied to file content. A rule either
// matches a whole utility token (Token, word-boundary anchored) or a literal
// substring (From). Exactly one of Token/From is set.
type Rule struct {
	// Name identifies the rule in logs and test output
	Name string

	// Token matches a whole class token; nil for literal rules
	Token *regexp.Regexp

	// From is the literal substring to replace when Token is nil
	From string

	// To is the replacement text
	To string
}

// Apply runs the rule over content, replacing every occurrence.
// Returns the new content and the number of replacements made.
func (r Rule) Apply(content string) (string, int) {
	if r.Token != nil {
		n := len(r.Token.FindAllStringIndex(content, -1))
		if n == 0 {
			return content, 0
		}
		return r.Token.ReplaceAllString(content, r.To), n
	}
	n := strings.Count(content, r.From)
	if n == 0 {
		return content, 0
	}
	return strings.ReplaceAll(content, r.From, r.To), n
}

// pair builds a token-pairing rule: every whole-token occurrence of the
// light class gets its dark counterpart appended after a single space.
func pair(light, dark string) Rule {
	return Rule{
		Name:  light,
		Token: regexp.MustCompile(`\b` + regexp.QuoteMeta(light) + `\b`),
		To:    light + " " + dark,
	}
}

// collapse builds a literal cleanup rule
func collapse(from, to string) Rule {
	return Rule{
		Name: from,
		From: from,
		To:   to,
	}
}

// darkMode is the fixed rule table. Order is significant: the dedup rules
// clean up tokens duplicated by the pairing rules, the gray-700 rename runs
// after them and can itself produce the adjacency its trailing collapse
// targets. The gray-800/black collapse appears twice on purpose, once on
// either side of the rename.
var darkMode = []Rule{
	pair("bg-white", "dark:bg-black"),
	pair("bg-gray-50", "dark:bg-gray-900"),
	pair("bg-gray-100", "dark:bg-gray-800"),
	pair("text-gray-900", "dark:text-white"),
	pair("text-gray-800", "dark:text-gray-100"),
	pair("text-gray-700", "dark:text-gray-200"),
	pair("text-gray-600", "dark:text-gray-300"),
	pair("text-gray-500", "dark:text-gray-400"),
	pair("border-gray-200", "dark:border-gray-700"),
	pair("border-gray-300", "dark:border-gray-600"),
	pair("divide-gray-200", "dark:divide-gray-700"),
	collapse("dark:bg-black dark:bg-black", "dark:bg-black"),
	// black wins over gray-800 when both backgrounds collide, in either order
	collapse("dark:bg-black dark:bg-gray-800", "dark:bg-black"),
	collapse("dark:bg-gray-800 dark:bg-black", "dark:bg-black"),
	collapse("dark:text-white dark:text-white", "dark:text-white"),
	// one doubled-token collapse per paired dark counterpart, so a rerun
	// over an already-converted tree is a no-op
	collapse("dark:bg-gray-900 dark:bg-gray-900", "dark:bg-gray-900"),
	collapse("dark:bg-gray-800 dark:bg-gray-800", "dark:bg-gray-800"),
	collapse("dark:text-gray-100 dark:text-gray-100", "dark:text-gray-100"),
	collapse("dark:text-gray-200 dark:text-gray-200", "dark:text-gray-200"),
	collapse("dark:text-gray-300 dark:text-gray-300", "dark:text-gray-300"),
	collapse("dark:text-gray-400 dark:text-gray-400", "dark:text-gray-400"),
	collapse("dark:border-gray-700 dark:border-gray-700", "dark:border-gray-700"),
	collapse("dark:border-gray-600 dark:border-gray-600", "dark:border-gray-600"),
	collapse("dark:divide-gray-700 dark:divide-gray-700", "dark:divide-gray-700"),
	// standardize lighter gray backgrounds on 800
	collapse("dark:bg-gray-700", "dark:bg-gray-800"),
	// the rename can recreate both collisions, collapse them again
	collapse("dark:bg-gray-800 dark:bg-gray-800", "dark:bg-gray-800"),
	collapse("dark:bg-gray-800 dark:bg-black", "dark:bg-black"),
}

// postPass runs after the full table: the gray-700 rename can leave a
// freshly paired dark:bg-black followed by the renamed dark:bg-gray-800.
var postPass = collapse("dark:bg-black dark:bg-gray-800", "dark:bg-black")

// DarkMode returns the ordered dark-mode rule table
func DarkMode() []Rule {
	out := make([]Rule, len(darkMode))
	copy(out, darkMode)
	return out
}

// PostPass returns the final cleanup rule applied after the table
func PostPass() Rule {
	return postPass
}
