/*
Package status handles user-facing output.

Two surfaces: UserLogger prints one console line per rewritten file (and
mirrors everything into zerolog for debugging), and FormatRuleTable
renders the fixed rule table for the `darkrc rules` command. Unchanged
files deliberately produce no console output.
*/
package status
