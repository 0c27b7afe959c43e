/*
Package config loads run options for darkrc.

Only run options live here: which directory to scan, which files to
include, how many workers, and whether to write results. The rewrite
rules themselves are fixed data in pkg/rules and are deliberately not
configurable.

Supported formats, selected by extension through a parser registry:
  - .yaml / .yml — YAML (strict, unknown fields rejected)
  - .hcl — HCL
  - .darkrc — tries YAML first, then HCL

A missing config file is not an error: the defaults (root "src",
include "*.tsx", one worker) reproduce the tool's plain no-argument
invocation.
*/
package config
