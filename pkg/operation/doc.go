/*
Package operation implements the core update flow: walk, rewrite, write back.

	+-----------+     +-----------+     +-----------+
	|  Walker   | --> | Rewriter  | --> |  Write    |
	| (discover)|     | (pkg/text)|     | (if diff) |
	+-----------+     +-----------+     +-----------+

🎯 Purpose:
- Enumerate matching files under the configured root
- Run each file's content through the fixed rule table
- Write back only files whose content actually changed
- Report every rewritten file to the user

🔄 Flow:
1. Walker produces file paths in lexical order
2. Each file is read, rewritten in memory, byte-compared to the original
3. Changed files are overwritten with their own permissions preserved
4. One console line per changed file, silence for unchanged ones

Files are independent units of work, so the runner can fan out across a
bounded worker pool; the default is sequential, which keeps report lines
in traversal order. The first error aborts the run — there is no
per-file recovery and no rollback of files already rewritten. This is a
one-shot developer tool over version-controlled sources, not a service.
*/
package operation
