/*
Package rules holds the fixed dark-mode rewrite table.

	+-----------+     +-----------+     +-----------+     +-----------+
	|  pairing  | --> |   dedup   | --> |  rename   | --> | post-pass |
	+-----------+     +-----------+     +-----------+     +-----------+

🎯 Purpose:
- Pair every known light utility class with its dark: counterpart
- Collapse tokens duplicated by the pairing step
- Standardize dark:bg-gray-700 on dark:bg-gray-800

The table is ordered and the order is load-bearing: dedup rules clean up
what pairing appended, the gray-700 rename runs after them, and the
post-pass collapse exists only because the rename can recreate the
"dark:bg-black dark:bg-gray-800" adjacency late.

The table is data, not control flow, so tests can enumerate it and assert
on individual rules. It is fixed at process start and never configurable;
classes outside the table are left untouched.
*/
package rules
