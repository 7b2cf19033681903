// Package incblame parses the output of git blame --incremental into a per-line attribution table. Use Parse (or ParseReader for subprocess output) to get a Table, then index it with Table.At using zero-based line numbers. See tests for examples.
package incblame
