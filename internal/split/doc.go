// Package split splits a single commit into two consecutive commits.
//
// The work happens in three phases:
//
//  1. [Partitioner] reads the file-level changes of the target commit
//     and asks a [Selector] which of them belong to the first commit.
//  2. [Review] shows the resulting [Partition] and asks for confirmation.
//  3. [Executor] creates a new branch and rewrites history on it
//     with an interactive rebase that stops at the target commit.
//
// Nothing is modified until the [Executor] runs.
package split

//go:generate mockgen -destination=mocks_test.go -package=split -write_package_comment=false . GitRepository,GitWorktree
