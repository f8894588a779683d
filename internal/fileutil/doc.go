// Package fileutil walks a source tree the way gitignore-aware search tools do
// and reads files line by line for the reminder scanner.
//
// # Walking
//
// Walk delegates traversal to gocodewalker, which honors .gitignore and .ignore
// files in every directory. WalkOptions.IgnoreFileName adds one more ignore file
// name with the same syntax (reminder-lint uses ".remindignore"):
//
//	res, err := fileutil.Walk(ctx, fileutil.WalkOptions{
//	    Root:           ".",
//	    IgnoreFileName: ".remindignore",
//	    IncludeHidden:  true,
//	    ExcludeDirs:    fileutil.DefaultExcludeDirs,
//	}, func(path string) {
//	    fmt.Println(path)
//	})
//
// Entries the walker cannot read are collected in WalkResult.Errors and the walk
// continues. Only an unusable root is fatal. Walk order is whatever the walker
// produces; callers that need a stable order must sort.
//
// # Reading
//
// ReadLines reads a whole file, rejects it with ErrBinaryFile when it contains a
// NUL byte, and otherwise reports each line with its 1-based number.
package fileutil
