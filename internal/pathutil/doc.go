// Package pathutil guards files the CLI writes with -o.
//
// [SanitizeOutputPath] resolves a user-supplied path to an absolute one and
// refuses symlink targets. [WriteFile] sanitizes then writes with owner-only
// permissions:
//
//	if err := pathutil.WriteFile(flags.Output, data); err != nil {
//	    return err
//	}
package pathutil
