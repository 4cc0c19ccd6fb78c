// Package main removes build output, coverage profiles and lintwalk's own log.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	var failed bool
	for _, target := range targets() {
		err := os.RemoveAll(target)
		switch {
		case err != nil:
			failed = true
			_, _ = fmt.Printf("❌ Failed to remove %s: %v\n", target, err)
		default:
			_, _ = fmt.Printf("✅ Removed %s\n", target)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// targets lists the existing paths to remove.
func targets() []string {
	var found []string
	for _, pattern := range []string{"bin", ".lintwalk.log", "coverage*", "*.out", "*.test", "profile.cov"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			_, _ = fmt.Printf("❌ Bad pattern %s: %v\n", pattern, err)
			continue
		}
		for _, m := range matches {
			if _, err := os.Lstat(m); err == nil || !errors.Is(err, os.ErrNotExist) {
				found = append(found, m)
			}
		}
	}
	return found
}
