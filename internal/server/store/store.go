// Package store provides access to the hierarchical key-path database that
// holds locker data. Paths are slash separated, e.g. "lockers/L1/notifications".
package store

import (
	"context"
	"strings"
)

// Store removes whole subtrees by path. Removing a path that does not exist
// is not an error.
type Store interface {
	Remove(ctx context.Context, path string) error
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
