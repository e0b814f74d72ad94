package git

import (
	"fmt"
	"strings"
)

// SyncStrategy selects how trunk is brought up to date with its upstream
type SyncStrategy string

const (
	SyncNone SyncStrategy = "none"
	SyncPull SyncStrategy = "pull"
	SyncSVN  SyncStrategy = "svn"
)

// ParseSyncStrategy validates a strategy name
func ParseSyncStrategy(s string) (SyncStrategy, error) {
	strategy := SyncStrategy(strings.ToLower(strings.TrimSpace(s)))
	switch strategy {
	case SyncNone, SyncPull, SyncSVN:
		return strategy, nil
	}
	return "", fmt.Errorf("unknown sync strategy %q (valid: none, pull, svn)", s)
}

// args returns the git arguments for the strategy, nil for SyncNone
func (s SyncStrategy) args() ([]string, error) {
	switch s {
	case SyncNone:
		return nil, nil
	case SyncPull:
		return []string{"pull", "--rebase"}, nil
	case SyncSVN:
		return []string{"svn", "rebase"}, nil
	}
	return nil, fmt.Errorf("unknown sync strategy %q", string(s))
}

// CloneArgs returns the git arguments that clone url into dir for the strategy
func (s SyncStrategy) CloneArgs(url, dir string) []string {
	if s == SyncSVN {
		return []string{"svn", "clone", url, "-s", dir}
	}
	return []string{"clone", url, dir}
}
