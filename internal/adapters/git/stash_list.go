package git

import (
	"fmt"
	"strings"

	"ticket/internal/domain"
)

// fieldSeparator is the ASCII unit separator, which cannot occur in refs or hashes
const fieldSeparator = "\x1f"

// stashListFormat prints selector, stash commit and reflog subject per line
const stashListFormat = "%gd%x1f%H%x1f%gs"

// ParseStashList parses `git stash list --format=%gd%x1f%H%x1f%gs` output.
// Order is preserved (git lists newest first).
func ParseStashList(output string) ([]domain.Stash, error) {
	var stashes []domain.Stash
	for i, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.SplitN(line, fieldSeparator, 3)
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed stash list line %d: %q", i+1, line)
		}
		ref, hash, subject := fields[0], fields[1], fields[2]
		if !strings.HasPrefix(ref, "stash@{") || hash == "" {
			return nil, fmt.Errorf("malformed stash list line %d: %q", i+1, line)
		}

		stashes = append(stashes, domain.Stash{
			Branch:  domain.ParseStashSubject(subject),
			Hash:    hash,
			Ref:     ref,
			Subject: subject,
		})
	}
	return stashes, nil
}
