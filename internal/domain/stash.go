package domain

import "strings"

// Stash is one entry of the VCS stash list
type Stash struct {
	// Branch is the branch that was checked out when the stash was taken.
	// Empty when the subject does not record one.
	Branch string
	// Hash is the stash commit. Unlike Ref it does not change when older
	// entries are dropped.
	Hash string
	// Ref is the reflog selector (stash@{n}) as of the listing it came from
	Ref     string
	Subject string
}

// ParseStashSubject extracts the origin branch from a stash reflog subject.
//
// git writes "WIP on <branch>: <sha> <msg>" for plain stashes and
// "On <branch>: <msg>" when a message was given.
func ParseStashSubject(subject string) string {
	rest, ok := strings.CutPrefix(subject, "WIP on ")
	if !ok {
		rest, ok = strings.CutPrefix(subject, "On ")
		if !ok {
			return ""
		}
	}
	branch, _, found := strings.Cut(rest, ":")
	if !found {
		return ""
	}
	return branch
}

// BelongsTo reports whether the stash was taken on the ticket's branch
func (s Stash) BelongsTo(id TicketID) bool {
	return s.Branch == id.BranchName()
}
