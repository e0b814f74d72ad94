package services

import (
	"context"

	"ticket/internal/domain"
	"ticket/internal/logging"
	"ticket/internal/ports"
)

// StashLocator finds the stash entries that were taken on a ticket's branch
type StashLocator struct {
	stashReader ports.StashReader
}

// NewStashLocator creates a new StashLocator
func NewStashLocator(stashReader ports.StashReader) *StashLocator {
	return &StashLocator{stashReader: stashReader}
}

// Locate returns the ticket's stash entries as a lazy sequence, newest first.
// Nothing is queried until the sequence is consumed; call Locate again to
// start over.
func (l *StashLocator) Locate(ctx context.Context, id domain.TicketID) *StashSequence {
	return &StashSequence{
		ctx:         ctx,
		id:          id,
		seen:        make(map[string]bool),
		stashReader: l.stashReader,
	}
}

// StashSequence yields a ticket's stash entries one at a time.
//
// Every step re-reads the stash list, because refs renumber when the consumer
// drops or pops the entry it was just given. An entry is identified by its
// commit hash, so it is yielded at most once whether or not the consumer
// removes it.
type StashSequence struct {
	ctx         context.Context
	current     domain.Stash
	done        bool
	err         error
	id          domain.TicketID
	seen        map[string]bool
	stashReader ports.StashReader
}

// Next advances to the next entry. It returns false when the entries are
// exhausted or listing failed; check Err to tell the two apart.
func (s *StashSequence) Next() bool {
	if s.done {
		return false
	}

	stashes, err := s.stashReader.ListStashes(s.ctx)
	if err != nil {
		s.err = err
		s.done = true
		return false
	}

	for _, stash := range stashes {
		if !stash.BelongsTo(s.id) || s.seen[stash.Hash] {
			continue
		}
		s.seen[stash.Hash] = true
		s.current = stash
		logging.Logger.Debug("Found stash for ticket", "ticket", s.id.BranchName(), "ref", stash.Ref, "hash", stash.Hash)
		return true
	}

	s.done = true
	return false
}

// Stash returns the entry Next advanced to. Its Ref is valid until the stash
// list changes other than by removing this entry.
func (s *StashSequence) Stash() domain.Stash {
	return s.current
}

// Err returns the error that ended the sequence, if any
func (s *StashSequence) Err() error {
	return s.err
}

// First returns the newest entry. ok is false when the ticket has none.
func (s *StashSequence) First() (stash domain.Stash, ok bool, err error) {
	if s.Next() {
		return s.Stash(), true, nil
	}
	return domain.Stash{}, false, s.Err()
}

// Drain calls fn for every remaining entry, stopping at the first error
func (s *StashSequence) Drain(fn func(domain.Stash) error) error {
	for s.Next() {
		if err := fn(s.Stash()); err != nil {
			return err
		}
	}
	return s.Err()
}
