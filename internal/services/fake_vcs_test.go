package services

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"ticket/internal/domain"
)

// fakeStash is one stash entry of fakeVCS
type fakeStash struct {
	branch  string
	changes map[string]string
	hash    string
}

// fakeVCS is an in-memory working copy that behaves like git for the
// subset of operations the lifecycle issues.
type fakeVCS struct {
	branches map[string]bool
	calls    []string
	current  string
	failOn   map[string]error
	nextHash int
	staged   bool
	stashes  []fakeStash // newest first
	synced   int
	working  map[string]string
}

func newFakeVCS(trunk string) *fakeVCS {
	return &fakeVCS{
		branches: map[string]bool{trunk: true},
		current:  trunk,
		failOn:   map[string]error{},
		working:  map[string]string{},
	}
}

func (f *fakeVCS) call(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.failOn[name]
}

// addStash records a stash for branch directly, as if taken earlier
func (f *fakeVCS) addStash(branch string, changes map[string]string) string {
	f.nextHash++
	hash := fmt.Sprintf("%040d", f.nextHash)
	f.stashes = append([]fakeStash{{branch: branch, changes: changes, hash: hash}}, f.stashes...)
	return hash
}

func (f *fakeVCS) stashesFor(branch string) []fakeStash {
	var out []fakeStash
	for _, s := range f.stashes {
		if s.branch == branch {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeVCS) indexOf(ref string) (int, error) {
	var i int
	if _, err := fmt.Sscanf(ref, "stash@{%d}", &i); err != nil || i < 0 || i >= len(f.stashes) {
		return 0, &domain.CommandError{Command: "git stash " + ref, ExitCode: 1, Output: ref + " is not a valid reference"}
	}
	return i, nil
}

func (f *fakeVCS) BranchExists(_ context.Context, branch string) (bool, error) {
	if err := f.call("BranchExists", branch); err != nil {
		return false, err
	}
	return f.branches[branch], nil
}

func (f *fakeVCS) CurrentBranch(_ context.Context) (string, error) {
	if err := f.call("CurrentBranch"); err != nil {
		return "", err
	}
	return f.current, nil
}

func (f *fakeVCS) ListBranches(_ context.Context, pattern string) ([]string, error) {
	if err := f.call("ListBranches", pattern); err != nil {
		return nil, err
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var out []string
	for b := range f.branches {
		if strings.HasPrefix(b, prefix) {
			out = append(out, b)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (f *fakeVCS) Checkout(_ context.Context, branch string) error {
	if err := f.call("Checkout", branch); err != nil {
		return err
	}
	if !f.branches[branch] {
		return &domain.CommandError{Command: "git checkout " + branch + " --", ExitCode: 1}
	}
	f.current = branch
	return nil
}

func (f *fakeVCS) CreateBranch(_ context.Context, branch, startPoint string) error {
	if err := f.call("CreateBranch", branch, startPoint); err != nil {
		return err
	}
	if f.branches[branch] {
		return &domain.CommandError{Command: "git checkout -b " + branch, ExitCode: 128, Output: "already exists"}
	}
	f.branches[branch] = true
	f.current = branch
	return nil
}

func (f *fakeVCS) ForceDeleteBranch(_ context.Context, branch string) error {
	if err := f.call("ForceDeleteBranch", branch); err != nil {
		return err
	}
	if !f.branches[branch] || branch == f.current {
		return &domain.CommandError{Command: "git branch -D " + branch, ExitCode: 1}
	}
	delete(f.branches, branch)
	return nil
}

func (f *fakeVCS) StageAll(_ context.Context) error {
	if err := f.call("StageAll"); err != nil {
		return err
	}
	f.staged = len(f.working) > 0
	return nil
}

func (f *fakeVCS) UnstageAll(_ context.Context) error {
	if err := f.call("UnstageAll"); err != nil {
		return err
	}
	f.staged = false
	return nil
}

func (f *fakeVCS) ListStashes(_ context.Context) ([]domain.Stash, error) {
	if err := f.call("ListStashes"); err != nil {
		return nil, err
	}
	out := make([]domain.Stash, 0, len(f.stashes))
	for i, s := range f.stashes {
		out = append(out, domain.Stash{
			Branch:  s.branch,
			Hash:    s.hash,
			Ref:     fmt.Sprintf("stash@{%d}", i),
			Subject: "WIP on " + s.branch + ": abc1234 work",
		})
	}
	return out, nil
}

func (f *fakeVCS) PushStash(_ context.Context) error {
	if err := f.call("PushStash"); err != nil {
		return err
	}
	if len(f.working) == 0 {
		return nil
	}
	f.addStash(f.current, maps.Clone(f.working))
	f.working = map[string]string{}
	f.staged = false
	return nil
}

func (f *fakeVCS) PopStash(_ context.Context, ref string) error {
	if err := f.call("PopStash", ref); err != nil {
		return err
	}
	i, err := f.indexOf(ref)
	if err != nil {
		return err
	}
	maps.Copy(f.working, f.stashes[i].changes)
	f.staged = true
	f.stashes = slices.Delete(f.stashes, i, i+1)
	return nil
}

func (f *fakeVCS) DropStash(_ context.Context, ref string) error {
	if err := f.call("DropStash", ref); err != nil {
		return err
	}
	i, err := f.indexOf(ref)
	if err != nil {
		return err
	}
	f.stashes = slices.Delete(f.stashes, i, i+1)
	return nil
}

func (f *fakeVCS) SyncTrunk(_ context.Context) error {
	if err := f.call("SyncTrunk"); err != nil {
		return err
	}
	f.synced++
	return nil
}

// fakeSessions is an in-memory session host
type fakeSessions struct {
	calls   []string
	killErr error
	running map[string]bool
}

func newFakeSessions(running ...string) *fakeSessions {
	f := &fakeSessions{running: map[string]bool{}}
	for _, name := range running {
		f.running[name] = true
	}
	return f
}

func (f *fakeSessions) ListSessions(_ context.Context) ([]string, error) {
	f.calls = append(f.calls, "ListSessions")
	names := slices.Collect(maps.Keys(f.running))
	sort.Strings(names)
	return names, nil
}

func (f *fakeSessions) KillSession(_ context.Context, name string) error {
	f.calls = append(f.calls, "KillSession "+name)
	if f.killErr != nil {
		return f.killErr
	}
	if !f.running[name] {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, name)
	}
	delete(f.running, name)
	return nil
}
