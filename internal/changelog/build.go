package changelog

import (
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// ChangeLog is the ordered list of change groups, newest first. It is
// built once from the full set of releases and changes and is read-only
// afterward.
type ChangeLog struct {
	groups []ChangeGroup
}

// Build partitions changes into release-bounded groups and threads the
// version computation across them in chronological order.
//
// Both inputs are copied and stably sorted ascending by timestamp, so
// callers keep their slices and equal timestamps retain their given
// order. Walking the sorted changes, a change dated strictly after the
// current release closes that release's group and advances to the next
// release; a change dated exactly at the release timestamp still belongs
// to it. The closed group's derived version seeds the next group.
//
// The release list must be non-empty. A change dated after every known
// release is reported as ErrReleasesExhausted; documents parsed by this
// package cannot trigger it because of the synthetic final release.
func Build(releases []Release, changes []Change) (*ChangeLog, error) {
	if len(releases) == 0 {
		return nil, fmt.Errorf("%w: no releases given", ErrReleasesExhausted)
	}

	releases = slices.Clone(releases)
	changes = slices.Clone(changes)
	slices.SortStableFunc(releases, func(a, b Release) int { return a.Timestamp.Compare(b.Timestamp) })
	slices.SortStableFunc(changes, func(a, b Change) int { return a.Timestamp.Compare(b.Timestamp) })

	version := ZeroVersion()
	current := releases[0]
	next := 1
	var pending []Change
	var groups []ChangeGroup

	for _, change := range changes {
		if change.Timestamp.After(current.Timestamp) {
			group := NewChangeGroup(current, pending, version)
			groups = append(groups, group)
			if next >= len(releases) {
				return nil, fmt.Errorf("%w: change at %s is after the final release",
					ErrReleasesExhausted, change.Timestamp)
			}
			current = releases[next]
			next++
			version = group.Version
			pending = nil
		}
		pending = append(pending, change)
	}
	groups = append(groups, NewChangeGroup(current, pending, version))

	slices.Reverse(groups)
	return &ChangeLog{groups: groups}, nil
}

// BuildDocument builds the change-group list from a parsed document.
func BuildDocument(doc *Document) (*ChangeLog, error) {
	return Build(doc.Releases, doc.Changes)
}

// Groups returns the change groups, newest first. The returned slice is
// owned by the ChangeLog and must not be modified.
func (cl *ChangeLog) Groups() []ChangeGroup {
	return cl.groups
}

// LatestVersion returns the newest group's derived version.
func (cl *ChangeLog) LatestVersion() semver.Version {
	return cl.groups[0].Version
}
