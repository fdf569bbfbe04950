// Package reconcile merges an edit submission back into canonical project
// collections. Every function returns a fresh slice and leaves its input alone.
package reconcile

import (
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/pattern"
)

// Releases drops placeholder rows (empty version) and releases listed in
// toDelete, applies groupID to every survivor when it is non-empty, and
// re-derives the documentation URL patterns from each release's version.
// Versions in toDelete that match nothing are ignored.
func Releases(releases []domain.Release, toDelete []string, groupID string) []domain.Release {
	drop := make(map[string]struct{}, len(toDelete))
	for _, v := range toDelete {
		drop[v] = struct{}{}
	}

	out := make([]domain.Release, 0, len(releases))
	for _, r := range releases {
		if r.Version == "" {
			continue
		}
		if _, ok := drop[r.Version]; ok {
			continue
		}
		if groupID != "" {
			r.GroupID = groupID
		}
		out = append(out, Normalize(r))
	}
	return out
}

// Normalize returns r with its documentation URLs in pattern form.
// A release without a status gets the one implied by its version.
func Normalize(r domain.Release) domain.Release {
	if r.Status == "" {
		r.Status = pattern.StatusOf(r.Version)
	}
	r.RefDocURL = pattern.ToPattern(r.RefDocURL, r.Version)
	r.APIDocURL = pattern.ToPattern(r.APIDocURL, r.Version)
	return r
}

// Denormalize returns the releases in the form the editor works on: every
// documentation URL carries the {version} placeholder. Stored templates pass
// through unchanged and legacy concrete URLs are converted, so a version
// renamed in the editor carries its URLs along on save. The stored releases
// are not touched.
func Denormalize(releases []domain.Release) []domain.Release {
	out := make([]domain.Release, 0, len(releases))
	for _, r := range releases {
		r.RefDocURL = pattern.ToPattern(r.RefDocURL, r.Version)
		r.APIDocURL = pattern.ToPattern(r.APIDocURL, r.Version)
		out = append(out, r)
	}
	return out
}
