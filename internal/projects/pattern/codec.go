// Package pattern converts between concrete release values and their
// version-independent pattern form.
//
// A pattern is any text in which the concrete version has been replaced by
// Placeholder, e.g. "https://docs.example.io/core/{version}/reference/".
// Storing documentation URLs as patterns keeps them valid when a release is
// renamed, and lets releases of the same family share the same templates.
package pattern

import (
	"regexp"
	"strings"

	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
)

const Placeholder = "{version}"

// ToPattern replaces every occurrence of version in text with Placeholder.
// Text is returned unchanged when version is empty or does not occur.
func ToPattern(text, version string) string {
	if version == "" || !strings.Contains(text, version) {
		return text
	}
	return strings.ReplaceAll(text, version, Placeholder)
}

// FromPattern substitutes version for every Placeholder in pattern.
func FromPattern(pattern, version string) string {
	if !strings.Contains(pattern, Placeholder) {
		return pattern
	}
	return strings.ReplaceAll(pattern, Placeholder, version)
}

var familyRe = regexp.MustCompile(`^(\d+)\.(\d+)\.`)

// Family returns the version family used to group releases,
// "1.2.3.RELEASE" becomes "1.2.x".
func Family(version string) string {
	m := familyRe.FindStringSubmatch(version)
	if m == nil {
		return version
	}
	return m[1] + "." + m[2] + ".x"
}

var (
	snapshotRe  = regexp.MustCompile(`(?i)[.-]?(BUILD-)?SNAPSHOT$`)
	milestoneRe = regexp.MustCompile(`(?i)[.-]M\d+$`)
	rcRe        = regexp.MustCompile(`(?i)[.-]RC\d+$`)
)

// StatusOf infers the release status from the version qualifier.
func StatusOf(version string) domain.ReleaseStatus {
	switch {
	case snapshotRe.MatchString(version):
		return domain.StatusSnapshot
	case milestoneRe.MatchString(version):
		return domain.StatusMilestone
	case rcRe.MatchString(version):
		return domain.StatusReleaseCandidate
	default:
		return domain.StatusGeneralAvailability
	}
}
