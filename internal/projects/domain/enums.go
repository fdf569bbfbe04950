package domain

// Category classifies a project's maturity.
type Category string

const (
	CategoryIncubator Category = "incubator"
	CategoryActive    Category = "active"
	CategoryAttic     Category = "attic"
	CategoryCommunity Category = "community"
)

// Categories is the fixed category enumeration offered by the editor.
// The first entry is the default for new projects.
var Categories = []Category{
	CategoryIncubator,
	CategoryActive,
	CategoryAttic,
	CategoryCommunity,
}

func DefaultCategory() Category { return Categories[0] }

func (c Category) Valid() bool {
	switch c {
	case CategoryIncubator, CategoryActive, CategoryAttic, CategoryCommunity:
		return true
	}
	return false
}

// ReleaseStatus describes how far along the release train a version is.
type ReleaseStatus string

const (
	StatusSnapshot            ReleaseStatus = "SNAPSHOT"
	StatusMilestone           ReleaseStatus = "MILESTONE"
	StatusReleaseCandidate    ReleaseStatus = "RELEASE_CANDIDATE"
	StatusGeneralAvailability ReleaseStatus = "GENERAL_AVAILABILITY"
)

func (s ReleaseStatus) Valid() bool {
	switch s {
	case StatusSnapshot, StatusMilestone, StatusReleaseCandidate, StatusGeneralAvailability:
		return true
	}
	return false
}
