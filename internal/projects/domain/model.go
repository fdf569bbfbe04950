package domain

import (
	"strings"
	"time"

	packageurl "github.com/package-url/packageurl-go"
)

// Project holds the admin-editable metadata of a single software project.
// It is storage-agnostic and used across repository, service and HTTP layers.
type Project struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name" binding:"required"`
	RepoURL            string    `json:"repo_url" binding:"omitempty,url"`
	SiteURL            string    `json:"site_url" binding:"omitempty,url"`
	Category           Category  `json:"category" binding:"required,oneof=incubator active attic community"`
	Releases           []Release `json:"releases" binding:"omitempty,dive"`
	Samples            []Sample  `json:"samples" binding:"omitempty,dive"`
	RawOverview        string    `json:"raw_overview"`
	RenderedOverview   string    `json:"rendered_overview"`
	RawBootConfig      string    `json:"raw_boot_config"`
	RenderedBootConfig string    `json:"rendered_boot_config"`
	ParentID           *string   `json:"parent_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Release is one version of a project. Documentation URLs are stored as
// templates where the version is written as the {version} placeholder.
type Release struct {
	Version    string        `json:"version"`
	Status     ReleaseStatus `json:"status" binding:"omitempty,oneof=SNAPSHOT MILESTONE RELEASE_CANDIDATE GENERAL_AVAILABILITY"`
	Current    bool          `json:"current"`
	RefDocURL  string        `json:"ref_doc_url"`
	APIDocURL  string        `json:"api_doc_url"`
	GroupID    string        `json:"group_id"`
	ArtifactID string        `json:"artifact_id"`
}

// Sample is a curated usage example. DisplayOrder doubles as its key.
type Sample struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	DisplayOrder int    `json:"display_order"`
}

// Clone returns a deep copy of the project so callers can work on it without
// aliasing the release and sample slices.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Releases = append([]Release(nil), p.Releases...)
	cp.Samples = append([]Sample(nil), p.Samples...)
	if p.ParentID != nil {
		id := *p.ParentID
		cp.ParentID = &id
	}
	return &cp
}

func (r Release) IsSnapshot() bool { return r.Status == StatusSnapshot }
func (r Release) IsGeneralAvailability() bool { return r.Status == StatusGeneralAvailability }

// IsPreRelease reports whether the release is a milestone or release candidate.
func (r Release) IsPreRelease() bool {
	return r.Status == StatusMilestone || r.Status == StatusReleaseCandidate
}

// PackageURL returns the Maven package URL of the release, e.g.
// "pkg:maven/org.springframework/spring-core@5.0.0.RELEASE".
// An empty string is returned when group or artifact id are missing.
func (r Release) PackageURL() string {
	if strings.TrimSpace(r.GroupID) == "" || strings.TrimSpace(r.ArtifactID) == "" {
		return ""
	}
	purl := packageurl.NewPackageURL(packageurl.TypeMaven, r.GroupID, r.ArtifactID, r.Version, nil, "")
	return purl.ToString()
}
