package domain

// Submission is what the form-binding layer hands to the save pipeline.
type Submission struct {
	Project          Project  `json:"project"`
	ReleasesToDelete []string `json:"releases_to_delete"`
	SamplesToDelete  []int    `json:"samples_to_delete"`
	GroupID          string   `json:"group_id" binding:"required"`
	ParentID         *string  `json:"parent_id,omitempty"`
}

// EditView is everything the presentation layer needs to render the editor.
type EditView struct {
	Project                *Project       `json:"project"`
	GroupID                *string        `json:"group_id,omitempty"`
	Categories             []Category     `json:"categories"`
	NextSampleDisplayOrder int            `json:"project_sample_display_order"`
	Releases               []ReleaseEntry `json:"release_entries"`
}

// ReleaseEntry annotates a release with values derived for display.
type ReleaseEntry struct {
	Version    string `json:"version"`
	Family     string `json:"family"`
	PackageURL string `json:"package_url,omitempty"`
}
