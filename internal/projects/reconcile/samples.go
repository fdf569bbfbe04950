package reconcile

import "github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"

// Samples keeps the samples that have both a title and a URL and whose
// display order is not listed in toDelete. Input order is preserved.
func Samples(samples []domain.Sample, toDelete []int) []domain.Sample {
	drop := make(map[int]struct{}, len(toDelete))
	for _, o := range toDelete {
		drop[o] = struct{}{}
	}

	out := make([]domain.Sample, 0, len(samples))
	for _, s := range samples {
		if s.Title == "" || s.URL == "" {
			continue
		}
		if _, ok := drop[s.DisplayOrder]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NextDisplayOrder is the display order for a new blank sample row:
// one past the highest existing order, or 1 when there are no samples.
func NextDisplayOrder(samples []domain.Sample) int {
	if len(samples) == 0 {
		return 1
	}
	highest := samples[0].DisplayOrder
	for _, s := range samples[1:] {
		highest = max(highest, s.DisplayOrder)
	}
	return highest + 1
}
