package reconcile

import (
	"testing"

	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
	"github.com/stretchr/testify/assert"
)

func TestSamples_DropsIncomplete(t *testing.T) {
	in := []domain.Sample{
		{Title: "Demo", URL: "http://x", DisplayOrder: 1},
		{Title: "", URL: "http://y", DisplayOrder: 2},
	}

	out := Samples(in, nil)

	assert.Equal(t, []domain.Sample{{Title: "Demo", URL: "http://x", DisplayOrder: 1}}, out)
}

func TestSamples_NeverKeepsEmptyTitleOrURL(t *testing.T) {
	in := []domain.Sample{
		{Title: "", URL: "", DisplayOrder: 1},
		{Title: "a", URL: "", DisplayOrder: 2},
		{Title: "", URL: "b", DisplayOrder: 3},
		{Title: "c", URL: "d", DisplayOrder: 4},
	}

	for _, s := range Samples(in, nil) {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.URL)
	}
}

func TestSamples_DeletesByDisplayOrder(t *testing.T) {
	in := []domain.Sample{
		{Title: "one", URL: "http://1", DisplayOrder: 1},
		{Title: "two", URL: "http://2", DisplayOrder: 2},
		{Title: "three", URL: "http://3", DisplayOrder: 3},
	}

	out := Samples(in, []int{2, 42})

	assert.Len(t, out, 2)
	assert.Equal(t, "one", out[0].Title)
	assert.Equal(t, "three", out[1].Title)
}

func TestSamples_PreservesInputOrder(t *testing.T) {
	in := []domain.Sample{
		{Title: "late", URL: "http://3", DisplayOrder: 3},
		{Title: "early", URL: "http://1", DisplayOrder: 1},
	}

	assert.Equal(t, in, Samples(in, nil))
}

func TestNextDisplayOrder(t *testing.T) {
	assert.Equal(t, 1, NextDisplayOrder(nil))
	assert.Equal(t, 2, NextDisplayOrder([]domain.Sample{{DisplayOrder: 1}}))
	assert.Equal(t, 8, NextDisplayOrder([]domain.Sample{{DisplayOrder: 3}, {DisplayOrder: 7}, {DisplayOrder: 2}}))
	assert.Equal(t, -4, NextDisplayOrder([]domain.Sample{{DisplayOrder: -5}}))
}
