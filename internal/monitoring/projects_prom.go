package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ProjectSavedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "projectadmin_project_saved_amount",
	Help: "The total number of project submissions persisted",
})

var ProjectDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "projectadmin_project_deleted_amount",
	Help: "The total number of project deletions",
})

var ProjectCacheLookupAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "projectadmin_project_cache_lookup_amount",
	Help: "Project cache lookups by result (hit, miss, error)",
}, []string{"result"})

var RenderDegradedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "projectadmin_render_degraded_amount",
	Help: "The total number of markup renders that fell back to escaped text",
})

var ProjectCacheEvictFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "projectadmin_project_cache_evict_failed_amount",
	Help: "The total number of cache evictions that failed after a write",
})
