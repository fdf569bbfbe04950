package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/project-admin/internal/monitoring"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
)

const (
	projectKeyPrefix  = "projects:project:" // projects:project:{id}
	DefaultProjectTTL = 10 * time.Minute
)

// CachedStore is a read-through Redis cache in front of another Store.
// Writes go to the wrapped store first and then evict the cached entry.
// Redis failures are logged and never fail a request.
type CachedStore struct {
	next   Store
	client *redis.Client
	ttl    time.Duration
}

// NewCachedStore creates a new CachedStore
func NewCachedStore(next Store, client *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultProjectTTL
	}
	return &CachedStore{next: next, client: client, ttl: ttl}
}

func (s *CachedStore) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	key := s.projectKey(id)

	data, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Project
		if err := json.Unmarshal(data, &p); err == nil {
			monitoring.ProjectCacheLookupAmount.WithLabelValues("hit").Inc()
			return &p, nil
		}
		slog.Warn("dropping undecodable cached project", "id", id)
		monitoring.ProjectCacheLookupAmount.WithLabelValues("error").Inc()
	case errors.Is(err, redis.Nil):
		monitoring.ProjectCacheLookupAmount.WithLabelValues("miss").Inc()
	default:
		slog.Warn("project cache unavailable", "id", id, "err", err)
		monitoring.ProjectCacheLookupAmount.WithLabelValues("error").Inc()
	}

	p, err := s.next.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
			slog.Warn("failed to cache project", "id", id, "err", err)
		}
	}
	return p, nil
}

// List is not cached; the admin index must always reflect the database.
func (s *CachedStore) List(ctx context.Context) ([]domain.Project, error) {
	return s.next.List(ctx)
}

// Save evicts the cached entry on both sides of the write so a read racing
// the write, or a failed second eviction, cannot pin the old project.
func (s *CachedStore) Save(ctx context.Context, p *domain.Project) error {
	s.evict(ctx, p.ID)
	if err := s.next.Save(ctx, p); err != nil {
		return err
	}
	s.evict(ctx, p.ID)
	return nil
}

// Delete removes the project and evicts it together with its children, whose
// parent link the database clears on delete.
func (s *CachedStore) Delete(ctx context.Context, id string) error {
	children, err := s.childrenOf(ctx, id)
	if err != nil {
		return err
	}
	ids := append([]string{id}, children...)

	s.evict(ctx, ids...)
	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}
	s.evict(ctx, ids...)
	return nil
}

func (s *CachedStore) childrenOf(ctx context.Context, id string) ([]string, error) {
	all, err := s.next.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list child projects: %w", err)
	}
	var out []string
	for _, p := range all {
		if p.ParentID != nil && *p.ParentID == id {
			out = append(out, p.ID)
		}
	}
	return out, nil
}

func (s *CachedStore) evict(ctx context.Context, ids ...string) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, s.projectKey(id))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		slog.Error("failed to evict cached projects, entries may be stale until they expire", "ids", ids, "ttl", s.ttl, "err", err)
		monitoring.ProjectCacheEvictFailedAmount.Inc()
	}
}

func (s *CachedStore) projectKey(id string) string {
	return fmt.Sprintf("%s%s", projectKeyPrefix, id)
}
