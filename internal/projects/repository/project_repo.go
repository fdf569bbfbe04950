package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
)

//go:embed schema.sql
var schema string

const pgForeignKeyViolation = "23503"

// Store is the persistence contract for projects.
type Store interface {
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository persists projects with their releases and samples in PostgreSQL.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Migrate creates the project tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// GetProject loads a project with its releases and samples.
// domain.ErrNotFound is returned when no project has the given id.
func (r *ProjectRepository) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
SELECT id, name, repo_url, site_url, category, raw_overview, rendered_overview,
       raw_boot_config, rendered_boot_config, parent_id, created_at, updated_at
FROM projects
WHERE id = $1;
`
	var (
		p        domain.Project
		parentID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&p.ID, &p.Name, &p.RepoURL, &p.SiteURL, &p.Category,
		&p.RawOverview, &p.RenderedOverview, &p.RawBootConfig, &p.RenderedBootConfig,
		&parentID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if parentID.Valid {
		p.ParentID = &parentID.String
	}

	if p.Releases, err = r.releases(ctx, id); err != nil {
		return nil, err
	}
	if p.Samples, err = r.samples(ctx, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) releases(ctx context.Context, projectID string) ([]domain.Release, error) {
	const q = `
SELECT version, status, is_current, ref_doc_url, api_doc_url, group_id, artifact_id
FROM project_releases
WHERE project_id = $1
ORDER BY position;
`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Release, 0, 8)
	for rows.Next() {
		var rel domain.Release
		if err := rows.Scan(&rel.Version, &rel.Status, &rel.Current, &rel.RefDocURL, &rel.APIDocURL, &rel.GroupID, &rel.ArtifactID); err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) samples(ctx context.Context, projectID string) ([]domain.Sample, error) {
	const q = `
SELECT title, url, display_order
FROM project_samples
WHERE project_id = $1
ORDER BY position;
`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Sample, 0, 4)
	for rows.Next() {
		var s domain.Sample
		if err := rows.Scan(&s.Title, &s.URL, &s.DisplayOrder); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// List returns all projects ordered by name, without releases and samples.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, name, repo_url, site_url, category, parent_id, created_at, updated_at
FROM projects
ORDER BY name;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var (
			p        domain.Project
			parentID sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.RepoURL, &p.SiteURL, &p.Category, &parentID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if parentID.Valid {
			p.ParentID = &parentID.String
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save upserts the project and replaces its release and sample collections
// in a single transaction.
func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const upsertProject = `
INSERT INTO projects (
	id, name, repo_url, site_url, category, raw_overview, rendered_overview,
	raw_boot_config, rendered_boot_config, parent_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	repo_url = EXCLUDED.repo_url,
	site_url = EXCLUDED.site_url,
	category = EXCLUDED.category,
	raw_overview = EXCLUDED.raw_overview,
	rendered_overview = EXCLUDED.rendered_overview,
	raw_boot_config = EXCLUDED.raw_boot_config,
	rendered_boot_config = EXCLUDED.rendered_boot_config,
	parent_id = EXCLUDED.parent_id,
	updated_at = NOW()
RETURNING created_at, updated_at;
`
	var parentID sql.NullString
	if p.ParentID != nil {
		parentID = sql.NullString{String: *p.ParentID, Valid: true}
	}
	err = tx.QueryRowContext(ctx, upsertProject,
		p.ID, p.Name, p.RepoURL, p.SiteURL, string(p.Category),
		p.RawOverview, p.RenderedOverview, p.RawBootConfig, p.RenderedBootConfig, parentID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("%w: parent project %q does not exist", domain.ErrValidation, parentID.String)
		}
		return fmt.Errorf("failed to save project: %w", err)
	}

	if err = r.replaceReleases(ctx, tx, p); err != nil {
		return err
	}
	if err = r.replaceSamples(ctx, tx, p); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) replaceReleases(ctx context.Context, tx *sql.Tx, p *domain.Project) error {
	const upsertRelease = `
INSERT INTO project_releases (
	project_id, version, position, status, is_current, ref_doc_url, api_doc_url, group_id, artifact_id
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (project_id, version) DO UPDATE SET
	position = EXCLUDED.position,
	status = EXCLUDED.status,
	is_current = EXCLUDED.is_current,
	ref_doc_url = EXCLUDED.ref_doc_url,
	api_doc_url = EXCLUDED.api_doc_url,
	group_id = EXCLUDED.group_id,
	artifact_id = EXCLUDED.artifact_id;
`
	versions := make([]string, 0, len(p.Releases))
	for i, rel := range p.Releases {
		_, err := tx.ExecContext(ctx, upsertRelease,
			p.ID, rel.Version, i, string(rel.Status), rel.Current,
			rel.RefDocURL, rel.APIDocURL, rel.GroupID, rel.ArtifactID,
		)
		if err != nil {
			return fmt.Errorf("failed to save release %s: %w", rel.Version, err)
		}
		versions = append(versions, rel.Version)
	}

	const prune = `
DELETE FROM project_releases
WHERE project_id = $1 AND NOT (version = ANY($2));
`
	if _, err := tx.ExecContext(ctx, prune, p.ID, pq.Array(versions)); err != nil {
		return fmt.Errorf("failed to prune releases: %w", err)
	}
	return nil
}

func (r *ProjectRepository) replaceSamples(ctx context.Context, tx *sql.Tx, p *domain.Project) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_samples WHERE project_id = $1;`, p.ID); err != nil {
		return fmt.Errorf("failed to clear samples: %w", err)
	}

	const insertSample = `
INSERT INTO project_samples (project_id, position, title, url, display_order)
VALUES ($1, $2, $3, $4, $5);
`
	for i, s := range p.Samples {
		if _, err := tx.ExecContext(ctx, insertSample, p.ID, i, s.Title, s.URL, s.DisplayOrder); err != nil {
			return fmt.Errorf("failed to save sample %d: %w", s.DisplayOrder, err)
		}
	}
	return nil
}

// Delete removes a project. Deleting an unknown id is not an error.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
