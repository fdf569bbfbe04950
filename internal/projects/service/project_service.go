package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/GoSim-25-26J-441/project-admin/internal/logging"
	"github.com/GoSim-25-26J-441/project-admin/internal/monitoring"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/pattern"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/reconcile"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/render"
)

// Store is the persistence the service needs. repository.ProjectRepository
// and repository.CachedStore both satisfy it.
type Store interface {
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// Renderer turns raw markup into HTML without failing.
type Renderer interface {
	Render(raw string, format render.Format) string
}

// ContentFormat is the markup language of the overview and boot config fields.
const ContentFormat = render.FormatMarkdown

// ProjectService assembles edit views and runs the submission pipeline.
type ProjectService struct {
	store    Store
	renderer Renderer
	validate *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(store Store, renderer Renderer) *ProjectService {
	v := validator.New()
	// share the struct tags gin uses for request binding
	v.SetTagName("binding")
	return &ProjectService{
		store:    store,
		renderer: renderer,
		validate: v,
	}
}

// List returns all projects for the admin index.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// EditView loads a project and prepares it for editing.
// domain.ErrNotFound is returned for unknown ids and no view is built.
func (s *ProjectService) EditView(ctx context.Context, id string) (*domain.EditView, error) {
	p, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return buildEditView(p), nil
}

// NewProjectView prepares the editor for a project that does not exist yet.
func (s *ProjectService) NewProjectView() *domain.EditView {
	return buildEditView(NewProjectScaffold())
}

// NewProjectScaffold returns the placeholder project offered when creating
// a new project: one SNAPSHOT release and the default category.
func NewProjectScaffold() *domain.Project {
	release := domain.Release{
		Version:    "1.0.0.BUILD-SNAPSHOT",
		Status:     domain.StatusSnapshot,
		Current:    false,
		RefDocURL:  "http://docs.spring.io/spring-new/docs/{version}/spring-new/htmlsingle/",
		APIDocURL:  "http://docs.spring.io/spring-new/docs/{version}/javadoc-api/",
		GroupID:    "org.springframework.new",
		ArtifactID: "spring-new",
	}
	return &domain.Project{
		ID:       "spring-new",
		Name:     "New Spring Project",
		RepoURL:  "http://github.com/spring-projects/spring-new",
		SiteURL:  "http://projects.spring.io/spring-new",
		Releases: []domain.Release{release},
		Samples:  []domain.Sample{},
		Category: domain.DefaultCategory(),
	}
}

func buildEditView(stored *domain.Project) *domain.EditView {
	p := stored.Clone()
	p.Releases = reconcile.Denormalize(p.Releases)

	view := &domain.EditView{
		Project:                p,
		Categories:             append([]domain.Category(nil), domain.Categories...),
		NextSampleDisplayOrder: reconcile.NextDisplayOrder(p.Samples),
		Releases:               make([]domain.ReleaseEntry, 0, len(p.Releases)),
	}
	if len(p.Releases) > 0 {
		groupID := p.Releases[0].GroupID
		view.GroupID = &groupID
	}
	for _, r := range p.Releases {
		view.Releases = append(view.Releases, domain.ReleaseEntry{
			Version:    r.Version,
			Family:     pattern.Family(r.Version),
			PackageURL: r.PackageURL(),
		})
	}
	return view
}

// Save reconciles a submission into canonical form and persists it,
// returning the id of the saved project.
//
// The pipeline runs deletions and pattern normalization, renders both markup
// fields, links the parent, filters samples and finally saves the project as
// a whole. Nothing is written if validation fails.
func (s *ProjectService) Save(ctx context.Context, sub domain.Submission) (string, error) {
	log := logging.FromContext(ctx)

	if err := s.Validate(sub); err != nil {
		return "", err
	}

	p := sub.Project.Clone()
	p.Releases = reconcile.Releases(p.Releases, sub.ReleasesToDelete, strings.TrimSpace(sub.GroupID))

	p.RenderedOverview = s.renderer.Render(p.RawOverview, ContentFormat)
	p.RenderedBootConfig = s.renderer.Render(p.RawBootConfig, ContentFormat)

	p.ParentID = nil
	if parentID := parentOf(sub); parentID != "" {
		parent, err := s.store.GetProject(ctx, parentID)
		switch {
		case err == nil:
			p.ParentID = &parent.ID
		case errors.Is(err, domain.ErrNotFound):
			log.Warn("parent project not found, saving without parent", "project", p.ID, "parent", parentID)
		default:
			return "", fmt.Errorf("resolve parent project: %w", err)
		}
	}

	p.Samples = reconcile.Samples(p.Samples, sub.SamplesToDelete)

	if err := s.store.Save(ctx, p); err != nil {
		return "", err
	}
	monitoring.ProjectSavedAmount.Inc()
	log.Info("project saved", "project", p.ID, "releases", len(p.Releases), "samples", len(p.Samples))

	return p.ID, nil
}

// Validate checks a submission before any reconciliation happens.
// Failures wrap domain.ErrValidation.
func (s *ProjectService) Validate(sub domain.Submission) error {
	if err := s.validate.Struct(sub); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}
	if strings.TrimSpace(sub.GroupID) == "" {
		return fmt.Errorf("%w: group id is required", domain.ErrValidation)
	}
	if !slug.IsSlug(sub.Project.ID) {
		return fmt.Errorf("%w: project id %q must be lowercase letters, digits and dashes", domain.ErrValidation, sub.Project.ID)
	}
	if parentOf(sub) == sub.Project.ID {
		return fmt.Errorf("%w: a project cannot be its own parent", domain.ErrValidation)
	}

	deleted := make(map[string]struct{}, len(sub.ReleasesToDelete))
	for _, v := range sub.ReleasesToDelete {
		deleted[v] = struct{}{}
	}
	seen := make(map[string]struct{}, len(sub.Project.Releases))
	for _, r := range sub.Project.Releases {
		if r.Version == "" {
			continue
		}
		if _, ok := deleted[r.Version]; ok {
			continue
		}
		if _, ok := seen[r.Version]; ok {
			return fmt.Errorf("%w: duplicate release version %q", domain.ErrValidation, r.Version)
		}
		seen[r.Version] = struct{}{}
	}
	return nil
}

// Delete removes a project. Unknown ids are ignored.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	monitoring.ProjectDeletedAmount.Inc()
	logging.FromContext(ctx).Info("project deleted", "project", id)
	return nil
}

func parentOf(sub domain.Submission) string {
	if sub.ParentID == nil {
		return ""
	}
	return strings.TrimSpace(*sub.ParentID)
}
