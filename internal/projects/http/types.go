package http

import "github.com/GoSim-25-26J-441/project-admin/internal/projects/service"

// Handler bundles the dependencies for the project admin endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}
