package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/project-admin/internal/logging"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) newProject(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "view": h.svc.NewProjectView()})
}

func (h *Handler) edit(c *gin.Context) {
	view, err := h.svc.EditView(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		h.internalError(c, "load project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "view": view})
}

func (h *Handler) save(c *gin.Context) {
	var req domain.Submission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body: " + err.Error()})
		return
	}
	pathID := c.Param("id")
	switch bodyID := strings.TrimSpace(req.Project.ID); {
	case bodyID == "":
		req.Project.ID = pathID
	case bodyID != pathID:
		err := fmt.Errorf("%w: project id %q does not match path id %q", domain.ErrValidation, bodyID, pathID)
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	id, err := h.svc.Save(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		h.internalError(c, "save project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id, "location": "/admin/projects/" + id})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.internalError(c, "delete project", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	logging.FromContext(c.Request.Context()).Error(op+" failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
