package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Sadia492/portfolio-server/internal/server/services"
)

const (
	projectNotFoundMsg = "Project not found"
	projectConflictMsg = "A project with similar title already exists"
)

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.projects.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": projects})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.projects.Get(r.Context(), r.PathValue("key"))
	if err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": project})
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var in services.CreateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	project, err := s.projects.Create(r.Context(), identity.UserID, in)
	if err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"data": project})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var in services.UpdateProjectInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := s.projects.Update(r.Context(), r.PathValue("key"), identity.UserID, in)
	if err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"data": project})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	if err := s.projects.Delete(r.Context(), r.PathValue("key"), identity.UserID); err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "Project deleted successfully"})
}

func (s *Server) handleProjectThumbnail(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	upload, err := s.projects.IssueThumbnailUpload(r.Context(), r.PathValue("key"), identity.UserID)
	if err != nil {
		s.writeServiceError(w, r, err, projectNotFoundMsg, projectConflictMsg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"data": upload})
}
