package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/Sadia492/portfolio-server/internal/server/services"
)

const (
	blogNotFoundMsg = "Blog not found"
	blogConflictMsg = "A blog with similar title already exists"
)

func (s *Server) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.ListPublished(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": blogs})
}

func (s *Server) handleListAllBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := s.blogs.ListAll(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": blogs})
}

func (s *Server) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	// Public route: drafts behave as if they do not exist.
	blog, err := s.blogs.Get(r.Context(), r.PathValue("key"), false)
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"data": blog})
}

func (s *Server) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var in services.CreateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	blog, err := s.blogs.Create(r.Context(), identity.UserID, in)
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"data": blog})
}

func (s *Server) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	var in services.UpdateBlogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	blog, err := s.blogs.Update(r.Context(), r.PathValue("key"), identity.UserID, in)
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"data": blog})
}

func (s *Server) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	if err := s.blogs.Delete(r.Context(), r.PathValue("key"), identity.UserID); err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"message": "Blog deleted successfully"})
}

func (s *Server) handleToggleBlogPublish(w http.ResponseWriter, r *http.Request) {
	identity, _ := IdentityFrom(r.Context())

	blog, err := s.blogs.TogglePublish(r.Context(), r.PathValue("key"), identity.UserID)
	if err != nil {
		s.writeServiceError(w, r, err, blogNotFoundMsg, blogConflictMsg)
		return
	}

	status := "unpublished"
	if blog.Published {
		status = "published"
	}
	writeSuccess(w, http.StatusOK, map[string]any{
		"data":    blog,
		"message": "Blog " + status + " successfully",
	})
}
