package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Sadia492/portfolio-server/internal/logging"
	"github.com/Sadia492/portfolio-server/internal/server/config"
	"github.com/Sadia492/portfolio-server/internal/server/services"
)

type Server struct {
	address    string
	logger     logging.Logger
	auth       *services.AuthService
	blogs      *services.BlogService
	projects   *services.ProjectService
	production bool
	corsOrigin string
}

func NewServer(cfg *config.Config, l logging.Logger, as *services.AuthService, bs *services.BlogService, ps *services.ProjectService) *Server {
	return &Server{
		address:    cfg.EndpointAddrHTTP,
		logger:     l.With("module", "httpapi"),
		auth:       as,
		blogs:      bs,
		projects:   ps,
		production: cfg.Production,
		corsOrigin: cfg.CORSOrigin,
	}
}

// Handler builds the full route table. The access gate and role checks are
// applied per route, public reads stay ungated.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	owner := func(h http.HandlerFunc) http.Handler {
		return s.protect(s.requireOwner(h))
	}

	mux.HandleFunc("GET /api/health", s.handleHealth)

	// auth
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", s.protect(http.HandlerFunc(s.handleMe)))
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	// blogs
	mux.HandleFunc("GET /api/blogs", s.handleListBlogs)
	mux.HandleFunc("GET /api/blogs/{key}", s.handleGetBlog)
	mux.Handle("GET /api/blogs/admin/all", owner(s.handleListAllBlogs))
	mux.Handle("POST /api/blogs", owner(s.handleCreateBlog))
	mux.Handle("PUT /api/blogs/{key}", owner(s.handleUpdateBlog))
	mux.Handle("DELETE /api/blogs/{key}", owner(s.handleDeleteBlog))
	mux.Handle("PATCH /api/blogs/{key}/publish", owner(s.handleToggleBlogPublish))

	// projects
	mux.HandleFunc("GET /api/projects", s.handleListProjects)
	mux.HandleFunc("GET /api/projects/{key}", s.handleGetProject)
	mux.Handle("GET /api/projects/admin/all", owner(s.handleListProjects))
	mux.Handle("POST /api/projects", owner(s.handleCreateProject))
	mux.Handle("PUT /api/projects/{key}", owner(s.handleUpdateProject))
	mux.Handle("DELETE /api/projects/{key}", owner(s.handleDeleteProject))
	mux.Handle("POST /api/projects/{key}/thumbnail", owner(s.handleProjectThumbnail))

	// 404 envelope for everything else
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, "Route Not Found")
	})

	return s.recoverPanics(s.cors(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
