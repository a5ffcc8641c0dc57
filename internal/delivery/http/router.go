package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"invites/internal/delivery/http/controllers"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth      *controllers.AuthController
	Invites   *controllers.InviteController
	Dashboard *controllers.DashboardController
	Health    *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes.
// requireAdmin guards the admin pages; uploadDir is served read-only at /uploads/.
func NewRouter(c Controllers, requireAdmin func(http.HandlerFunc) http.HandlerFunc, uploadDir string, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Admin
	mux.HandleFunc("GET /login", c.Auth.LoginPage)
	mux.HandleFunc("POST /login", c.Auth.Login)
	mux.HandleFunc("GET /logout", requireAdmin(c.Auth.Logout))
	mux.HandleFunc("GET /admin_dashboard", requireAdmin(c.Dashboard.Show))
	mux.HandleFunc("GET /create_invite", requireAdmin(c.Invites.NewInviteForm))
	mux.HandleFunc("POST /create_invite", requireAdmin(c.Invites.CreateInvite))

	// Invitee
	mux.HandleFunc("GET /invite/{token}", c.Invites.ViewInvite)
	mux.HandleFunc("POST /invite/{token}", c.Invites.SubmitRSVP)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServerFS(noDirListing{os.DirFS(uploadDir)})))

	// Operational
	mux.HandleFunc("GET /health", c.Health.Check)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin_dashboard", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		controllers.NotFound(w, r, logger, c.Invites.Renderer, "Page not found.")
	})

	return mux
}

// noDirListing hides directories so /uploads/ never lists stored images.
type noDirListing struct {
	fs.FS
}

func (n noDirListing) Open(name string) (fs.File, error) {
	f, err := n.FS.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f, nil
}
