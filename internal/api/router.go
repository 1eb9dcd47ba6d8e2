package api

import (
	"time"

	"github.com/Project-Sylos/Desktop98/internal/api/handlers"
	apimiddleware "github.com/Project-Sylos/Desktop98/internal/api/middleware"
	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/metrics"
	"github.com/Project-Sylos/Desktop98/sdk"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RequestTimeout bounds every request except the snapshot streams
const RequestTimeout = 60 * time.Second

// Router represents the HTTP API router
type Router struct {
	desktop *sdk.Desktop
}

// NewRouter creates a new API router
func NewRouter(desktop *sdk.Desktop) *Router {
	return &Router{desktop: desktop}
}

// SetupRoutes configures all API routes using modular handlers
func (r *Router) SetupRoutes() *chi.Mux {
	router := chi.NewRouter()

	// Standard middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.Middleware)
	router.Use(metrics.Middleware)
	router.Use(middleware.Recoverer)

	// Custom middleware
	router.Use(apimiddleware.CORS)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	fsHandler := handlers.NewFileSystemHandler(r.desktop)
	windowHandler := handlers.NewWindowHandler(r.desktop)
	dialogHandler := handlers.NewDialogHandler(r.desktop)
	promptHandler := handlers.NewPromptHandler(r.desktop)
	desktopHandler := handlers.NewDesktopHandler(r.desktop)
	settingsHandler := handlers.NewSettingsHandler(r.desktop)
	systemHandler := handlers.NewSystemHandler(r.desktop)

	// Health check and metrics
	router.Get("/health", healthHandler.HealthCheck)
	router.Handle("/metrics", metrics.Handler())

	// API routes
	router.Route("/api/v1", func(api chi.Router) {
		// Long-lived snapshot streams carry no timeout
		api.Route("/stream", func(stream chi.Router) {
			stream.Get("/windows", windowHandler.Stream)
			stream.Get("/dialogs", dialogHandler.Stream)
		})

		api.Group(func(api chi.Router) {
			api.Use(middleware.Timeout(RequestTimeout))

			// File-system operations
			api.Route("/fs", func(fs chi.Router) {
				fs.Get("/navigation", fsHandler.GetNavigation)
				fs.Post("/navigation/{id}/toggle", fsHandler.ToggleNavigation)
				fs.Get("/folders/{id}/children", fsHandler.ListChildren)
				fs.Get("/recycle-bin", fsHandler.ListRecycleBin)
				fs.Get("/entries/{id}", fsHandler.GetEntry)
				fs.Get("/entries/{id}/metadata", fsHandler.GetMetadata)
				fs.Get("/entries/{id}/content", fsHandler.GetFileContent)
				fs.Post("/entries/{id}/open", fsHandler.OpenEntry)
				fs.Get("/search", fsHandler.Search)
			})

			// Window operations
			api.Route("/windows", func(windows chi.Router) {
				windows.Get("/", windowHandler.List)
				windows.Post("/", windowHandler.Open)
				windows.Get("/session", windowHandler.Session)
				windows.Post("/pointer/down", windowHandler.PointerDown)
				windows.Post("/pointer/move", windowHandler.PointerMove)
				windows.Post("/pointer/up", windowHandler.PointerUp)
				windows.Get("/{id}", windowHandler.Get)
				windows.Delete("/{id}", windowHandler.Close)
				windows.Get("/{id}/inputs", windowHandler.Inputs)
				windows.Post("/{id}/front", windowHandler.BringToFront)
				windows.Put("/{id}/position", windowHandler.Move)
				windows.Put("/{id}/size", windowHandler.Resize)
				windows.Post("/{id}/minimize", windowHandler.Minimize)
				windows.Post("/{id}/restore", windowHandler.Restore)
			})

			// Dialog operations
			api.Route("/dialogs", func(dialogs chi.Router) {
				dialogs.Get("/", dialogHandler.List)
				dialogs.Post("/", dialogHandler.Open)
				dialogs.Post("/find", dialogHandler.OpenFind)
				dialogs.Get("/session", dialogHandler.Session)
				dialogs.Post("/pointer/down", dialogHandler.PointerDown)
				dialogs.Post("/pointer/move", dialogHandler.PointerMove)
				dialogs.Post("/pointer/up", dialogHandler.PointerUp)
				dialogs.Get("/{id}", dialogHandler.Get)
				dialogs.Delete("/{id}", dialogHandler.Close)
				dialogs.Post("/{id}/front", dialogHandler.BringToFront)
				dialogs.Put("/{id}/position", dialogHandler.Move)
				dialogs.Put("/{id}/size", dialogHandler.Resize)
			})

			// Prompt operations
			api.Route("/prompts", func(prompts chi.Router) {
				prompts.Get("/", promptHandler.List)
				prompts.Post("/", promptHandler.Show)
				prompts.Post("/{id}/resolve", promptHandler.Resolve)
				prompts.Get("/{id}/wait", promptHandler.Wait)
			})

			// Desktop operations
			api.Route("/icons", func(icons chi.Router) {
				icons.Get("/", desktopHandler.ListIcons)
				icons.Post("/", desktopHandler.AddIcon)
				icons.Put("/{id}/position", desktopHandler.MoveIcon)
				icons.Delete("/{id}", desktopHandler.RemoveIcon)
				icons.Post("/{id}/open", desktopHandler.OpenIcon)
			})
			api.Get("/start-menu", desktopHandler.ListStartMenu)
			api.Post("/start-menu/{id}/open", desktopHandler.OpenStartMenuItem)
			api.Get("/taskbar", desktopHandler.GetTaskbar)
			api.Put("/viewport", desktopHandler.SetViewport)

			// Settings operations
			api.Route("/settings", func(settings chi.Router) {
				settings.Get("/", settingsHandler.GetSettings)
				settings.Put("/theme", settingsHandler.SetTheme)
				settings.Put("/screen-saver", settingsHandler.SetScreenSaver)
				settings.Put("/wallpaper", settingsHandler.SetWallpaper)
			})
			api.Get("/themes", settingsHandler.ListThemes)
			api.Get("/themes/current", settingsHandler.CurrentTheme)

			// System operations
			api.Get("/config", systemHandler.GetConfig)
			api.Get("/state", systemHandler.GetState)
			api.Get("/stats", systemHandler.GetStats)
			api.Post("/reset", systemHandler.Reset)
		})
	})

	return router
}
