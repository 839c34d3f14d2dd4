package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/blob"
	"github.com/fabula-ai/fabula/pkg/config"
	"github.com/fabula-ai/fabula/pkg/database"
	"github.com/fabula-ai/fabula/pkg/library"
	"github.com/fabula-ai/fabula/pkg/notify"
	"github.com/fabula-ai/fabula/pkg/progress"
	"github.com/fabula-ai/fabula/pkg/queue"
	"github.com/fabula-ai/fabula/pkg/services"
)

const defaultHTTPPort = "8080"

// Deps carries everything the HTTP layer serves. Pool, Store and Notifier
// may be nil (tests, degraded boots); the endpoints that need them degrade
// with them.
type Deps struct {
	Config        *config.Config
	DB            *database.Client
	Users         *services.UserService
	Credits       *services.CreditService
	Sessions      *services.SessionService
	Generation    *services.GenerationService
	Shares        *services.ShareService
	Notifications *services.NotificationService
	Library       *library.Projector
	Pool          *queue.WorkerPool
	Store         blob.Store
	Notifier      *notify.Service
}

// Server is the HTTP front of the pipeline. All state transitions go through
// the services; handlers only translate between HTTP and service calls.
type Server struct {
	cfg           *config.Config
	db            *database.Client
	users         *services.UserService
	credits       *services.CreditService
	sessions      *services.SessionService
	generation    *services.GenerationService
	shares        *services.ShareService
	notifications *services.NotificationService
	library       *library.Projector
	pool          *queue.WorkerPool
	store         blob.Store
	notifier      *notify.Service
	estimator     *progress.Estimator

	engine     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer wires the routes over the given dependencies.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:           deps.Config,
		db:            deps.DB,
		users:         deps.Users,
		credits:       deps.Credits,
		sessions:      deps.Sessions,
		generation:    deps.Generation,
		shares:        deps.Shares,
		notifications: deps.Notifications,
		library:       deps.Library,
		pool:          deps.Pool,
		store:         deps.Store,
		notifier:      deps.Notifier,
		estimator:     progress.NewEstimator(deps.Config.TimeEstimation),
		logger:        slog.Default().With("component", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), securityHeaders())
	s.engine = engine
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.healthHandler)
	s.engine.GET("/version", s.versionHandler)

	v1 := s.engine.Group("/api/v1")
	v1.POST("/users", s.registerHandler)
	v1.POST("/users/login", s.loginHandler)

	authed := v1.Group("", s.requireAuth())

	authed.POST("/users/logout", s.logoutHandler)
	authed.DELETE("/users/me", s.deleteAccountHandler)
	authed.GET("/users/me/credits", s.creditsHandler)

	authed.POST("/sessions", s.createSessionHandler)
	authed.GET("/sessions", s.listSessionsHandler)
	authed.GET("/sessions/:id", s.getSessionHandler)
	authed.DELETE("/sessions/:id", s.deleteSessionHandler)

	authed.POST("/sessions/:id/questions", s.generateQuestionsHandler)
	authed.PUT("/sessions/:id/answers", s.saveAnswersHandler)
	authed.POST("/sessions/:id/draft", s.generateDraftHandler)
	authed.PUT("/sessions/:id/draft", s.editDraftHandler)
	authed.POST("/sessions/:id/draft/validate", s.validateDraftHandler)
	authed.POST("/sessions/:id/outline", s.generateOutlineHandler)
	authed.PUT("/sessions/:id/outline", s.editOutlineHandler)

	authed.POST("/sessions/:id/write", s.startWritingHandler)
	authed.POST("/sessions/:id/write/resume", s.resumeWritingHandler)
	authed.POST("/sessions/:id/write/cancel", s.cancelHandler)
	authed.GET("/sessions/:id/progress", s.progressHandler)

	authed.GET("/sessions/:id/book.pdf", s.downloadBookHandler("pdf"))
	authed.GET("/sessions/:id/book.epub", s.downloadBookHandler("epub"))
	authed.GET("/sessions/:id/book.docx", s.downloadBookHandler("docx"))
	authed.POST("/sessions/:id/share", s.shareBookHandler)
	authed.POST("/sessions/:id/critique", s.requestCritiqueHandler)

	authed.GET("/library", s.libraryHandler)
	authed.GET("/library/stats", s.statsHandler)
	authed.GET("/library/stats.xlsx", s.requireAdmin(), s.exportStatsHandler)

	authed.GET("/notifications", s.listNotificationsHandler)
	authed.POST("/notifications/read-all", s.markAllNotificationsReadHandler)
	authed.POST("/notifications/:id/read", s.markNotificationReadHandler)
}

// Handler exposes the routing tree for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves HTTP until Shutdown or a listener error.
func (s *Server) Start() error {
	port := defaultHTTPPort
	if s.cfg.Server != nil && s.cfg.Server.HTTPPort != "" {
		port = s.cfg.Server.HTTPPort
	}

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
