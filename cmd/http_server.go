package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/hrm/api"
	"github.com/frahmantamala/hrm/internal"
	"github.com/frahmantamala/hrm/internal/attendance"
	"github.com/frahmantamala/hrm/internal/auth"
	"github.com/frahmantamala/hrm/internal/department"
	"github.com/frahmantamala/hrm/internal/employee"
	"github.com/frahmantamala/hrm/internal/leave"
	"github.com/frahmantamala/hrm/internal/rule"
	"github.com/frahmantamala/hrm/internal/salary"
	salarySqlite "github.com/frahmantamala/hrm/internal/salary/sqlite"
	"github.com/frahmantamala/hrm/internal/store"
	"github.com/frahmantamala/hrm/internal/transport"
	"github.com/frahmantamala/hrm/internal/transport/rest"
	"github.com/frahmantamala/hrm/internal/transport/swagger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

func startHTTPServer() {
	cfg, db, log, err := bootstrap(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	router, err := NewRouter(cfg, db, log)
	if err != nil {
		_ = db.Close()
		fmt.Fprintf(os.Stderr, "Failed to build router: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting HTTP server", "address", addr, "database", cfg.Database.Path)

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		log.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			_ = db.Close()
			os.Exit(1)
		}
	}

	if err := db.Close(); err != nil {
		log.Error("Database close error", "error", err)
	}
	log.Info("Server stopped")
}

// NewRouter wires every service and handler against db.
func NewRouter(cfg *internal.Config, db *store.DB, log *slog.Logger) (*chi.Mux, error) {
	secret := cfg.Security.SessionSecret
	if secret == "" {
		generated, err := auth.GenerateRandomToken()
		if err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		secret = generated
		log.Warn("security.session_secret is empty, sessions will not survive a restart")
	}

	credentials, err := auth.NewCredentials(cfg.Security.DefaultUsername, cfg.Security.DefaultPassword, cfg.Security.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing default credential: %w", err)
	}

	doc, err := api.Load(context.Background())
	if err != nil {
		return nil, err
	}
	specHandler, err := swagger.SpecHandler(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding openapi document: %w", err)
	}

	timeout := cfg.Database.QueryTimeout
	base := transport.NewBaseHandler(log)

	authService := auth.NewService(credentials, auth.NewSessionStore(cfg.Security.SessionDuration), auth.NewJWTTokenGenerator(secret), log)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(db, cfg.Database.Path),
		Auth:       auth.NewHandler(base, authService),
		Department: department.NewHandler(base, department.NewService(department.NewRepository(db), log, timeout)),
		Employee:   employee.NewHandler(base, employee.NewService(employee.NewRepository(db), log, timeout)),
		Salary:     salary.NewHandler(base, salary.NewService(salarySqlite.NewSalaryRepository(db), log, timeout)),
		Attendance: attendance.NewHandler(base, attendance.NewService(attendance.NewRepository(db), log, timeout)),
		Leave:      leave.NewHandler(base, leave.NewService(leave.NewRepository(db), log, timeout)),
		Rule:       rule.NewHandler(base, rule.NewService(rule.NewRepository(db), log, timeout)),
		Spec:       specHandler,
	}

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, handlers, cfg.Server, log)
	return router, nil
}
