package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/services/submission"
	"gitlab.com/leetlab-2025.net/internal/core/services/verify"
	"gitlab.com/leetlab-2025.net/internal/handlers"
	"gitlab.com/leetlab-2025.net/internal/handlers/execution"
	"gitlab.com/leetlab-2025.net/internal/handlers/problems"
	"gitlab.com/leetlab-2025.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService submission.ISubmissionService
	verifyService     verify.IVerifyService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	verifyService verify.IVerifyService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService: submissionService,
		verifyService:     verifyService,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
	jwtSecret       string
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, jwtSecret string, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
		jwtSecret:       jwtSecret,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	protected := r.NewRoute().Subrouter()
	protected.Use(handlers.New(s.jwtSecret).JWTMiddleware)
	execution.NewExecutionHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(protected)
	submissions.NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(protected)
	problems.NewProblemHandler(s.ServiceProvider.verifyService, s.logger).RegisterRoutes(protected)

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout: 15 * time.Second,
		// Submissions block on the judge, so the write timeout has to
		// outlive the polling window.
		WriteTimeout: 240 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
