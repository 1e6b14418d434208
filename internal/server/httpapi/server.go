// Package httpapi exposes the JSON API consumed by the Reflecta client:
// health, registration/login, and authenticated entry creation and listing.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/reflecta-app/reflecta/internal/common"
	"github.com/reflecta-app/reflecta/internal/logging"
	"github.com/reflecta-app/reflecta/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	users     *services.UserService
	entries   *services.EntryService
	logger    logging.Logger
	jwtSecret []byte
	validate  *validator.Validate
}

func NewServer(a string, l logging.Logger, us *services.UserService, es *services.EntryService, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		entries:   es,
		jwtSecret: []byte(secretKey),
		validate:  validator.New(),
	}
}

// Router builds the route table. Exposed separately from Run so tests can
// drive it with httptest.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	api := r.PathPrefix(common.APIPrefix).Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authMiddleware)
	authed.HandleFunc("/entries", s.handleCreateEntry).Methods(http.MethodPost)
	authed.HandleFunc("/entries", s.handleListEntries).Methods(http.MethodGet)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
