package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"

	"tush00nka/bbbab_forums/internal/handler"
	"tush00nka/bbbab_forums/internal/pkg/httputils"
)

type Server struct {
	router *mux.Router
	srv    *http.Server
}

func NewServer(userHandler *handler.UserHandler, forumHandler *handler.ForumHandler, mutationMiddleware ...mux.MiddlewareFunc) *Server {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.ResponseError(w, http.StatusNotFound, "not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.ResponseError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.HandleFunc("/ping", handler.Ping).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	userHandler.RegisterRoutes(api)
	forumHandler.RegisterRoutes(api, mutationMiddleware...)

	swaggerHandler := httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	)

	// doc.json is a static file, registered before the catch-all prefix
	router.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.json")
	})
	router.PathPrefix("/swagger/").Handler(swaggerHandler)

	return &Server{router: router}
}

// Handler wraps the router, so requests that match no route still get a
// request id and a log line.
func (s *Server) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", requestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logrus.StandardLogger()),
		handlers.PrintRecoveryStack(true),
	)
	return recovery(requestID(logging(cors(s.router))))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, port string) error {
	s.srv = &http.Server{
		Handler:      s.Handler(),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", port)
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logrus.Info("Server shutting down")
	return s.srv.Shutdown(shutdownCtx)
}
