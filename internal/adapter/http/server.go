// Package adapthttp is the driving HTTP adapter. It exposes the application
// services as a JSON API under /api.
package adapthttp

import (
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"nutrisec/internal/app"
)

// Services groups the application services the HTTP adapter drives.
type Services struct {
	Days   *app.DayService
	Cardio *app.CardioService
	Weight *app.WeightService
	Meal   *app.MealService
	Stats  *app.StatsService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	days        *app.DayService
	cardio      *app.CardioService
	weight      *app.WeightService
	meal        *app.MealService
	stats       *app.StatsService
	logger      *slog.Logger
	corsOrigins []string
}

// New creates a Server wired to the given application services. An empty
// origin list allows every origin.
func New(svc Services, logger *slog.Logger, corsOrigins []string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}
	return &Server{
		days:        svc.Days,
		cardio:      svc.Cardio,
		weight:      svc.Weight,
		meal:        svc.Meal,
		stats:       svc.Stats,
		logger:      logger,
		corsOrigins: corsOrigins,
	}
}

// methods dispatches a path to one handler per HTTP method. Any other
// method gets a JSON 405 with an Allow header.
type methods map[string]http.HandlerFunc

func (m methods) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m[r.Method]; ok {
		h(w, r)
		return
	}
	allowed := make([]string, 0, len(m))
	for method := range m {
		allowed = append(allowed, method)
	}
	sort.Strings(allowed)
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, fmt.Errorf("no route for %s", r.URL.Path))
	})
	api := router.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = router.NotFoundHandler

	api.Handle("/health", methods{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		},
	})

	// Fixed paths are registered before /days/{id} so they are not taken
	// for an ID.
	api.Handle("/days", methods{
		http.MethodGet:  s.handleListDays,
		http.MethodPost: s.handleStartDay,
	})
	api.Handle("/days/current", methods{http.MethodGet: s.handleCurrentDay})
	api.Handle("/days/completed", methods{http.MethodDelete: s.handleClearCompleted})

	api.Handle("/days/{id}", methods{
		http.MethodGet:    s.handleGetDay,
		http.MethodPut:    s.handleEditDay,
		http.MethodDelete: s.handleDeleteDay,
	})
	api.Handle("/days/{id}/complete", methods{http.MethodPost: s.handleSetCompleted(true)})
	api.Handle("/days/{id}/activate", methods{http.MethodPost: s.handleSetCompleted(false)})
	api.Handle("/days/{id}/foods", methods{http.MethodPost: s.handleEat})
	api.Handle("/days/{id}/undo-last-meal", methods{http.MethodPost: s.handleUndoLastMeal})
	api.Handle("/days/{id}/cardio", methods{http.MethodPost: s.handleCardio})
	api.Handle("/days/{id}/weight", methods{
		http.MethodPut:    s.handleRecordWeight,
		http.MethodDelete: s.handleClearWeight,
	})
	api.Handle("/days/{id}/meal/preview", methods{http.MethodPost: s.handleMealPreview})

	api.Handle("/meal/evaluate", methods{http.MethodPost: s.handleMealEvaluate})

	api.Handle("/stats", methods{http.MethodGet: s.handleStats})

	c := cors.New(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	return s.loggingMiddleware(c.Handler(withNoCache(router)))
}
