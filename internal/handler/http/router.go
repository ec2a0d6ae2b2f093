package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/expensehub/expensehub-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	employeeSecret string,
	accountHandler AccountHandler,
	requestHandler RequestHandler,
	expenseHandler ExpenseHandler,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "expensehub-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	// The original API uses trailing-slash paths; StripSlashes makes both
	// forms resolve to the same route.
	r.Use(chiMiddleware.StripSlashes)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/accounts", func(r chi.Router) {
		r.Post("/signup", accountHandler.Signup)
		r.Post("/login", accountHandler.Login)

		// TODO: gate the request routes once manager accounts carry a
		// usable credential; login currently issues none, so there is
		// nothing to check against.
		r.Route("/requests", func(r chi.Router) {
			r.Get("/", requestHandler.List)
			r.Post("/create", requestHandler.Create)
			r.Patch("/{id}", requestHandler.Update)
		})
	})

	// Employee API, gated by the shared secret
	r.Group(func(r chi.Router) {
		r.Use(middleware.EmployeeAuth(employeeSecret))

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", expenseHandler.Create)
			r.Get("/my", expenseHandler.ListMine)
		})
	})

	// Stored receipts
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsPath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
