package router

import (
	"database/sql"
	"net/http"

	"courseapi/internal/api/v1/handler"
	"courseapi/internal/config"
	"courseapi/internal/middleware"
	"courseapi/internal/pubsub"
	"courseapi/internal/repository"
	"courseapi/internal/service"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New wires repositories, services and handlers over db and returns the root handler.
func New(cfg *config.Config, db *sql.DB, publisher pubsub.Publisher, logger zerolog.Logger) http.Handler {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Initialize validator
	validate := handler.NewValidator()
	errs := middleware.NewErrorWriter(logger, cfg.EnableGlobalErrorLogging)

	// 2. Initialize repositories & services & handlers
	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	userSvc := service.NewUserService(userRepo, cfg.BcryptCost)
	courseSvc := service.NewCourseService(courseRepo, publisher, cfg.PubSubCourseEventsTopic, logger)

	userHandler := handler.NewUserHandler(userSvc, validate, errs, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, errs, logger)

	// 3. Initialize middleware
	authMiddleware := middleware.AuthMiddleware(userSvc, cfg.AuthRealm, errs, logger)

	// 4. Create ServeMux router
	mux := http.NewServeMux()

	apiMux := http.NewServeMux()
	userHandler.RegisterRoutes(apiMux, authMiddleware)
	courseHandler.RegisterRoutes(apiMux, authMiddleware)
	apiMux.HandleFunc("/", handler.RouteNotFound)

	mux.Handle(handler.APIBasePath+"/", http.StripPrefix(handler.APIBasePath, apiMux))
	mux.HandleFunc("GET /{$}", handler.Welcome)
	mux.HandleFunc("/", handler.RouteNotFound)

	// 5. Apply CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: true,
	})

	recoverer := middleware.RecoverMiddleware(errs)
	return middleware.LoggerMiddleware(logger)(c.Handler(recoverer(mux)))
}
