package main

import (
	"log"
	"net/http"

	"github.com/Boggioo/movielist/internal/cache"
	"github.com/Boggioo/movielist/internal/config"
	"github.com/Boggioo/movielist/internal/db"
	"github.com/Boggioo/movielist/internal/handler"
	"github.com/Boggioo/movielist/internal/repository"
	"github.com/Boggioo/movielist/internal/service"
	"github.com/Boggioo/movielist/internal/tmdb"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title MovieList API
// @version 1.0
// @description API de descubrimiento de películas (TMDB, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// cliente TMDB: handle explícito, sin singleton
	tmdbClient := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.TMDBLanguage, cfg.TMDBRegion)

	// repos
	userRepo := repository.NewUserRepository()
	favRepo := repository.NewFavoriteRepository()
	reviewRepo := repository.NewReviewRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(tmdbClient)
	favSvc := service.NewFavoriteService(favRepo, movieSvc)
	reviewSvc := service.NewReviewService(reviewRepo, userRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	favH := handler.NewFavoriteHandler(favSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas)
	r.Get("/home", movieH.Home)
	r.Get("/genres", movieH.Genres)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/reviews", reviewH.ListForMovie)
	r.Get("/person/{id}", movieH.GetPerson)

	// WebSocket (detalle con progreso por facet)
	r.Get("/ws/movies/{id}", movieH.GetMovieWS)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Route("/me", func(r chi.Router) {
			r.Get("/favorites", favH.List)
			r.Post("/favorites/{movieId}", favH.Add)
			r.Delete("/favorites/{movieId}", favH.Remove)

			r.Post("/movies/{id}/review", reviewH.Upsert)
			r.Delete("/movies/{id}/review", reviewH.Delete)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
