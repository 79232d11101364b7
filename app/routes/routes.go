package routes

import (
	"log"
	"net/http"

	"github.com/8adiq/basic-user/app/controllers"
	"github.com/8adiq/basic-user/app/middleware"
	"github.com/8adiq/basic-user/app/repositories"
	"github.com/8adiq/basic-user/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupAPIRoutes wires the full API onto a router backed by the given
// Badger DB. The mailer delivers verification tokens; pass a LogMailer for
// local development.
func SetupAPIRoutes(db *badger.DB, mailer services.Mailer) *mux.Router {
	userRepo := repositories.NewBadgerUserRepository(db)
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	likeRepo := repositories.NewBadgerLikeRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)
	tokenRepo := repositories.NewBadgerVerificationTokenRepository(db)

	authService := services.NewAuthService(userRepo, sessionRepo, tokenRepo, mailer)
	postService := services.NewPostService(postRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo, postRepo)
	likeService := services.NewLikeService(likeRepo, postRepo)

	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	likeController := controllers.NewLikeController(likeService)

	authGuard := middleware.NewAuth(authService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	api := router.PathPrefix("/api").Subrouter()

	// Account endpoints
	api.HandleFunc("/register", authController.Register).Methods("POST")
	api.HandleFunc("/login", authController.Login).Methods("POST")
	api.HandleFunc("/email-verification/request", authController.RequestVerification).Methods("POST")
	api.HandleFunc("/email-verification/confirm", authController.ConfirmVerification).Methods("POST")
	api.Handle("/profile", authGuard.RequireAuth(http.HandlerFunc(authController.Profile))).Methods("GET")

	// Post endpoints
	api.HandleFunc("/posts", postController.Index).Methods("GET")
	api.Handle("/posts", authGuard.RequireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	api.HandleFunc("/posts/{id}", postController.Show).Methods("GET")
	api.Handle("/posts/{id}", authGuard.RequireAuth(http.HandlerFunc(postController.Update))).Methods("PUT")
	api.Handle("/posts/{id}", authGuard.RequireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Comment endpoints
	api.Handle("/comments", authGuard.RequireAuth(http.HandlerFunc(commentController.Create))).Methods("POST")

	// Like endpoints
	api.HandleFunc("/likes", likeController.Index).Methods("GET")
	api.Handle("/likes", authGuard.RequireAuth(http.HandlerFunc(likeController.Create))).Methods("POST")
	api.Handle("/likes", authGuard.RequireAuth(http.HandlerFunc(likeController.Delete))).Methods("DELETE")

	// Registered last: the path variable would otherwise shadow the fixed
	// single-segment routes above.
	api.HandleFunc("/{post_id}/comments", commentController.Index).Methods("GET")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	log.Printf("Starting server on %s", addr)
	return http.ListenAndServe(addr, router)
}
