package main

import (
	"fmt"
	"log"
	"net/http"

	"firefly/cmd/app"
	"firefly/internal/config"
	handlers "firefly/internal/handler"
	"firefly/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.AccessTokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET is not set in the .env file")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handler.Home).Methods(http.MethodGet)
	router.HandleFunc("/jwt", handler.IssueToken).Methods(http.MethodPost)

	router.HandleFunc("/users", handler.RequireToken(handler.ListUsers)).Methods(http.MethodGet)
	router.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	router.HandleFunc("/users/admin/{email}", handler.RequireToken(handler.CheckAdmin)).Methods(http.MethodGet)
	router.HandleFunc("/users/admin/{id}", handler.RequireToken(handler.RequireAdmin(handler.MakeAdmin))).Methods(http.MethodPatch)
	router.HandleFunc("/users/badge/{email}", handler.RequireToken(handler.AwardBadge)).Methods(http.MethodPatch)
	router.HandleFunc("/users/{email}", handler.GetUserByEmail).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", handler.RequireToken(handler.RequireAdmin(handler.DeleteUser))).Methods(http.MethodDelete)

	router.HandleFunc("/announcements", handler.ListAnnouncements).Methods(http.MethodGet)
	router.HandleFunc("/announcements", handler.RequireToken(handler.CreateAnnouncement)).Methods(http.MethodPost)

	router.HandleFunc("/tags", handler.ListTags).Methods(http.MethodGet)
	router.HandleFunc("/tags", handler.RequireToken(handler.RequireAdmin(handler.CreateTag))).Methods(http.MethodPost)

	router.HandleFunc("/posts", handler.ListPosts).Methods(http.MethodGet)
	router.HandleFunc("/posts", handler.RequireToken(handler.CreatePost)).Methods(http.MethodPost)
	router.HandleFunc("/postsCount", handler.PostsCount).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/posts/{id}", handler.UpdatePostVotes).Methods(http.MethodPatch)
	router.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)

	router.HandleFunc("/comments", handler.ListComments).Methods(http.MethodGet)
	router.HandleFunc("/comments", handler.RequireToken(handler.CreateComment)).Methods(http.MethodPost)
	router.HandleFunc("/comments/{postId}", handler.ListCommentsByPost).Methods(http.MethodGet)
	router.HandleFunc("/comments/{id}", handler.ReportComment).Methods(http.MethodPatch)
	router.HandleFunc("/comments/{id}", handler.RequireToken(handler.RequireAdmin(handler.DeleteComment))).Methods(http.MethodDelete)

	router.HandleFunc("/create-payment-intent", handler.CreatePaymentIntent).Methods(http.MethodPost)
	router.HandleFunc("/payments", handler.CreatePayment).Methods(http.MethodPost)
	router.HandleFunc("/admin-stats", handler.AdminStats).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("firefly server is running on port %d", cfg.ServerPort)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
