package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(withGzipBody)
	router.Use(h.withSession)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/home", h.home)
		r.Get("/about", h.about)
		r.Get("/post/{postID}", h.getPost)
		r.Get("/user/{username}", h.userPosts)
		r.Get("/logout", h.logout)
		r.Post("/logout", h.logout)
	})

	// routes for anonymous users only
	router.Group(func(r chi.Router) {
		r.Use(h.redirectAuthenticated)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/reset_password", h.resetRequest)
		r.Post("/reset_password/{token}", h.resetToken)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)
		r.Get("/account", h.account)
		r.Post("/account", h.updateAccount)
		r.Post("/account/password", h.changePassword)
		r.Post("/post/new", h.newPost)
		r.Get("/post/{postID}/update", h.editPost)
		r.Post("/post/{postID}/update", h.updatePost)
		r.Post("/post/{postID}/delete", h.deletePost)
	})

	return router
}
