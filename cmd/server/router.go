package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Bauumgarten/usuario/internal/api"
	apiMiddleware "github.com/Bauumgarten/usuario/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
//
// Token-scoped routes do not go through an auth middleware: the handler
// passes the raw Authorization header to the service layer, where the
// identity resolver owns the "Bearer " prefix contract.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.hasher)
	userHandler := api.NewUserHandler(app.userService)
	addressHandler := api.NewAddressHandler(app.addressService)
	phoneHandler := api.NewPhoneHandler(app.phoneService)

	r.Route("/usuario", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Post("/", userHandler.Register)
		r.Get("/", userHandler.GetByEmail)
		r.Put("/", userHandler.Update)
		r.Delete("/{email}", userHandler.DeleteByEmail)

		r.Post("/endereco", addressHandler.Create)
		r.Put("/endereco", addressHandler.Update)

		r.Post("/telefone", phoneHandler.Create)
		r.Put("/telefone", phoneHandler.Update)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
