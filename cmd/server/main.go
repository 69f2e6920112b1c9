package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-storefront/internal/api"
	"travel-storefront/internal/config"
	"travel-storefront/internal/handlers"
	"travel-storefront/internal/middleware"
	"travel-storefront/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	store := session.NewCookieStore(cfg.Session.Secret, cfg.Storage.Prefix)

	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		APIKey:  cfg.API.APIKey,
		Timeout: cfg.API.Timeout,
	})

	templates := handlers.NewTemplateCache()
	if err := templates.Load("web/templates"); err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	publicHandler := handlers.NewPublicHandler(client, templates)
	authHandler := handlers.NewAuthHandler(client, templates)
	cartHandler := handlers.NewCartHandler(client, templates)
	checkoutHandler := handlers.NewCheckoutHandler(client, templates)
	transactionHandler := handlers.NewTransactionHandler(client, templates)
	profileHandler := handlers.NewProfileHandler(client, templates)
	pageHandler := handlers.NewPageHandler(templates)
	adminHandler := handlers.NewAdminHandler(client, templates)
	adminCatalogHandler := handlers.NewAdminCatalogHandler(client, templates)
	adminUserHandler := handlers.NewAdminUserHandler(client, templates)
	adminTransactionHandler := handlers.NewAdminTransactionHandler(client, templates)

	csrfProtect := csrf.Protect(
		[]byte(cfg.Session.Secret),
		csrf.Secure(!cfg.IsDevelopment()),
		csrf.Path("/"),
	)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Recover)
	r.Use(middleware.WithSession(store))
	r.Use(middleware.LoadUser)
	r.Use(csrfProtect)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static/"))))

	// Public catalog routes. Admin sessions browsing them are bounced to
	// the admin home.
	r.Group(func(r chi.Router) {
		r.Use(middleware.BlockAdminOnUserRoutes)
		r.Get("/", publicHandler.HomePage)
		r.Get("/activity", publicHandler.ActivityListPage)
		r.Get("/activity/{id}", publicHandler.ActivityDetailPage)
		r.Get("/promos", publicHandler.PromosPage)
	})

	// Auth entry pages: already-authenticated sessions go to their home.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RedirectIfAuthenticated)
		r.Get("/login", authHandler.LoginPage)
		r.Post("/login", authHandler.LoginSubmit)
		r.Get("/register", authHandler.RegisterPage)
		r.Post("/register", authHandler.RegisterSubmit)
	})
	r.Post("/logout", authHandler.Logout)

	// Signed-in user routes.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.BlockAdminOnUserRoutes)

		r.Get("/cart", cartHandler.CartPage)
		r.Post("/cart/add/{activityID}", cartHandler.AddToCart)
		r.Post("/cart/increase/{itemID}", cartHandler.IncreaseQuantity)
		r.Post("/cart/decrease/{itemID}", cartHandler.DecreaseQuantity)
		r.Post("/cart/remove/{itemID}", cartHandler.RemoveItem)

		r.Get("/checkout", checkoutHandler.CheckoutPage)
		r.Post("/checkout", checkoutHandler.ConfirmPayment)
		r.Post("/checkout/promo", checkoutHandler.ApplyPromo)

		r.Get("/transactions", transactionHandler.ListPage)
		r.Get("/transactions/{id}", transactionHandler.DetailPage)
		r.Post("/transactions/{id}/proof", transactionHandler.SubmitProof)
		r.Post("/transactions/{id}/cancel", transactionHandler.Cancel)

		r.Get("/profile", profileHandler.ProfilePage)
		r.Post("/profile", profileHandler.UpdateProfile)

		r.Get("/wishlist", pageHandler.WishlistPage)
		r.Get("/notifications", pageHandler.NotificationsPage)
	})

	// Admin routes.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/", adminHandler.Dashboard)

		r.Get("/activities", adminCatalogHandler.ActivitiesPage)
		r.Post("/activities", adminCatalogHandler.CreateActivity)
		r.Post("/activities/{id}", adminCatalogHandler.UpdateActivity)
		r.Post("/activities/{id}/delete", adminCatalogHandler.DeleteActivity)

		r.Get("/promos", adminCatalogHandler.PromosPage)
		r.Post("/promos", adminCatalogHandler.CreatePromo)
		r.Post("/promos/{id}", adminCatalogHandler.UpdatePromo)
		r.Post("/promos/{id}/delete", adminCatalogHandler.DeletePromo)

		r.Get("/banners", adminCatalogHandler.BannersPage)
		r.Post("/banners", adminCatalogHandler.CreateBanner)
		r.Post("/banners/{id}", adminCatalogHandler.UpdateBanner)
		r.Post("/banners/{id}/delete", adminCatalogHandler.DeleteBanner)

		r.Get("/payment-methods", adminCatalogHandler.PaymentMethodsPage)
		r.Post("/payment-methods", adminCatalogHandler.CreatePaymentMethod)
		r.Post("/payment-methods/{id}", adminCatalogHandler.UpdatePaymentMethod)
		r.Post("/payment-methods/{id}/delete", adminCatalogHandler.DeletePaymentMethod)

		r.Get("/transactions", adminTransactionHandler.TransactionsPage)
		r.Post("/transactions/{id}/status", adminTransactionHandler.UpdateStatus)

		r.Get("/users", adminUserHandler.UsersPage)
		r.Post("/users/{id}/role", adminUserHandler.UpdateRole)
	})

	r.Get("/help", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/help-center", http.StatusMovedPermanently)
	})
	r.Get("/help-center", pageHandler.HelpCenterPage)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"travel-storefront"}`))
	})

	r.NotFound(pageHandler.NotFound)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
