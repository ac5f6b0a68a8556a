package app

import (
	"os"

	internalApp "event-marketplace/internal/app"
	"event-marketplace/pkg/handlers"
	"event-marketplace/pkg/metrics"
	"event-marketplace/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes configures all application routes
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	cfg := c.Config

	renderer := &handlers.Renderer{
		Templates: c.Templates,
		Dir:       cfg.ViewsDir,
		SiteName:  cfg.SiteName,
	}

	public := &handlers.PublicHandler{Renderer: renderer, Catalog: c.CatalogService}
	vendor := &handlers.VendorHandler{Renderer: renderer, Registration: c.RegistrationService}
	dashboard := &handlers.DashboardHandler{Renderer: renderer, Dashboard: c.DashboardService}
	auth := &handlers.AuthHandler{
		Renderer:      renderer,
		Auth:          c.Auth,
		SecureCookies: cfg.SecureCookies,
		SessionTTL:    cfg.SessionTTL,
	}

	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ---------------------------------------------------------
		// 1. GLOBAL MIDDLEWARE
		// ---------------------------------------------------------
		if cfg.MetricsEnabled {
			se.Router.BindFunc(metrics.Middleware())
		}
		se.Router.BindFunc(middleware.LoadIdentity(c.Auth))

		// ---------------------------------------------------------
		// 2. STATIC FILES & METRICS
		// ---------------------------------------------------------
		se.Router.GET("/assets/{path...}", apis.Static(os.DirFS(cfg.AssetsDir), false))

		if cfg.MetricsEnabled {
			se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))
		}

		// ---------------------------------------------------------
		// 3. PAGES
		// ---------------------------------------------------------
		se.Router.GET("/{$}", public.Home)
		se.Router.GET("/services", public.Services)
		se.Router.GET("/services/vendors", public.VendorGrid)

		se.Router.GET("/vendor/register", vendor.ShowRegistration)
		se.Router.POST("/vendor/register", vendor.Register)

		se.Router.GET("/dashboard", dashboard.Show)

		se.Router.GET("/login", auth.ShowLogin)
		se.Router.POST("/login", auth.ProcessLogin)
		se.Router.GET("/logout", auth.Logout)

		return se.Next()
	})
}
