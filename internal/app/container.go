// Package app provides the dependency injection container for the marketplace.
package app

import (
	"fmt"
	"html/template"
	"log"

	"event-marketplace/internal/adapter/repository"
	"event-marketplace/internal/config"
	domain "event-marketplace/internal/core"
	"event-marketplace/internal/service"
	"event-marketplace/pkg/notification"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
type Container struct {
	PB     *pocketbase.PocketBase
	Config *config.Config

	Templates *template.Template

	// Repositories (Data Access Layer)
	Auth        domain.AuthGateway
	ProfileRepo domain.ProfileRepository
	VendorRepo  domain.VendorRepository
	BookingRepo domain.BookingRepository

	// Domain Services (Business Logic)
	CatalogService      *service.CatalogService
	DashboardService    *service.DashboardService
	RegistrationService *service.RegistrationService
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase, cfg *config.Config) (*Container, error) {
	c := &Container{
		PB:     pb,
		Config: cfg,
	}

	// 1. Templates
	templates, err := InitTemplates(cfg.ViewsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init templates: %w", err)
	}
	c.Templates = templates

	// 2. Repositories (Adapters)
	c.Auth = repository.NewAuthGateway(pb)
	c.ProfileRepo = repository.NewProfileRepo(pb)
	c.VendorRepo = repository.NewVendorRepo(pb)
	c.BookingRepo = repository.NewBookingRepo(pb)

	// 3. External Services (optional; nil when no credentials are configured)
	var notifier domain.NotificationService
	if cfg.FCMCredentials != "" {
		fcmService, err := notification.NewFCMService(cfg.FCMCredentials, cfg.FCMTopic)
		if err != nil {
			// FCM is optional, continue without it
			log.Printf("⚠️ FCM WARNING: %v", err)
		} else {
			log.Println("✅ FCM Service Initialized")
			notifier = fcmService
		}
	}

	// 4. Domain Services
	c.CatalogService = service.NewCatalogService(c.VendorRepo)
	c.DashboardService = service.NewDashboardService(c.ProfileRepo, c.BookingRepo)
	c.RegistrationService = service.NewRegistrationService(c.Auth, c.VendorRepo, notifier)

	return c, nil
}
