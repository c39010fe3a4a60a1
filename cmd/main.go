package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"coworka/api/handler"
	apiMiddleware "coworka/api/middleware"
	"coworka/api/routes"
	"coworka/config"
	"coworka/internal/repository"
	"coworka/internal/service"
	"coworka/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if os.Getenv("DB_AUTO_MIGRATE") == "true" {
		if err := config.Migrate(db); err != nil {
			logger.WithError(err).Fatal("migration failed")
		}
	}

	validate := validator.New()
	registerJSONTagNames(validate)

	accessSecret := []byte(os.Getenv("JWT_SECRET"))
	issuer := os.Getenv("JWT_ISSUER")
	if len(accessSecret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	accessManager := utils.JWTManager{
		Secret:         accessSecret,
		Issuer:         issuer,
		AccessTokenTTL: 15 * time.Minute,
	}
	accessIssuer := service.JWTAccessIssuer{Manager: &accessManager}

	mfaSecret := os.Getenv("MFA_JWT_SECRET")
	if mfaSecret == "" {
		mfaSecret = os.Getenv("JWT_SECRET")
	}
	mfaIssuer := service.MFATokenIssuerJWT{
		Secret: []byte(mfaSecret),
		Issuer: issuer,
		TTL:    5 * time.Minute,
	}
	mfaProvider := service.NewTOTPProvider(issuer)

	var emailSender service.EmailSender
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		emailSender = service.NewResendEmailSender(apiKey, os.Getenv("EMAIL_FROM"), os.Getenv("APP_BASE_URL"))
	}

	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	verificationRepo := repository.NewVerificationTokenRepository(db)
	mfaRepo := repository.NewMFASecretRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	clientRepo := repository.NewClientRepository(db)
	visitorRepo := repository.NewVisitorRepository(db)
	offeringRepo := repository.NewServiceOfferingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	accessPointRepo := repository.NewAccessPointRepository(db)
	credentialRepo := repository.NewAccessCredentialRepository(db)
	accessLogRepo := repository.NewAccessLogRepository(db)
	alertRepo := repository.NewAccessAlertRepository(db)

	clock := service.RealClock{}
	passwordHasher := service.BcryptPasswordHasher{}

	authService := service.NewAuthService(
		tenantRepo,
		userRepo,
		sessionRepo,
		verificationRepo,
		mfaRepo,
		auditRepo,
		emailSender,
		passwordHasher,
		accessIssuer,
		mfaIssuer,
		mfaProvider,
		clock,
		service.AuthConfig{
			AccessTokenTTL:       15 * time.Minute,
			RefreshTokenTTL:      30 * 24 * time.Hour,
			VerificationTokenTTL: 24 * time.Hour,
			ResetTokenTTL:        30 * time.Minute,
			MFATokenTTL:          5 * time.Minute,
			MFAIssuer:            issuer,
		},
	)
	clientService := service.NewClientService(clientRepo, bookingRepo, membershipRepo, invoiceRepo)
	visitorService := service.NewVisitorService(visitorRepo, clientRepo, clock)
	bookingService := service.NewBookingService(bookingRepo, clientRepo, offeringRepo)
	membershipService := service.NewMembershipService(membershipRepo, clientRepo, clock)
	catalogService := service.NewCatalogService(offeringRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo, emailSender, clock)
	leadService := service.NewLeadService(leadRepo, clientRepo, opportunityRepo)
	opportunityService := service.NewOpportunityService(opportunityRepo, clientRepo)
	quotationService := service.NewQuotationService(quotationRepo, opportunityRepo, clock)
	accessService := service.NewAccessService(accessPointRepo, credentialRepo, accessLogRepo, alertRepo, clock, logger)

	sweeper := service.NewAccessSweeper(accessPointRepo, clock, logger, time.Second)

	authHandler := handler.NewAuthHandler(authService, validate)
	authHandler.CookieDomain = os.Getenv("COOKIE_DOMAIN")
	authHandler.SecureCookies = os.Getenv("COOKIE_SECURE") != "false"

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &accessManager}
	router := routes.NewRouter(
		app,
		authHandler,
		handler.NewClientHandler(clientService, validate),
		handler.NewVisitorHandler(visitorService, validate),
		handler.NewBookingHandler(bookingService, validate),
		handler.NewMembershipHandler(membershipService, validate),
		handler.NewCatalogHandler(catalogService, validate),
		handler.NewInvoiceHandler(invoiceService, validate),
		handler.NewLeadHandler(leadService, validate),
		handler.NewOpportunityHandler(opportunityService, validate),
		handler.NewQuotationHandler(quotationService, validate),
		handler.NewAccessHandler(accessService, validate),
		authMiddleware,
	)
	router.RegisterRoutes()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper.Start(ctx)
	defer sweeper.Stop()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown")
		}
	}()

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Fatal("server stopped")
	}
}

// registerJSONTagNames makes validator report field names as they appear on
// the wire, so fieldErrors keys match the request JSON.
func registerJSONTagNames(validate *validator.Validate) {
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := field.Tag.Get("json")
		if tag == "" || tag == "-" {
			return field.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" {
			return field.Name
		}
		return tag
	})
}
