package routes

import (
	"time"

	"coworka/api/handler"
	"coworka/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Clients        *handler.ClientHandler
	Visitors       *handler.VisitorHandler
	Bookings       *handler.BookingHandler
	Memberships    *handler.MembershipHandler
	Catalog        *handler.CatalogHandler
	Invoices       *handler.InvoiceHandler
	Leads          *handler.LeadHandler
	Opportunities  *handler.OpportunityHandler
	Quotations     *handler.QuotationHandler
	Access         *handler.AccessHandler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
	AccessRate     *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	auth *handler.AuthHandler,
	clients *handler.ClientHandler,
	visitors *handler.VisitorHandler,
	bookings *handler.BookingHandler,
	memberships *handler.MembershipHandler,
	catalog *handler.CatalogHandler,
	invoices *handler.InvoiceHandler,
	leads *handler.LeadHandler,
	opportunities *handler.OpportunityHandler,
	quotations *handler.QuotationHandler,
	access *handler.AccessHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           auth,
		Clients:        clients,
		Visitors:       visitors,
		Bookings:       bookings,
		Memberships:    memberships,
		Catalog:        catalog,
		Invoices:       invoices,
		Leads:          leads,
		Opportunities:  opportunities,
		Quotations:     quotations,
		Access:         access,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
		AccessRate:     middleware.NewRateLimiter(rate.Limit(20), 40, 5*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	staff := middleware.RequireRole("admin", "manager")
	admin := middleware.RequireRole("admin")

	e.POST("/auth/signup", r.Auth.Signup, r.AuthRate.Middleware())
	e.POST("/auth/verify-email", r.Auth.VerifyEmail, r.AuthRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())
	e.POST("/auth/login/mfa", r.Auth.LoginWithMFA, r.LoginRate.Middleware())
	e.POST("/auth/refresh", r.Auth.Refresh, r.AuthRate.Middleware())
	e.POST("/auth/logout", r.Auth.Logout, requireAuth)
	e.POST("/auth/logout-all", r.Auth.LogoutAll, requireAuth)
	e.POST("/auth/password/forgot", r.Auth.PasswordForgot, r.LoginRate.Middleware())
	e.POST("/auth/password/reset", r.Auth.PasswordReset, r.AuthRate.Middleware())
	e.POST("/auth/mfa/enable", r.Auth.EnableMFA, requireAuth)
	e.POST("/auth/mfa/verify", r.Auth.VerifyMFA, requireAuth)
	e.POST("/auth/mfa/disable", r.Auth.DisableMFA, requireAuth)

	e.GET("/me", r.Auth.Me, requireAuth)
	e.GET("/admin/users", r.Auth.AdminListUsers, requireAuth, admin)
	e.POST("/admin/users/:id/revoke-sessions", r.Auth.AdminRevokeUserSessions, requireAuth, admin)

	clients := e.Group("/clients", requireAuth)
	clients.POST("", r.Clients.Create, staff)
	clients.GET("", r.Clients.List)
	clients.GET("/:id", r.Clients.Get)
	clients.PATCH("/:id", r.Clients.Update, staff)
	clients.DELETE("/:id", r.Clients.Deactivate, staff)

	visitors := e.Group("/visitors", requireAuth)
	visitors.POST("", r.Visitors.Create)
	visitors.GET("", r.Visitors.List)
	visitors.GET("/:id", r.Visitors.Get)
	visitors.POST("/:id/check-in", r.Visitors.CheckIn)
	visitors.POST("/:id/check-out", r.Visitors.CheckOut)

	bookings := e.Group("/bookings", requireAuth)
	bookings.POST("", r.Bookings.Create)
	bookings.GET("", r.Bookings.List)
	bookings.GET("/:id", r.Bookings.Get)
	bookings.PATCH("/:id", r.Bookings.Update)
	bookings.POST("/:id/confirm", r.Bookings.Confirm, staff)
	bookings.POST("/:id/cancel", r.Bookings.Cancel)
	bookings.POST("/:id/complete", r.Bookings.Complete, staff)

	memberships := e.Group("/memberships", requireAuth)
	memberships.POST("", r.Memberships.Create, staff)
	memberships.GET("", r.Memberships.List)
	memberships.GET("/:id", r.Memberships.Get)
	memberships.POST("/:id/status", r.Memberships.ChangeStatus, staff)

	services := e.Group("/services", requireAuth)
	services.POST("", r.Catalog.Create, staff)
	services.GET("", r.Catalog.List)
	services.GET("/:id", r.Catalog.Get)
	services.PATCH("/:id", r.Catalog.Update, staff)

	invoices := e.Group("/invoices", requireAuth)
	invoices.POST("", r.Invoices.Create, staff)
	invoices.GET("", r.Invoices.List)
	invoices.GET("/:id", r.Invoices.Get)
	invoices.POST("/:id/send", r.Invoices.Send, staff)
	invoices.POST("/:id/pay", r.Invoices.MarkPaid, staff)
	invoices.POST("/:id/void", r.Invoices.Void, staff)

	leads := e.Group("/leads", requireAuth)
	leads.POST("", r.Leads.Create)
	leads.GET("", r.Leads.List)
	leads.GET("/:id", r.Leads.Get)
	leads.POST("/:id/status", r.Leads.ChangeStatus)
	leads.POST("/:id/convert", r.Leads.Convert, staff)

	opportunities := e.Group("/opportunities", requireAuth)
	opportunities.POST("", r.Opportunities.Create)
	opportunities.GET("", r.Opportunities.List)
	opportunities.GET("/:id", r.Opportunities.Get)
	opportunities.POST("/:id/stage", r.Opportunities.ChangeStage)

	quotations := e.Group("/quotations", requireAuth)
	quotations.POST("", r.Quotations.Create, staff)
	quotations.GET("", r.Quotations.List)
	quotations.GET("/:id", r.Quotations.Get)
	quotations.POST("/:id/send", r.Quotations.Send, staff)
	quotations.POST("/:id/accept", r.Quotations.Accept, staff)
	quotations.POST("/:id/reject", r.Quotations.Reject, staff)

	access := e.Group("/access", requireAuth)
	access.POST("/points", r.Access.CreatePoint, admin)
	access.GET("/points", r.Access.ListPoints)
	access.GET("/points/:id", r.Access.GetPoint)
	access.PATCH("/points/:id/config", r.Access.UpdatePointConfig, admin)
	access.POST("/points/:id/control", r.Access.ControlPoint, staff)
	access.POST("/points/:id/grant", r.Access.GrantAccess, r.AccessRate.Middleware())
	access.POST("/points/:id/events", r.Access.RecordEvent, r.AccessRate.Middleware())
	access.POST("/credentials", r.Access.IssueCredential, staff)
	access.GET("/credentials", r.Access.ListCredentials, staff)
	access.DELETE("/credentials/:id", r.Access.DeactivateCredential, staff)
	access.GET("/logs", r.Access.ListLogs, staff)
	access.GET("/alerts", r.Access.ListAlerts, staff)
	access.POST("/alerts/:id/resolve", r.Access.ResolveAlert, staff)
	access.GET("/analytics", r.Access.Analytics, staff)
}
