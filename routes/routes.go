package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mwhitfield/wedding-website-backend/config"
	"github.com/mwhitfield/wedding-website-backend/database"
	"github.com/mwhitfield/wedding-website-backend/internal/auditlog"
	"github.com/mwhitfield/wedding-website-backend/internal/reports"
	"github.com/mwhitfield/wedding-website-backend/internal/rsvp"
	"github.com/mwhitfield/wedding-website-backend/internal/schedule"
	"github.com/mwhitfield/wedding-website-backend/middleware"
)

func Setup(r *gin.Engine, cfg *config.Config, db *database.Mongo) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// Per-IP rate limit on the whole API; audit middleware captures client IPs
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimiter(cfg))
	api.Use(middleware.AuditMiddleware())

	// ========== Audit Log Module ==========
	auditRepo := auditlog.NewRepository(db.Collection("audit_logs"))
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== RSVP Module ==========
	rsvpRepo := rsvp.NewRepository(db.Collection("rsvps"))
	rsvpSvc := rsvp.NewService(rsvpRepo, auditSvc, cfg)
	rsvpHandler := rsvp.NewHandler(rsvpSvc)

	// Public RSVP endpoints, consumed by the wedding site front end
	rsvps := api.Group("/rsvps")
	{
		rsvps.GET("", rsvpHandler.ListRSVPs)
		rsvps.POST("", rsvpHandler.CreateRSVP)
		rsvps.GET("/stats", rsvpHandler.GetStats)
		rsvps.GET("/check-email", rsvpHandler.CheckEmail)
		rsvps.GET("/:id", rsvpHandler.GetRSVPByID)
		rsvps.PUT("/:id", rsvpHandler.UpdateRSVP)
		rsvps.DELETE("/:id", rsvpHandler.DeleteRSVP)
	}

	// ========== Schedule Module ==========
	scheduleRepo := schedule.NewRepository(db.Collection("schedule"))
	scheduleHandler := schedule.NewHandler(scheduleRepo)

	// Wedding-day timeline shown on the public site
	api.GET("/schedule", scheduleHandler.ListSchedule)

	// ========== Admin Area ==========
	// Tokens come from the external identity provider; we verify the signature
	// and gate on the configured email allow-list.
	authorizer := middleware.NewAllowlistAuthorizer(cfg.AdminAllowedEmails)

	exporter := reports.NewExporter()
	reportsHandler := reports.NewHandler(rsvpSvc, exporter, auditSvc)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg, authorizer))
	{
		admin.GET("/rsvps", rsvpHandler.AdminListRSVPs)
		admin.GET("/rsvps/export", reportsHandler.ExportGuestList)
		admin.PATCH("/rsvps/:id/approval", rsvpHandler.UpdateApproval)
		admin.DELETE("/rsvps/:id", rsvpHandler.AdminDeleteRSVP)

		admin.POST("/schedule", scheduleHandler.CreateItem)
		admin.PUT("/schedule/:id", scheduleHandler.UpdateItem)
		admin.DELETE("/schedule/:id", scheduleHandler.DeleteItem)

		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
	}
}
