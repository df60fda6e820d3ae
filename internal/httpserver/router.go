package httpserver

import (
	"context"
	"strconv"
	"time"

	"solarflow/internal/handler"
	"solarflow/pkg/metrics"
	"solarflow/pkg/mq"
	"solarflow/pkg/rbac"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	Engine *gin.Engine
}

type Handlers struct {
	Auth          *handler.AuthHandler
	Customer      *handler.CustomerHandler
	Document      *handler.DocumentHandler
	Checklist     *handler.ChecklistHandler
	Wiring        *handler.WiringHandler
	Inspection    *handler.InspectionHandler
	Commissioning *handler.CommissioningHandler
	Progress      *handler.ProgressHandler
}

func NewRouter(h Handlers, jwtSecret string, logger *zap.Logger, db *pgxpool.Pool, publisher *mq.Publisher) *Router {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		metrics.RecordHTTPRequestDuration(c.Request.Method, c.FullPath(), strconv.Itoa(c.Writer.Status()), latency)
		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	})

	// Health endpoints first
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.GET("/customers", h.Customer.List)
		auth.GET("/customers/:id", h.Customer.Get)
		auth.POST("/customers", RequirePermission(rbac.PermissionCreateCustomer), h.Customer.Create)
		auth.PUT("/customers/:id", h.Customer.Update)
		auth.DELETE("/customers/:id", RequirePermission(rbac.PermissionDeleteCustomer), h.Customer.Delete)

		auth.GET("/customers/:id/documents", h.Document.ListByCustomer)
		auth.PUT("/documents/:id", RequirePermission(rbac.PermissionUpdateSection), h.Document.Update)

		auth.GET("/customers/:id/checklist", h.Checklist.ListByCustomer)
		auth.PUT("/checklist/:id", RequirePermission(rbac.PermissionUpdateSection), h.Checklist.Update)

		auth.GET("/customers/:id/wiring", h.Wiring.GetByCustomer)
		auth.PUT("/customers/:id/wiring", RequirePermission(rbac.PermissionUpdateSection), h.Wiring.Upsert)

		auth.GET("/customers/:id/inspections", h.Inspection.ListByCustomer)
		auth.PUT("/inspections/:id", RequirePermission(rbac.PermissionUpdateSection), h.Inspection.Update)

		auth.GET("/customers/:id/commissioning", h.Commissioning.GetByCustomer)
		auth.PUT("/customers/:id/commissioning", RequirePermission(rbac.PermissionUpdateSection), h.Commissioning.Upsert)

		auth.GET("/customers/:id/progress", RequirePermission(rbac.PermissionReadProgress), h.Progress.GetProgress)
		auth.POST("/customers/:id/progress/recompute", RequirePermission(rbac.PermissionUpdateSection), h.Progress.Recompute)

		auth.GET("/activities", h.Progress.ListActivities)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(":" + port)
}
