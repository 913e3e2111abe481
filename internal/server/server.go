package server

import (
	"context"
	"net/http"

	"github.com/duonglna/hoibongcuoinhandao/internal/auth"
	"github.com/duonglna/hoibongcuoinhandao/internal/config"
	"github.com/duonglna/hoibongcuoinhandao/internal/court"
	"github.com/duonglna/hoibongcuoinhandao/internal/fund"
	"github.com/duonglna/hoibongcuoinhandao/internal/member"
	"github.com/duonglna/hoibongcuoinhandao/internal/notify"
	"github.com/duonglna/hoibongcuoinhandao/internal/payment"
	"github.com/duonglna/hoibongcuoinhandao/internal/schedule"
	"github.com/duonglna/hoibongcuoinhandao/internal/settlement"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, notifyService *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	memberRepo := member.NewRepository(db)
	courtRepo := court.NewRepository(db)
	scheduleRepo := schedule.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	fundRepo := fund.NewRepository(db)
	settlementRepo := settlement.NewRepository(db)

	memberHandler := member.NewHandler(member.NewService(memberRepo))
	courtHandler := court.NewHandler(court.NewService(courtRepo))
	scheduleHandler := schedule.NewHandler(schedule.NewService(scheduleRepo, courtRepo, paymentRepo))
	paymentHandler := payment.NewHandler(paymentRepo)
	fundHandler := fund.NewHandler(fund.NewService(fundRepo, memberRepo, paymentRepo))

	var notifier settlement.Notifier
	if notifyService != nil {
		notifier = notifyService
	}
	settlementHandler := settlement.NewHandler(
		settlement.NewService(settlementRepo, scheduleRepo, memberRepo, notifier))

	authHandler := auth.NewHandler(cfg.JWTSecret, cfg.AdminPassword, cfg.AdminPasswordHash)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	router.POST("/auth/login", authHandler.Login)

	router.GET("/members", memberHandler.ListMembers)
	router.GET("/courts", courtHandler.ListCourts)
	router.GET("/schedules/week", scheduleHandler.WeekFeed)
	router.GET("/member/schedule", scheduleHandler.MemberWeekSchedule)
	router.GET("/member/balance", fundHandler.MemberBalance)

	admin := router.Group("/admin")
	admin.Use(auth.AuthMiddleware(cfg.JWTSecret), auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/members", memberHandler.CreateMember)
		admin.PUT("/members/:memberID", memberHandler.UpdateMember)
		admin.DELETE("/members/:memberID", memberHandler.DeleteMember)
		admin.GET("/members/:memberID/payments", paymentHandler.ListByMember)

		admin.POST("/courts", courtHandler.CreateCourt)
		admin.PUT("/courts/:courtID", courtHandler.UpdateCourt)
		admin.DELETE("/courts/:courtID", courtHandler.DeleteCourt)

		admin.GET("/schedules", scheduleHandler.ListSchedules)
		admin.POST("/schedules", scheduleHandler.CreateSchedule)
		admin.PUT("/schedules/:scheduleID", scheduleHandler.UpdateSchedule)
		admin.DELETE("/schedules/:scheduleID", scheduleHandler.DeleteSchedule)
		admin.POST("/schedules/:scheduleID/settle", settlementHandler.Settle)
		admin.GET("/schedules/:scheduleID/payments", paymentHandler.ListBySchedule)

		admin.GET("/funds", fundHandler.ListFunds)
		admin.POST("/funds", fundHandler.CreateFund)
	}

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
