package bootstrap

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/project-admin/config"
	httpapi "github.com/GoSim-25-26J-441/project-admin/internal/api/http"
	"github.com/GoSim-25-26J-441/project-admin/internal/api/http/middleware"
	projecthttp "github.com/GoSim-25-26J-441/project-admin/internal/projects/http"
	"github.com/GoSim-25-26J-441/project-admin/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Projects    *service.ProjectService
	Admin       config.AdminConfig
	CORSOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	var db, cache httpapi.Pinger
	if dep.DB != nil {
		db = dep.DB
	}
	if dep.Redis != nil {
		cache = httpapi.PingFunc(func(ctx context.Context) error { return dep.Redis.Ping(ctx).Err() })
	}
	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, db, cache).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin")
	admin.Use(middleware.APIKeyMiddleware(dep.Admin.APIKey))
	admin.Use(middleware.RateLimitMiddleware(dep.Admin.RateLimit, dep.Admin.RateBurst))

	projecthttp.New(dep.Projects).Register(admin.Group("/projects"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderAPIKey, middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
