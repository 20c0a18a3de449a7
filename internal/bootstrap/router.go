package bootstrap

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	fbauth "firebase.google.com/go/v4/auth"

	httpapi "github.com/company-mgmt/company-api-backend/internal/api/http"
	apimw "github.com/company-mgmt/company-api-backend/internal/api/http/middleware"
	authmw "github.com/company-mgmt/company-api-backend/internal/auth/middleware"
	"github.com/company-mgmt/company-api-backend/internal/cache"

	companieshttp "github.com/company-mgmt/company-api-backend/internal/companies/http"
	companiesrepo "github.com/company-mgmt/company-api-backend/internal/companies/repository"
	taskshttp "github.com/company-mgmt/company-api-backend/internal/tasks/http"
	tasksrepo "github.com/company-mgmt/company-api-backend/internal/tasks/repository"
	templateshttp "github.com/company-mgmt/company-api-backend/internal/templates/http"
	templatesrepo "github.com/company-mgmt/company-api-backend/internal/templates/repository"
	templatessvc "github.com/company-mgmt/company-api-backend/internal/templates/service"
	usershttp "github.com/company-mgmt/company-api-backend/internal/users/http"
	usersrepo "github.com/company-mgmt/company-api-backend/internal/users/repository"
	userssvc "github.com/company-mgmt/company-api-backend/internal/users/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Auth        *fbauth.Client
	Store       *firestore.Client
	Redis       *redis.Client
	WebAPIKey   string
	RateRPS     float64
	RateBurst   int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Mirrors the permissive CORS policy the frontend relies on.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.Use(apimw.RequestID())

	// One shared limiter; it must sit behind the auth middleware so the
	// uid is set before requests are bucketed, otherwise every client
	// behind one NAT would share an IP bucket.
	limiter := apimw.NewRateLimiter(dep.RateRPS, dep.RateBurst)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	// Sign-up and sign-in stay outside the auth middleware; the limiter
	// keys them by client IP since no uid exists yet.
	if dep.WebAPIKey != "" {
		var accounts userssvc.AccountStore
		if dep.Store != nil {
			accounts = usersrepo.NewRepo(dep.Store)
		}
		public := r.Group("/")
		public.Use(limiter.Middleware())
		usershttp.New(userssvc.New(dep.WebAPIKey, accounts)).Register(public)
	}

	api := r.Group("/")
	if dep.Auth != nil {
		api.Use(authmw.RequireUser(dep.Auth))
	}
	api.Use(limiter.Middleware())

	if dep.Store != nil {
		lists := cache.NewListCache(dep.Redis, cache.DefaultListTTL)

		tasksStore := tasksrepo.NewRepo(dep.Store)
		templatesStore := templatesrepo.NewRepo(dep.Store)

		companieshttp.New(companiesrepo.NewRepo(dep.Store)).WithListCache(lists).Register(api)
		taskshttp.New(tasksStore).WithListCache(lists).Register(api)
		templateshttp.New(templatesStore, templatessvc.NewAssignService(templatesStore, tasksStore)).WithListCache(lists).Register(api)
	}

	return r
}
