package bootstrap

import (
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/spacia-app/property-backend/internal/api/http"
	apimw "github.com/spacia-app/property-backend/internal/api/http/middleware"
	authmw "github.com/spacia-app/property-backend/internal/auth/middleware"
	prophttp "github.com/spacia-app/property-backend/internal/properties/http"
	propservice "github.com/spacia-app/property-backend/internal/properties/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	Redis       *redis.Client
	AuthClient  *fbauth.Client // nil enables the dev identity shim
	Properties  *propservice.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestID())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	if dep.AuthClient != nil {
		api.Use(authmw.FirebaseAuth(dep.AuthClient))
	} else {
		api.Use(authmw.DevAuth())
	}

	prophttp.Register(api.Group("/property"), dep.Properties)

	return r
}
