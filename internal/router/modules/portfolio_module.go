package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/skillsnap/skillsnap-server/internal/interface/http"
	"github.com/skillsnap/skillsnap-server/internal/interface/middleware"
	"github.com/skillsnap/skillsnap-server/pkg/helpers"
)

// PortfolioModule wires portfolio routes.
// Public: GET /api/portfolio, GET /api/portfolio/:id
// Protected: POST /api/portfolio (bearer token)
type PortfolioModule struct {
	Handler *handlers.PortfolioHandler
	JWT     *helpers.JWTManager
}

func NewPortfolioModule(h *handlers.PortfolioHandler, jwt *helpers.JWTManager) *PortfolioModule {
	return &PortfolioModule{Handler: h, JWT: jwt}
}

func (m *PortfolioModule) Register(rg *gin.RouterGroup) {
	rg.GET("/portfolio", m.Handler.List)
	rg.GET("/portfolio/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/portfolio", m.Handler.Create)
	}
}
