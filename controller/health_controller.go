package controller

import (
	"net/http"
	"time"

	"earnings/model"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	cfg *model.EnvConfig
}

func NewHealthController(cfg *model.EnvConfig) *HealthController {
	return &HealthController{cfg: cfg}
}

// RegisterRoutes sets up the health check endpoint under the /api group
func (ctrl *HealthController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", ctrl.healthCheck)
	router.HEAD("/health", ctrl.healthCheck)
}

// healthCheck reports liveness and which upstream credentials are configured.
func (ctrl *HealthController) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Success:   true,
		Message:   "API is running",
		Timestamp: time.Now().UTC(),
		Apis: map[string]bool{
			"finnhub":      ctrl.cfg.FinnhubApiKey != "",
			"alphaVantage": ctrl.cfg.AlphaVantageApiKey != "",
			"openai":       ctrl.cfg.OpenAiApiKey != "",
			"gemini":       ctrl.cfg.GeminiApiKey != "",
		},
	})
}
