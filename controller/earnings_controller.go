package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"earnings/customerrors"
	"earnings/model"
	"earnings/service"
	"earnings/validator"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	malformedBatchMessage = "Please provide an array of symbols"
	oversizedBatchMessage = "Too many symbols in one request"
)

type EarningsController struct {
	reportService   service.EarningsReportService
	maxBatchSymbols int
}

func NewEarningsController(rs service.EarningsReportService, maxBatchSymbols int) *EarningsController {
	return &EarningsController{
		reportService:   rs,
		maxBatchSymbols: maxBatchSymbols,
	}
}

func (ctrl *EarningsController) RegisterRoutes(router *gin.RouterGroup) {
	earningsGroup := router.Group("/earnings")
	{
		earningsGroup.POST("/batch", ctrl.getBatch)
		earningsGroup.GET("/:symbol", ctrl.getEarnings)
	}
}

func (ctrl *EarningsController) getEarnings(c *gin.Context) {
	symbol := c.Param("symbol")
	if strings.TrimSpace(symbol) == "" {
		c.JSON(http.StatusBadRequest, NewErrorResponse("Symbol is required", ""))
		return
	}

	report, err := ctrl.reportService.GetReport(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, customerrors.ErrInvalidSymbol) {
			c.JSON(http.StatusBadRequest, NewErrorResponse("Symbol is required", ""))
			return
		}
		log.Error().Err(err).Str("symbol", symbol).Msg("failed to build earnings report")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to fetch earnings data", err.Error()))
		return
	}

	c.JSON(http.StatusOK, NewResponse(report, "Earnings data retrieved"))
}

func (ctrl *EarningsController) getBatch(c *gin.Context) {
	var req model.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(fmt.Errorf("%w: %v", customerrors.ErrMalformedBatchRequest, err)).Msg("batch request rejected")
		c.JSON(http.StatusBadRequest, NewErrorResponse(malformedBatchMessage, ""))
		return
	}

	if issues := validator.ValidateBatchRequest(&req, ctrl.maxBatchSymbols); issues != nil {
		log.Debug().Err(customerrors.ErrMalformedBatchRequest).Interface("issues", issues).Msg("batch request rejected")
		msg := malformedBatchMessage
		if ctrl.maxBatchSymbols > 0 && len(req.Symbols) > ctrl.maxBatchSymbols {
			msg = oversizedBatchMessage
		}
		c.JSON(http.StatusBadRequest, NewErrorResponse(msg, ""))
		return
	}

	results, err := ctrl.reportService.GetBatch(c.Request.Context(), req.Symbols)
	if err != nil {
		log.Error().Err(err).Int("symbols", len(req.Symbols)).Msg("batch request failed")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("Failed to process batch request", err.Error()))
		return
	}

	c.JSON(http.StatusOK, model.BatchResponse{
		Success: true,
		Results: results,
	})
}
