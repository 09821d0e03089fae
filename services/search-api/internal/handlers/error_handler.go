package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg"
	"github.com/errata-labs/errata-go/pkg/dataset"
	"github.com/errata-labs/errata-go/pkg/utils"
	"github.com/errata-labs/errata-go/services/search-api/internal/services"
)

type ErrorHandler struct {
	logger  *zap.Logger
	service services.SearchService
}

func NewErrorHandler(logger *zap.Logger, svc services.SearchService) *ErrorHandler {
	return &ErrorHandler{logger: logger, service: svc}
}

// RegisterRoutes registers the error catalog routes on the provided group.
func (h *ErrorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/errors/search", h.Search)
	r.GET("/errors", h.ListAll)
	r.GET("/errors/:code", h.GetByCode)
	r.GET("/errors/:code/solutions", h.GetSolutions)
	r.GET("/apis/stats", h.GetStats)
}

func (h *ErrorHandler) Search(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return
	}

	q := dataset.Query{
		Text:     c.Query("q"),
		Page:     pageParam(c),
		API:      c.DefaultQuery("api", pkg.FilterAll),
		Severity: c.DefaultQuery("severity", pkg.FilterAll),
	}

	res, err := h.service.Search(c.Request.Context(), traceID, q)
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ErrorHandler) ListAll(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return
	}

	res, err := h.service.ListAll(c.Request.Context(), traceID, pageParam(c),
		c.DefaultQuery("api", pkg.FilterAll), c.DefaultQuery("severity", pkg.FilterAll))
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ErrorHandler) GetByCode(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return
	}

	rec, err := h.service.GetByCode(traceID, c.Param("code"))
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": rec})
}

func (h *ErrorHandler) GetSolutions(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return
	}

	res, err := h.service.Solutions(c.Request.Context(), traceID, c.Param("code"))
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ErrorHandler) GetStats(c *gin.Context) {
	traceID, err := utils.GetTraceID(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, pkg.ErrorResponse{
			Code:    pkg.ErrServerCode.Code,
			Message: err.Error(),
		})
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), traceID)
	if err != nil {
		resp := pkg.ToErrorResponse(h.logger, traceID, err)
		c.JSON(resp.Status, resp)
		return
	}
	c.JSON(http.StatusOK, gin.H{"apis": stats})
}

// pageParam reads the page query param; anything unparsable means page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
