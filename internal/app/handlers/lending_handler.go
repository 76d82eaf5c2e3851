package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/services"
	"gramsetu/credit_lending/internal/pkg/utils"
)

type LendingHandler struct {
	lendingService services.LendingApplicationServiceInterface
}

func NewLendingHandler(lendingService services.LendingApplicationServiceInterface) *LendingHandler {
	return &LendingHandler{
		lendingService: lendingService,
	}
}

func (h *LendingHandler) SubmitApplication(c *gin.Context) {
	var req models.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.lendingService.SubmitApplication(c, req)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *LendingHandler) ReviewApplication(c *gin.Context) {
	var req models.ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.lendingService.ReviewApplication(c, req)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *LendingHandler) ListApplications(c *gin.Context) {
	status := c.Query("status")
	beneficiaryID := c.Query("beneficiaryId")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.lendingService.ListApplications(c, status, beneficiaryID, limit, offset)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *LendingHandler) LendingAnalytics(c *gin.Context) {
	fromDate, err := parseDateQuery(c.Query("fromDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fromDate must be in YYYY-MM-DD or RFC3339 format"})
		return
	}
	toDate, err := parseDateQuery(c.Query("toDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "toDate must be in YYYY-MM-DD or RFC3339 format"})
		return
	}

	analytics, err := h.lendingService.LendingAnalytics(c, fromDate, toDate)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func parseDateQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
