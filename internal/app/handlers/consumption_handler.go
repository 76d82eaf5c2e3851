package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/services"
	"gramsetu/credit_lending/internal/pkg/utils"
)

type ConsumptionHandler struct {
	consumptionService services.ConsumptionServiceInterface
}

func NewConsumptionHandler(consumptionService services.ConsumptionServiceInterface) *ConsumptionHandler {
	return &ConsumptionHandler{
		consumptionService: consumptionService,
	}
}

func (h *ConsumptionHandler) UploadConsumption(c *gin.Context) {
	var req models.UploadConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.consumptionService.UploadConsumption(c, req)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *ConsumptionHandler) BulkUploadConsumption(c *gin.Context) {
	var req models.BulkUploadConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.consumptionService.BulkUploadConsumption(c, req)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *ConsumptionHandler) GetConsumption(c *gin.Context) {
	beneficiaryID := c.Param("BeneficiaryId")
	dataType := c.Query("dataType")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	records, err := h.consumptionService.GetConsumption(c, beneficiaryID, dataType, limit)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *ConsumptionHandler) VerifyConsumption(c *gin.Context) {
	var req models.VerifyConsumptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.consumptionService.VerifyConsumption(c, req); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
