package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/services"
	"gramsetu/credit_lending/internal/pkg/utils"
)

type BeneficiaryHandler struct {
	beneficiaryService services.BeneficiaryServiceInterface
}

func NewBeneficiaryHandler(beneficiaryService services.BeneficiaryServiceInterface) *BeneficiaryHandler {
	return &BeneficiaryHandler{
		beneficiaryService: beneficiaryService,
	}
}

func (h *BeneficiaryHandler) CreateBeneficiary(c *gin.Context) {
	var req models.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	beneficiary, err := h.beneficiaryService.CreateBeneficiary(c, req)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusCreated, beneficiary)
}

func (h *BeneficiaryHandler) GetBeneficiary(c *gin.Context) {
	beneficiaryID := c.Param("BeneficiaryId")

	beneficiary, err := h.beneficiaryService.GetBeneficiary(c, beneficiaryID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, beneficiary)
}

func (h *BeneficiaryHandler) GetProfile(c *gin.Context) {
	beneficiaryID := c.Param("BeneficiaryId")

	profile, err := h.beneficiaryService.Profile(c, beneficiaryID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BeneficiaryHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateBeneficiaryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.beneficiaryService.UpdateStatus(c, req); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
