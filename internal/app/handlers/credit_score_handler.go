package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gramsetu/credit_lending/internal/pkg/models"
	"gramsetu/credit_lending/internal/pkg/services"
	"gramsetu/credit_lending/internal/pkg/utils"
)

type CreditScoreHandler struct {
	creditScoreService services.CreditScoreServiceInterface
}

func NewCreditScoreHandler(creditScoreService services.CreditScoreServiceInterface) *CreditScoreHandler {
	return &CreditScoreHandler{
		creditScoreService: creditScoreService,
	}
}

func (h *CreditScoreHandler) CalculateScore(c *gin.Context) {
	var req models.CalculateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.creditScoreService.CalculateScore(c, req.BeneficiaryID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CreditScoreHandler) GetLatestScore(c *gin.Context) {
	beneficiaryID := c.Param("BeneficiaryId")

	score, err := h.creditScoreService.LatestScore(c, beneficiaryID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, score)
}

func (h *CreditScoreHandler) GetScoreHistory(c *gin.Context) {
	beneficiaryID := c.Param("BeneficiaryId")

	scores, err := h.creditScoreService.ScoreHistory(c, beneficiaryID)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (h *CreditScoreHandler) ListScores(c *gin.Context) {
	riskBand := c.Query("riskBand")

	var minScore, maxScore *int
	if raw := c.Query("minScore"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minScore must be an integer"})
			return
		}
		minScore = &value
	}
	if raw := c.Query("maxScore"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxScore must be an integer"})
			return
		}
		maxScore = &value
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)

	scores, err := h.creditScoreService.ListScores(c, riskBand, minScore, maxScore, limit)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (h *CreditScoreHandler) ScoreAnalytics(c *gin.Context) {
	analytics, err := h.creditScoreService.ScoreAnalytics(c)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error(), "code": utils.GetErrorCode(err)})
		return
	}
	c.JSON(http.StatusOK, analytics)
}
