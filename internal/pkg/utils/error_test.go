package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"gramsetu/credit_lending/internal/pkg/consts"
)

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "GRAMSETU_LENDING_BENEFICIARY_NOT_FOUND", GetErrorCode(consts.ErrorBeneficiaryNotFound))
	assert.Equal(t, "GRAMSETU_LENDING_INTERNAL_ERROR", GetErrorCode(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", consts.ErrorBeneficiaryNotFound, http.StatusNotFound},
		{"validation", consts.ErrorInvalidMonthYear, http.StatusBadRequest},
		{"invalid state", consts.ErrorBeneficiaryNotActive, http.StatusConflict},
		{"missing prerequisite", consts.ErrorNoCreditScore, http.StatusConflict},
		{"expired", consts.ErrorCreditScoreExpired, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
