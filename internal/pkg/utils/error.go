package utils

import (
	"net/http"

	"gramsetu/credit_lending/internal/pkg/consts"
	"gramsetu/credit_lending/internal/pkg/models"
)

func GetErrorCode(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorCode()
	}
	return "GRAMSETU_LENDING_INTERNAL_ERROR"
}

func GetErrorKind(err error) string {
	if customErr, ok := err.(*models.CustomError); ok {
		return customErr.ErrorKind()
	}
	return consts.KindInternal
}

// HTTPStatus maps an error to the response status code.
func HTTPStatus(err error) int {
	switch GetErrorKind(err) {
	case consts.KindNotFound:
		return http.StatusNotFound
	case consts.KindValidationError:
		return http.StatusBadRequest
	case consts.KindInvalidState, consts.KindMissingPrerequisite, consts.KindExpired:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
