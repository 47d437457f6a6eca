// internal/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shopledger/backend/internal/i18n"
	"github.com/shopledger/backend/internal/services"
	"github.com/shopledger/backend/internal/utils"
)

// notFoundKeys picks the message for the entity-specific not-found errors.
var notFoundKeys = []struct {
	err error
	key string
}{
	{services.ErrOrderNotFound, i18n.KeyOrderNotFound},
	{services.ErrProductNotFound, i18n.KeyProductNotFound},
	{services.ErrClientNotFound, i18n.KeyClientNotFound},
	{services.ErrCatalogNotFound, i18n.KeyCatalogNotFound},
	{services.ErrUserNotFound, i18n.KeyUserNotFound},
}

// respondError maps a service error onto the response envelope.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	switch {
	case errors.Is(err, services.ErrNotFound):
		for _, nf := range notFoundKeys {
			if errors.Is(err, nf.err) {
				utils.NotFoundResponse(c, nf.key)
				return
			}
		}
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, services.ErrUnparseableReceipt):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPaymentUnparseable), err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	case errors.Is(err, services.ErrMalformedImport):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyBackupMalformed), err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c, "")
	case errors.Is(err, services.ErrOrderLocked):
		utils.ErrorResponse(c, http.StatusConflict, "ORDER_LOCKED", i18n.T(lang, i18n.KeyOrderLocked), nil)
	case errors.Is(err, services.ErrDuplicatePayment):
		utils.ErrorResponse(c, http.StatusConflict, "DUPLICATE_PAYMENT", i18n.T(lang, i18n.KeyPaymentDuplicate), nil)
	case errors.Is(err, services.ErrUserExists):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyUserExists))
	case errors.Is(err, services.ErrInvalidTransition):
		utils.UnprocessableResponse(c, "INVALID_TRANSITION", i18n.T(lang, i18n.KeyOrderInvalidTransition))
	case errors.Is(err, services.ErrCatalogClosed):
		utils.UnprocessableResponse(c, "CATALOG_CLOSED", i18n.T(lang, i18n.KeyCatalogClosed))
	case errors.Is(err, services.ErrPersistence):
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Persistence failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "PERSISTENCE_ERROR",
			i18n.T(lang, i18n.KeyPersistence, err.Error()), nil)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled error")
		utils.InternalErrorResponse(c, "")
	}
}

// bindJSON decodes and validates the request body, writing the error response itself on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}
