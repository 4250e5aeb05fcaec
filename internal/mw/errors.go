package mw

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"metamorfose-backend/internal/apperr"
	"metamorfose-backend/internal/model"
)

// Operation types of failed envelopes.
const (
	OpValidationError = "VALIDATION_ERROR"
	OpNotFound        = "NOT_FOUND"
	OpDatabaseError   = "DATABASE_ERROR"
	OpInternalError   = "INTERNAL_ERROR"
)

func operationType(kind apperr.Kind) string {
	switch kind {
	case apperr.KindValidation:
		return OpValidationError
	case apperr.KindNotFound:
		return OpNotFound
	case apperr.KindGateway:
		return OpDatabaseError
	default:
		return OpInternalError
	}
}

// ErrorHandler renders the last error a handler attached with c.Error as a
// failed envelope. The full cause is logged; clients only see the public message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(apperr.StatusCode(err), model.NewFailure(
			operationType(apperr.KindOf(err)),
			apperr.PublicMessage(err),
		))
	}
}

// Recovery turns a panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("%s %s panicked: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, model.NewFailure(
			OpInternalError,
			apperr.PublicMessage(nil),
		))
	})
}
