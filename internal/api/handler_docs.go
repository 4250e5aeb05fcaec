package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"metamorfose-backend/docs"
	"metamorfose-backend/internal/apperr"
)

// GetAPIDocs serves the OpenAPI document registered by package docs.
func GetAPIDocs(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		_ = c.Error(apperr.Internal("failed to render api docs", err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
