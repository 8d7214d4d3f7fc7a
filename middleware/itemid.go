package middleware

import (
	"net/http"
	"strconv"

	"itemsapi/controllers"

	"github.com/gin-gonic/gin"
)

// ItemID parses the :id path parameter and seeds it into the request context.
// A malformed id can never name an existing item, so it maps to not found.
func ItemID(context *gin.Context) {

	id, err := strconv.ParseUint(context.Param("id"), 10, 32)
	if err != nil {
		context.JSON(http.StatusNotFound, controllers.ErrorResponse{Error: "Item not found"})
		context.Abort()
		return
	}

	context.Set("item_id", uint(id))
	context.Next()
}
