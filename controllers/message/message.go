package messagecontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiwicar-nz/marketplace-api/response"
)

// Buyer-seller messaging ships after the marketplace MVP; the routes exist
// so clients get a structured 501 instead of a bare 404.

// GET /api/v1/messages/conversations
func GetConversations() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotImplemented, response.CodeNotImplemented,
			"GET /messages/conversations not implemented")
	}
}

// GET /api/v1/messages/conversations/:id
func GetConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotImplemented, response.CodeNotImplemented,
			"GET /messages/conversations/:id not implemented")
	}
}
