package routes

import (
	"tuneloom-backend/handlers/piapi"
	"tuneloom-backend/handlers/stripe"

	"github.com/gin-gonic/gin"
)

// Webhook endpoints authenticate with vendor credentials (shared secret or
// signature header), not with a bearer token.
func WebhooksRoutes(r *gin.Engine) {
	r.POST("/webhooks/piapi", piapi.PiapiWebhookHandler)
	r.POST("/webhooks/stripe", stripe.StripeWebhookHandler)
}
