package stripe

import (
	"encoding/json"
	"io"
	"net/http"
	"os"

	"tuneloom-backend/db"
	"tuneloom-backend/models"
	"tuneloom-backend/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhookHandler receives the subscription lifecycle events from
// Stripe and keeps profiles.is_premium in sync. Resolution failures (no
// matching profile) are logged and acknowledged with 200 so Stripe does not
// redeliver forever; a database write error returns 500 so Stripe retries.
// @Summary Stripe billing webhook
// @Description Update the premium flag from Stripe subscription lifecycle events
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} map[string]string "message: result of the event handling"
// @Failure 400 {object} map[string]string "error: Signature verification failed"
// @Failure 500 {object} map[string]string "error: Database error"
// @Router /webhooks/stripe [post]
func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read the request body"})
		return
	}

	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		utils.LogError(nil, "STRIPE_WEBHOOK_SECRET is not set")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		handleCheckoutSessionCompleted(c, event)
	case "customer.subscription.updated", "customer.subscription.deleted":
		handleSubscriptionChange(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing CheckoutSession"})
		return
	}

	if session.PaymentStatus != "paid" {
		c.JSON(http.StatusOK, gin.H{"message": "Checkout session not paid yet, ignored"})
		return
	}

	userID := session.ClientReferenceID
	if userID == "" {
		utils.LogError(nil, "checkout.session.completed without client_reference_id")
		c.JSON(http.StatusOK, gin.H{"message": "Missing client reference, event skipped"})
		return
	}

	var customerID string
	if session.Customer != nil {
		customerID = session.Customer.ID
	}

	var profile models.Profile
	if err := db.DB.First(&profile, "user_id = ?", userID).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "No profile for client_reference_id in handleCheckoutSessionCompleted")
		c.JSON(http.StatusOK, gin.H{"message": "No profile for this user, event skipped"})
		return
	}

	err := db.DB.Model(&models.Profile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"stripe_customer_id": customerID,
			"is_premium":         true,
		}).Error
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error activating premium in handleCheckoutSessionCompleted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}

	utils.LogSuccessWithUser(userID, "Premium activated via checkout.session.completed")
	c.JSON(http.StatusOK, gin.H{"message": "Premium activated"})
}

func handleSubscriptionChange(c *gin.Context, event stripe.Event) {
	var subscription stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing Subscription"})
		return
	}

	if subscription.Customer == nil || subscription.Customer.ID == "" {
		utils.LogError(nil, "Subscription event without customer")
		c.JSON(http.StatusOK, gin.H{"message": "Missing customer, event skipped"})
		return
	}

	customerID := subscription.Customer.ID

	var profile models.Profile
	if err := db.DB.First(&profile, "stripe_customer_id = ?", customerID).Error; err != nil {
		// error level on purpose: an unknown customer here means the mapping
		// got lost and someone should look at it
		utils.LogError(err, "No profile for Stripe customer "+customerID)
		c.JSON(http.StatusOK, gin.H{"message": "No profile for this customer, event skipped"})
		return
	}

	isPremium := subscription.Status == stripe.SubscriptionStatusActive ||
		subscription.Status == stripe.SubscriptionStatusTrialing
	if event.Type == "customer.subscription.deleted" {
		isPremium = false
	}

	err := db.DB.Model(&models.Profile{}).Where("stripe_customer_id = ?", customerID).
		Update("is_premium", isPremium).Error
	if err != nil {
		utils.LogErrorWithUser(profile.UserID, err, "Error updating premium in handleSubscriptionChange")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}

	utils.LogSuccessWithUser(profile.UserID, "Premium flag updated via "+string(event.Type))
	c.JSON(http.StatusOK, gin.H{"message": "Premium flag updated"})
}
