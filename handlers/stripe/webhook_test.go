package stripe

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"tuneloom-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"gorm.io/gorm"
)

const testWebhookSecret = "whsec_test_secret"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupStripeRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/webhooks/stripe", StripeWebhookHandler)
	return r
}

func signedRequest(t *testing.T, eventType string, object string) *http.Request {
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_test","object":"event","api_version":%q,"type":%q,"data":{"object":%s}}`,
		stripe.APIVersion, eventType, object))

	now := time.Now()
	signature := webhook.ComputeSignature(now, payload, testWebhookSecret)

	req, err := http.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewBuffer(payload))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature",
		fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(signature)))
	return req
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	r := setupStripeRouter()

	req, _ := http.NewRequest(http.MethodPost, "/webhooks/stripe",
		bytes.NewBufferString(`{"type":"checkout.session.completed"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestStripeWebhook_CheckoutCompletedActivatesPremium(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE user_id = \$1 (.+)LIMIT 1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_premium"}).
			AddRow("p1", userID, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET (.+)"stripe_customer_id"(.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupStripeRouter()

	object := fmt.Sprintf(
		`{"id":"cs_test","object":"checkout.session","client_reference_id":%q,"payment_status":"paid","customer":"cus_123"}`,
		userID)
	req := signedRequest(t, "checkout.session.completed", object)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Premium activated", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeWebhook_CheckoutNotPaidIsIgnored(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	r := setupStripeRouter()

	object := `{"id":"cs_test","object":"checkout.session","client_reference_id":"abc","payment_status":"unpaid"}`
	req := signedRequest(t, "checkout.session.completed", object)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	// nothing read or written
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeWebhook_SubscriptionDeletedClearsPremium(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	customerID := "cus_123"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE stripe_customer_id = \$1 (.+)LIMIT 1`).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "stripe_customer_id", "is_premium"}).
			AddRow("p1", userID, customerID, true))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET "is_premium"=\$1`).
		WithArgs(false, sqlmock.AnyArg(), customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupStripeRouter()

	object := fmt.Sprintf(
		`{"id":"sub_test","object":"subscription","status":"canceled","customer":%q}`, customerID)
	req := signedRequest(t, "customer.subscription.deleted", object)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeWebhook_SubscriptionUpdatedActiveSetsPremium(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	customerID := "cus_123"
	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE stripe_customer_id = \$1 (.+)LIMIT 1`).
		WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "stripe_customer_id", "is_premium"}).
			AddRow("p1", userID, customerID, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET "is_premium"=\$1`).
		WithArgs(true, sqlmock.AnyArg(), customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupStripeRouter()

	object := fmt.Sprintf(
		`{"id":"sub_test","object":"subscription","status":"active","customer":%q}`, customerID)
	req := signedRequest(t, "customer.subscription.updated", object)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeWebhook_UnknownCustomerIsSkipped(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE stripe_customer_id = \$1 (.+)LIMIT 1`).
		WithArgs("cus_unknown").
		WillReturnError(gorm.ErrRecordNotFound)

	r := setupStripeRouter()

	object := `{"id":"sub_test","object":"subscription","status":"active","customer":"cus_unknown"}`
	req := signedRequest(t, "customer.subscription.updated", object)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No profile for this customer, event skipped", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeWebhook_UnhandledEventIgnored(t *testing.T) {
	t.Setenv("STRIPE_WEBHOOK_SECRET", testWebhookSecret)

	r := setupStripeRouter()

	req := signedRequest(t, "invoice.created", `{"id":"in_test","object":"invoice"}`)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Event ignored", respBody["message"])
}
