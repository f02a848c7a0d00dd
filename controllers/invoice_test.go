package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"tradepro-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requestWithClaims builds a test context carrying the auth claims and the
// :id path parameter the handler expects. No database is attached, so any
// handler path that reaches storage panics; the tests below assert the
// request is rejected before that point.
func requestWithClaims(t *testing.T, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("userId", uuid.New().String())
	c.Set("companyId", uuid.New().String())
	c.Set("role", "owner")
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	return c, w
}

func TestCreateInvoiceFromEstimateRejectsBadPercentage(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
	}{
		{"zero", 0},
		{"negative", -10},
		{"over one hundred", 101},
		{"far out of range", 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := requestWithClaims(t, map[string]interface{}{
				"percentage": tt.percentage,
			})

			CreateInvoiceFromEstimate(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestCreateInvoiceFromEstimateRejectsMissingPercentage(t *testing.T) {
	c, w := requestWithClaims(t, map[string]interface{}{})

	CreateInvoiceFromEstimate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaidRollbackAmount(t *testing.T) {
	tests := []struct {
		name    string
		invoice models.Invoice
		want    float64
	}{
		{"draft, nothing collected", models.Invoice{Status: models.InvoiceStatusDraft, Total: 500}, 0},
		{"sent, nothing collected", models.Invoice{Status: models.InvoiceStatusSent, Total: 500}, 0},
		{"paid in full", models.Invoice{Status: models.InvoiceStatusPaid, Total: 500, PaidAmount: 500}, 500},
		{"partial payment recorded", models.Invoice{Status: models.InvoiceStatusSent, Total: 500, PaidAmount: 200}, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paidRollbackAmount(tt.invoice))
		})
	}
}

func TestCreateInvoiceFromEstimateRejectsBadEstimateID(t *testing.T) {
	c, w := requestWithClaims(t, map[string]interface{}{"percentage": 25.0})
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	CreateInvoiceFromEstimate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
