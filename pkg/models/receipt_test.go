package models_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameax/json-import-api-go/pkg/models"
)

func lineItem(t *testing.T, description string, qty, price, rate float64) *models.LineItem {
	t.Helper()
	item := models.NewLineItem().SetDescription(description).SetQuantity(qty).SetPrice(price)
	require.NoError(t, item.SetTaxRate(rate))
	return item
}

func TestValidStatusesForType(t *testing.T) {
	tests := []struct {
		receiptType string
		want        []string
	}{
		{receiptType: "offer", want: []string{"draft", "outstanding", "accepted", "obsolet", "refused"}},
		{receiptType: "order", want: []string{"draft", "in_progress", "completed", "cancelled"}},
		{receiptType: "invoice", want: []string{"draft", "ready_for_dispatch", "on_hold", "outstanding", "outstanding_payment", "completed", "cancellation"}},
		{receiptType: "unknown", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.receiptType, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ValidStatusesForType(tt.receiptType))
		})
	}

	// Callers get a copy.
	got := models.ValidStatusesForType("offer")
	got[0] = "mutated"
	assert.Equal(t, "draft", models.ValidStatusesForType("offer")[0])
}

func TestReceipt_Enumerations(t *testing.T) {
	r := models.NewReceipt()

	tests := []struct {
		name   string
		set    func(string) error
		good   string
		bad    string
		errMsg string
	}{
		{name: "type", set: r.SetType, good: "credit_note", bad: "bill", errMsg: "Receipt type must be one of"},
		{name: "status", set: r.SetStatus, good: "pending", bad: "paid", errMsg: "Receipt status must be one of"},
		{name: "tax mode", set: r.SetTaxMode, good: "gross", bad: "mixed", errMsg: "Tax mode must be one of: net, gross, got: mixed"},
		{name: "tax type", set: r.SetTaxType, good: "exempt_eu", bad: "exempt", errMsg: "Tax type must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.set(tt.good))
			err := tt.set(tt.bad)
			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.Equal(t, "credit_note", r.Type())
	assert.Equal(t, "gross", r.TaxMode())
}

func TestReceipt_Identifiers(t *testing.T) {
	r := models.NewReceipt()
	r.SetReceiptNumber(nil).SetExternalID("")
	require.NoError(t, r.SetAmeaxInternalID(nil))
	assert.False(t, r.Has("identifiers"))

	r.SetReceiptNumber(2024001).SetExternalID("erp-1")
	require.NoError(t, r.SetAmeaxInternalID(float64(99)))
	assert.Equal(t, map[string]any{
		"receipt_number":    "2024001",
		"external_id":       "erp-1",
		"ameax_internal_id": 99,
	}, r.Get("identifiers"))

	// Receipts accept non-digit customer numbers.
	r.SetCustomerNumber("K-100")
	assert.Equal(t, "K-100", r.CustomerNumber())

	assert.ErrorIs(t, r.SetBusinessID("abc"), models.ErrInvalidArgument)
	require.NoError(t, r.SetBusinessID("12"))
	id, ok := r.BusinessID()
	require.True(t, ok)
	assert.Equal(t, 12, id)
}

func TestReceipt_Totals(t *testing.T) {
	tests := []struct {
		name    string
		taxMode string
		items   func(t *testing.T) []*models.LineItem
		want    models.ReceiptTotals
	}{
		{
			name: "empty",
			items: func(t *testing.T) []*models.LineItem {
				return nil
			},
			want: models.ReceiptTotals{},
		},
		{
			name:    "net",
			taxMode: models.TaxModeNet,
			items: func(t *testing.T) []*models.LineItem {
				return []*models.LineItem{
					lineItem(t, "Licenses", 2, 50, 19),
					lineItem(t, "Books", 1, 10, 7),
				}
			},
			want: models.ReceiptTotals{Net: 110, Tax: 19.7, Gross: 129.7},
		},
		{
			name:    "gross",
			taxMode: models.TaxModeGross,
			items: func(t *testing.T) []*models.LineItem {
				return []*models.LineItem{
					lineItem(t, "Licenses", 1, 119, 19),
					lineItem(t, "Books", 1, 107, 7),
				}
			},
			want: models.ReceiptTotals{Net: 200, Tax: 26, Gross: 226},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.NewReceipt()
			if tt.taxMode != "" {
				require.NoError(t, r.SetTaxMode(tt.taxMode))
			}
			for _, item := range tt.items(t) {
				r.AddLineItem(item)
			}
			assert.Equal(t, tt.want, r.Totals())
		})
	}
}

func TestReceipt_LineItems(t *testing.T) {
	r := models.NewReceipt()
	item := lineItem(t, "Consulting", 1, 100, 19)
	r.AddLineItem(item)

	item.SetQuantity(3)
	items := r.Get("line_items").([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 3.0, items[0].(map[string]any)["quantity"])

	r.ClearLineItems()
	assert.Empty(t, r.LineItems())
	assert.False(t, r.Has("line_items"))
}

func TestReceipt_DocumentPdf(t *testing.T) {
	r := models.NewReceipt().SetDocumentPdfFromBase64("JVBERi0=")
	assert.Equal(t, map[string]any{"type": "base64", "content": "JVBERi0="}, r.Get("document_pdf"))

	err := r.SetDocumentPdfFromURL("ftp://example.com/a.pdf")
	require.Error(t, err)
	assert.Equal(t, "base64", r.DocumentPdf().Type())

	require.NoError(t, r.SetDocumentPdfFromURL("https://files.example.com/a.pdf"))
	assert.Equal(t, "https://files.example.com/a.pdf", r.Get("document_pdf.url"))

	r.SetDocumentPdf(nil)
	assert.False(t, r.Has("document_pdf"))
	assert.Nil(t, r.DocumentPdf())
}

func TestReceipt_Validate(t *testing.T) {
	r := models.NewReceipt().AddLineItem(models.NewLineItem().SetQuantity(1))

	var verr *models.ValidationError
	require.True(t, errors.As(r.Validate(), &verr))
	assert.Equal(t, []string{
		"type is required",
		"identifiers.receipt_number is required",
		"date is required",
		"customer_number is required",
		"line_items[0].description is required",
	}, verr.Errors)
}

func TestReceiptFromMap(t *testing.T) {
	r, err := models.ReceiptFromMap(map[string]any{
		"type":             "invoice",
		"receipt_number":   "RE-2024-1",
		"date":             "2024/03/01",
		"customer_number":  10001,
		"status":           "outstanding",
		"tax_mode":         "net",
		"sale_external_id": "sale-1",
		"related_receipts": []any{"AN-2024-1"},
		"line_items": []any{
			map[string]any{"description": "Consulting", "quantity": 4, "price": "120", "tax_rate": 19},
		},
		"document_pdf": map[string]any{"type": "url", "url": "https://files.example.com/re.pdf"},
		"custom_data":  map[string]any{"cost_center": "0"},
	})
	require.NoError(t, err)

	assert.Equal(t, "RE-2024-1", r.ReceiptNumber())
	assert.Equal(t, "2024-03-01", r.Date())
	assert.Equal(t, "10001", r.CustomerNumber())
	assert.Equal(t, "sale-1", r.SaleExternalID())
	assert.Equal(t, "0", r.CustomField("cost_center"))
	assert.Equal(t, models.ReceiptTotals{Net: 480, Tax: 91.2, Gross: 571.2}, r.Totals())
	assert.NoError(t, r.Validate())

	again, err := models.ReceiptFromMap(r.ToMap())
	require.NoError(t, err)
	assert.Equal(t, r.ToMap(), again.ToMap())

	_, err = models.ReceiptFromMap(map[string]any{"type": "bill"})
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}
