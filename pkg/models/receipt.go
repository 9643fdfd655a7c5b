package models

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Receipt types.
const (
	ReceiptTypeOffer        = "offer"
	ReceiptTypeOrder        = "order"
	ReceiptTypeInvoice      = "invoice"
	ReceiptTypeCreditNote   = "credit_note"
	ReceiptTypeCancellation = "cancellation_document"
)

// Receipt statuses as defined by the server. StatusPending is deprecated
// but still accepted.
const (
	ReceiptStatusDraft              = "draft"
	ReceiptStatusPending            = "pending"
	ReceiptStatusOnHold             = "on_hold"
	ReceiptStatusReadyForDispatch   = "ready_for_dispatch"
	ReceiptStatusInProgress         = "in_progress"
	ReceiptStatusOutstandingPayment = "outstanding_payment"
	ReceiptStatusCompleted          = "completed"
	ReceiptStatusCancellation       = "cancellation"
	ReceiptStatusOutstanding        = "outstanding"
	ReceiptStatusObsolet            = "obsolet"
	ReceiptStatusRefused            = "refused"
	ReceiptStatusAccepted           = "accepted"
	ReceiptStatusCancelled          = "cancelled"
	ReceiptStatusPaused             = "paused"
)

// Tax modes.
const (
	TaxModeNet   = "net"
	TaxModeGross = "gross"
)

// Receipt tax types.
const (
	TaxTypeRegular     = "regular"
	TaxTypeReduced     = "reduced"
	TaxTypeExemptEU    = "exempt_eu"
	TaxTypeExemptThird = "exempt_third"
	TaxTypeExemptOther = "exempt_other"
)

var (
	ReceiptTypes = []string{
		ReceiptTypeOffer,
		ReceiptTypeOrder,
		ReceiptTypeInvoice,
		ReceiptTypeCreditNote,
		ReceiptTypeCancellation,
	}
	ReceiptStatuses = []string{
		ReceiptStatusDraft,
		ReceiptStatusPending,
		ReceiptStatusOnHold,
		ReceiptStatusReadyForDispatch,
		ReceiptStatusInProgress,
		ReceiptStatusOutstandingPayment,
		ReceiptStatusCompleted,
		ReceiptStatusCancellation,
		ReceiptStatusOutstanding,
		ReceiptStatusObsolet,
		ReceiptStatusRefused,
		ReceiptStatusAccepted,
		ReceiptStatusCancelled,
		ReceiptStatusPaused,
	}
	TaxModes        = []string{TaxModeNet, TaxModeGross}
	ReceiptTaxTypes = []string{TaxTypeRegular, TaxTypeReduced, TaxTypeExemptEU, TaxTypeExemptThird, TaxTypeExemptOther}
)

var statusesByType = map[string][]string{
	ReceiptTypeOffer: {
		ReceiptStatusDraft,
		ReceiptStatusOutstanding,
		ReceiptStatusAccepted,
		ReceiptStatusObsolet,
		ReceiptStatusRefused,
	},
	ReceiptTypeOrder: {
		ReceiptStatusDraft,
		ReceiptStatusInProgress,
		ReceiptStatusCompleted,
		ReceiptStatusCancelled,
	},
	ReceiptTypeInvoice: {
		ReceiptStatusDraft,
		ReceiptStatusReadyForDispatch,
		ReceiptStatusOnHold,
		ReceiptStatusOutstanding,
		ReceiptStatusOutstandingPayment,
		ReceiptStatusCompleted,
		ReceiptStatusCancellation,
	},
	ReceiptTypeCreditNote: {
		ReceiptStatusDraft,
		ReceiptStatusReadyForDispatch,
		ReceiptStatusOnHold,
		ReceiptStatusOutstanding,
		ReceiptStatusCompleted,
	},
	ReceiptTypeCancellation: {
		ReceiptStatusDraft,
		ReceiptStatusCompleted,
	},
}

// ValidStatusesForType returns the statuses the server accepts for a
// receipt type, or an empty list for an unknown type.
func ValidStatusesForType(receiptType string) []string {
	statuses, ok := statusesByType[receiptType]
	if !ok {
		return []string{}
	}
	out := make([]string, len(statuses))
	copy(out, statuses)
	return out
}

// ReceiptTotals are the sums over a receipt's line items.
type ReceiptTotals struct {
	Net   float64
	Tax   float64
	Gross float64
}

// Receipt is an ameax_receipt document. Its customer number is permissive.
type Receipt struct {
	document

	identifiers *Identifiers
	lineItems   []*LineItem
	documentPdf *DocumentPdf
}

// NewReceipt returns a receipt with meta set and no other fields.
func NewReceipt() *Receipt {
	return &Receipt{document: newDocument(DocumentTypeReceipt)}
}

// ReceiptFromMap builds a Receipt. A flat receipt_number is accepted when
// no identifiers object is given.
func ReceiptFromMap(data map[string]any) (*Receipt, error) {
	r := NewReceipt()
	err := populator{
		Fields: []fieldRule{
			r.metaRule(),
			checkedStringRule("type", r.SetType),
			{Key: "business_id", Apply: func(v any) error { return r.SetBusinessID(v) }},
			valueRule("user_external_id", func(v any) { r.SetUserExternalID(v) }),
			valueRule("sale_external_id", func(v any) { r.SetSaleExternalID(v) }),
			valueRule("date", func(v any) { r.SetDate(v) }),
			valueRule("customer_number", func(v any) { r.SetCustomerNumber(v) }),
			checkedStringRule("status", r.SetStatus),
			checkedStringRule("tax_mode", r.SetTaxMode),
			checkedStringRule("tax_type", r.SetTaxType),
			stringRule("subject", func(v string) { r.SetSubject(v) }),
			stringRule("closure", func(v string) { r.SetClosure(v) }),
			stringRule("notice", func(v string) { r.SetNotice(v) }),
			valueRule("related_receipts", func(v any) { r.SetRelatedReceipts(v) }),
			valueRule("pursued_from", func(v any) { r.SetPursuedFrom(v) }),
			{Key: "line_items", Apply: func(v any) error {
				for _, raw := range toMapSlice(v) {
					item, err := LineItemFromMap(raw)
					if err != nil {
						return err
					}
					r.AddLineItem(item)
				}
				return nil
			}},
			{Key: "document_pdf", Apply: func(v any) error {
				m, ok := v.(map[string]any)
				if !ok {
					return nil
				}
				pdf, err := DocumentPdfFromMap(m)
				if err != nil {
					return err
				}
				r.SetDocumentPdf(pdf)
				return nil
			}},
			customDataRule(func(m map[string]any) { r.SetCustomData(m) }),
		},
		Nested: []nestedRule{
			{
				Key: "identifiers",
				Flat: []flatField{
					{Legacy: "receipt_number", Canonical: "receipt_number"},
					{Legacy: "external_id", Canonical: "external_id"},
					{Legacy: "ameax_internal_id", Canonical: "ameax_internal_id"},
				},
				Apply: func(m map[string]any) error {
					ids, err := IdentifiersFromMap(m)
					if err != nil {
						return err
					}
					r.SetIdentifiers(ids)
					return nil
				},
			},
		},
		Passthrough: func(k string, v any) { r.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// SetType sets one of ReceiptTypes.
func (r *Receipt) SetType(t string) error {
	if err := checkIn("type", "Receipt type", t, ReceiptTypes); err != nil {
		return err
	}
	r.store.Set("type", t)
	return nil
}

// SetIdentifiers replaces the identifiers block. Nil removes it.
func (r *Receipt) SetIdentifiers(ids *Identifiers) *Receipt {
	attach(r.store, "identifiers", &r.identifiers, ids)
	return r
}

func (r *Receipt) Identifiers() *Identifiers { return r.identifiers }

func (r *Receipt) ensureIdentifiers() *Identifiers {
	return ensure(r.store, "identifiers", &r.identifiers, NewIdentifiers)
}

// SetReceiptNumber writes identifiers.receipt_number.
func (r *Receipt) SetReceiptNumber(v any) *Receipt {
	if normalize.Stringify(v) == "" && r.identifiers == nil {
		return r
	}
	r.ensureIdentifiers().SetReceiptNumber(v)
	return r
}

// SetExternalID writes identifiers.external_id.
func (r *Receipt) SetExternalID(v any) *Receipt {
	if normalize.Stringify(v) == "" && r.identifiers == nil {
		return r
	}
	r.ensureIdentifiers().SetExternalID(v)
	return r
}

// SetAmeaxInternalID writes identifiers.ameax_internal_id. It fails for
// values that are not integers.
func (r *Receipt) SetAmeaxInternalID(v any) error {
	if v == nil && r.identifiers == nil {
		return nil
	}
	return r.ensureIdentifiers().SetAmeaxInternalID(v)
}

// SetBusinessID stores an integer business id. Nil removes it.
func (r *Receipt) SetBusinessID(v any) error {
	if v == nil {
		r.store.Remove("business_id")
		return nil
	}
	n, err := toInt(v)
	if err != nil {
		return newInvalidArgument("business_id", "business_id must be an integer", err)
	}
	r.store.Set("business_id", n)
	return nil
}

// SetUserExternalID names the responsible user. Nil removes it.
func (r *Receipt) SetUserExternalID(v any) *Receipt {
	r.setString("user_external_id", normalize.Stringify(v))
	return r
}

// SetSaleExternalID links the receipt to a sale. Nil removes the link.
func (r *Receipt) SetSaleExternalID(v any) *Receipt {
	r.setString("sale_external_id", normalize.Stringify(v))
	return r
}

// SetDate accepts a time.Time or a date string and stores YYYY-MM-DD.
func (r *Receipt) SetDate(v any) *Receipt {
	d, _ := normalize.Date(v)
	r.setString("date", d)
	return r
}

// SetCustomerNumber stores any scalar as a string.
func (r *Receipt) SetCustomerNumber(v any) *Receipt {
	s, _ := normalize.CustomerNumber(v)
	r.setString("customer_number", s)
	return r
}

// SetStatus sets one of ReceiptStatuses.
func (r *Receipt) SetStatus(status string) error {
	if err := checkIn("status", "Receipt status", status, ReceiptStatuses); err != nil {
		return err
	}
	r.store.Set("status", status)
	return nil
}

// SetTaxMode sets one of TaxModes. It decides how Totals treats line
// prices.
func (r *Receipt) SetTaxMode(mode string) error {
	if err := checkIn("tax_mode", "Tax mode", mode, TaxModes); err != nil {
		return err
	}
	r.store.Set("tax_mode", mode)
	return nil
}

// SetTaxType sets one of ReceiptTaxTypes.
func (r *Receipt) SetTaxType(t string) error {
	if err := checkIn("tax_type", "Tax type", t, ReceiptTaxTypes); err != nil {
		return err
	}
	r.store.Set("tax_type", t)
	return nil
}

// SetSubject stores the trimmed subject. Blank removes it.
func (r *Receipt) SetSubject(v string) *Receipt {
	r.setString("subject", strings.TrimSpace(v))
	return r
}

// SetClosure sets the closing text.
func (r *Receipt) SetClosure(v string) *Receipt {
	r.setString("closure", v)
	return r
}

// SetNotice sets the notice text. Blank removes it.
func (r *Receipt) SetNotice(v string) *Receipt {
	r.setString("notice", v)
	return r
}

// SetRelatedReceipts stores references to other receipts. Nil removes them.
func (r *Receipt) SetRelatedReceipts(v any) *Receipt {
	r.setValue("related_receipts", v)
	return r
}

// SetPursuedFrom stores the receipt this one follows up. Nil removes it.
func (r *Receipt) SetPursuedFrom(v any) *Receipt {
	r.setValue("pursued_from", v)
	return r
}

func (r *Receipt) Type() string           { return r.str("type") }
func (r *Receipt) Status() string         { return r.str("status") }
func (r *Receipt) TaxMode() string        { return r.str("tax_mode") }
func (r *Receipt) TaxType() string        { return r.str("tax_type") }
func (r *Receipt) Date() string           { return r.str("date") }
func (r *Receipt) CustomerNumber() string { return r.str("customer_number") }
func (r *Receipt) Subject() string        { return r.str("subject") }
func (r *Receipt) SaleExternalID() string { return r.str("sale_external_id") }

// ReceiptNumber returns identifiers.receipt_number.
func (r *Receipt) ReceiptNumber() string {
	if r.identifiers == nil {
		return ""
	}
	return r.identifiers.ReceiptNumber()
}

// BusinessID reports the business id and whether it is set.
func (r *Receipt) BusinessID() (int, bool) {
	return r.store.Int("business_id")
}

// AddLineItem appends item and mirrors it into line_items.
func (r *Receipt) AddLineItem(item *LineItem) *Receipt {
	if item == nil {
		return r
	}
	r.lineItems = append(r.lineItems, item)
	r.syncLineItems()
	return r
}

// ClearLineItems removes all line items.
func (r *Receipt) ClearLineItems() *Receipt {
	r.lineItems = nil
	r.store.Remove("line_items")
	return r
}

// LineItems returns the items in insertion order.
func (r *Receipt) LineItems() []*LineItem {
	return r.lineItems
}

func (r *Receipt) syncLineItems() {
	list := make([]any, len(r.lineItems))
	for i, item := range r.lineItems {
		list[i] = item.ToMap()
	}
	r.store.SetKey("line_items", list)
}

// SetDocumentPdf attaches pdf. Nil removes document_pdf.
func (r *Receipt) SetDocumentPdf(pdf *DocumentPdf) *Receipt {
	attach(r.store, "document_pdf", &r.documentPdf, pdf)
	return r
}

// SetDocumentPdfFromBase64 attaches an inline PDF.
func (r *Receipt) SetDocumentPdfFromBase64(content string) *Receipt {
	return r.SetDocumentPdf(DocumentPdfFromBase64(content))
}

// SetDocumentPdfFromURL attaches a linked PDF. u must be an https URL.
func (r *Receipt) SetDocumentPdfFromURL(u string) error {
	pdf, err := DocumentPdfFromURL(u)
	if err != nil {
		return err
	}
	r.SetDocumentPdf(pdf)
	return nil
}

func (r *Receipt) DocumentPdf() *DocumentPdf { return r.documentPdf }

// Totals sums the line items. In gross mode line totals include tax and
// the tax share is extracted from them.
func (r *Receipt) Totals() ReceiptTotals {
	net, tax, gross := decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range r.lineItems {
		line := item.lineTotal()
		if r.TaxMode() == TaxModeGross {
			rate := decimal.NewFromFloat(item.TaxRate())
			share := line.Mul(rate).Div(hundred.Add(rate)).Round(2)
			gross = gross.Add(line)
			tax = tax.Add(share)
			net = net.Add(line.Sub(share))
			continue
		}
		lineTax := item.taxAmount()
		net = net.Add(line)
		tax = tax.Add(lineTax)
		gross = gross.Add(line.Add(lineTax))
	}
	return ReceiptTotals{
		Net:   net.Round(2).InexactFloat64(),
		Tax:   tax.Round(2).InexactFloat64(),
		Gross: gross.Round(2).InexactFloat64(),
	}
}

// SetCustomField stores a coerced custom_data value. Nil removes it.
func (r *Receipt) SetCustomField(key string, value any) *Receipt {
	r.setCustomField(key, value)
	return r
}

// SetCustomData merges data into custom_data unchanged.
func (r *Receipt) SetCustomData(data map[string]any) *Receipt {
	r.setCustomData(data)
	return r
}

// Validate checks the fields the import endpoint requires.
func (r *Receipt) Validate() error {
	v := &validator{}
	r.validateMeta(v)
	v.required("type", r.Type())
	v.required("identifiers.receipt_number", r.ReceiptNumber())
	v.required("date", r.Date())
	v.required("customer_number", r.CustomerNumber())
	for i, item := range r.lineItems {
		v.required("line_items["+normalize.Stringify(i)+"].description", item.Description())
	}
	return v.err()
}

// Submit posts r through the client set with SetAPIClient.
func (r *Receipt) Submit(ctx context.Context) (map[string]any, error) {
	return r.submit(ctx)
}
