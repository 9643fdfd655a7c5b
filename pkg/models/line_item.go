package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Discount types.
const (
	DiscountTypePercent = "percent"
	DiscountTypeAmount  = "amount"
)

// Line item tax types.
const (
	LineItemTaxRegular = "regular"
	LineItemTaxReduced = "reduced"
	LineItemTaxExempt  = "exempt"
)

var (
	DiscountTypes    = []string{DiscountTypePercent, DiscountTypeAmount}
	LineItemTaxTypes = []string{LineItemTaxRegular, LineItemTaxReduced, LineItemTaxExempt}
)

var hundred = decimal.NewFromInt(100)

// LineItem is one position of a receipt. Numeric fields are stored as
// float64.
type LineItem struct {
	record
}

// NewLineItem returns an empty line item.
func NewLineItem() *LineItem {
	return &LineItem{record: newRecord()}
}

// LineItemFromMap builds a LineItem. Numeric fields accept numbers or
// numeric strings.
func LineItemFromMap(data map[string]any) (*LineItem, error) {
	l := NewLineItem()
	err := populator{
		Fields: []fieldRule{
			stringRule("article_number", func(s string) { l.SetArticleNumber(s) }),
			stringRule("category", func(s string) { l.SetCategory(s) }),
			stringRule("description", func(s string) { l.SetDescription(s) }),
			numberRule("quantity", "Quantity must be numeric.", func(f float64) error {
				l.SetQuantity(f)
				return nil
			}),
			numberRule("price", "Price must be numeric.", func(f float64) error {
				l.SetPrice(f)
				return nil
			}),
			numberRule("discount", "Discount must be numeric.", l.SetDiscount),
			checkedStringRule("discount_type", l.SetDiscountType),
			numberRule("tax_rate", "Tax rate must be numeric.", l.SetTaxRate),
			checkedStringRule("tax_type", l.SetTaxType),
			stringRule("uom", func(s string) { l.SetUOM(s) }),
		},
		Passthrough: func(k string, v any) { l.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func numberRule(key, message string, set func(float64) error) fieldRule {
	return fieldRule{
		Key: key,
		Apply: func(v any) error {
			f, err := toFloat(v)
			if err != nil {
				return newInvalidArgument(key, message, err)
			}
			return set(f)
		},
	}
}

// SetArticleNumber stores the trimmed article number.
func (l *LineItem) SetArticleNumber(v string) *LineItem {
	l.setString("article_number", strings.TrimSpace(v))
	return l
}

// SetCategory stores the trimmed article category.
func (l *LineItem) SetCategory(v string) *LineItem {
	l.setString("category", strings.TrimSpace(v))
	return l
}

// SetDescription stores v untrimmed.
func (l *LineItem) SetDescription(v string) *LineItem {
	l.setString("description", v)
	return l
}

// SetQuantity and SetPrice accept negative values.
func (l *LineItem) SetQuantity(q float64) *LineItem {
	l.store.Set("quantity", q)
	return l
}

func (l *LineItem) SetPrice(p float64) *LineItem {
	l.store.Set("price", p)
	return l
}

// SetDiscount sets a non-negative discount. Its meaning depends on the
// discount type.
func (l *LineItem) SetDiscount(d float64) error {
	if err := checkNonNegative("discount", "Discount cannot be negative", d); err != nil {
		return err
	}
	l.store.Set("discount", d)
	return nil
}

// SetDiscountType sets percent or amount. Empty removes it.
func (l *LineItem) SetDiscountType(t string) error {
	if t == "" {
		l.store.Remove("discount_type")
		return nil
	}
	if err := checkIn("discount_type", "Discount type", t, DiscountTypes); err != nil {
		return err
	}
	l.store.Set("discount_type", t)
	return nil
}

// SetTaxRate sets the tax rate in percent.
func (l *LineItem) SetTaxRate(rate float64) error {
	if err := checkNonNegative("tax_rate", "Tax rate cannot be negative", rate); err != nil {
		return err
	}
	l.store.Set("tax_rate", rate)
	return nil
}

// SetTaxType sets regular, reduced or exempt. Empty removes it.
func (l *LineItem) SetTaxType(t string) error {
	if t == "" {
		l.store.Remove("tax_type")
		return nil
	}
	if err := checkIn("tax_type", "Tax type", t, LineItemTaxTypes); err != nil {
		return err
	}
	l.store.Set("tax_type", t)
	return nil
}

// SetUOM sets the unit of measure. Empty removes it.
func (l *LineItem) SetUOM(uom string) *LineItem {
	l.setString("uom", strings.TrimSpace(uom))
	return l
}

func (l *LineItem) ArticleNumber() string { return l.str("article_number") }
func (l *LineItem) Category() string      { return l.str("category") }
func (l *LineItem) Description() string   { return l.str("description") }
func (l *LineItem) DiscountType() string  { return l.str("discount_type") }
func (l *LineItem) TaxType() string       { return l.str("tax_type") }
func (l *LineItem) UOM() string           { return l.str("uom") }

func (l *LineItem) Quantity() float64 { return l.number("quantity") }
func (l *LineItem) Price() float64    { return l.number("price") }
func (l *LineItem) Discount() float64 { return l.number("discount") }
func (l *LineItem) TaxRate() float64  { return l.number("tax_rate") }

func (l *LineItem) number(key string) float64 {
	if f, ok := l.store.Float(key); ok {
		return f
	}
	if v := l.store.Get(key, nil); v != nil {
		f, _ := toFloat(v)
		return f
	}
	return 0
}

// LineTotal is quantity times price less the discount, rounded to two
// places. A discount type other than percent is treated as an absolute
// amount.
func (l *LineItem) LineTotal() float64 {
	return l.lineTotal().InexactFloat64()
}

// TaxAmount is the line total times the tax rate, rounded to two places.
func (l *LineItem) TaxAmount() float64 {
	return l.taxAmount().InexactFloat64()
}

// TotalWithTax is LineTotal plus TaxAmount.
func (l *LineItem) TotalWithTax() float64 {
	return l.lineTotal().Add(l.taxAmount()).Round(2).InexactFloat64()
}

func (l *LineItem) lineTotal() decimal.Decimal {
	subtotal := decimal.NewFromFloat(l.Quantity()).Mul(decimal.NewFromFloat(l.Price()))
	discount := decimal.NewFromFloat(l.Discount())
	if discount.IsPositive() {
		if l.DiscountType() == DiscountTypePercent {
			subtotal = subtotal.Sub(subtotal.Mul(discount).Div(hundred))
		} else {
			subtotal = subtotal.Sub(discount)
		}
	}
	return subtotal.Round(2)
}

func (l *LineItem) taxAmount() decimal.Decimal {
	rate := decimal.NewFromFloat(l.TaxRate())
	return l.lineTotal().Mul(rate).Div(hundred).Round(2)
}
