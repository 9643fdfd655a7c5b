package models

import (
	"net/url"
)

// PDF source types.
const (
	PdfTypeBase64 = "base64"
	PdfTypeURL    = "url"
)

var PdfTypes = []string{PdfTypeBase64, PdfTypeURL}

// DocumentPdf attaches a rendered receipt, inline or by HTTPS link.
type DocumentPdf struct {
	record
}

// NewDocumentPdf returns an empty PDF reference. Most callers want
// DocumentPdfFromBase64 or DocumentPdfFromURL.
func NewDocumentPdf() *DocumentPdf {
	return &DocumentPdf{record: newRecord()}
}

// DocumentPdfFromBase64 returns an inline PDF.
func DocumentPdfFromBase64(content string) *DocumentPdf {
	d := NewDocumentPdf()
	d.store.Set("type", PdfTypeBase64)
	d.SetContent(content)
	return d
}

// DocumentPdfFromURL returns a PDF referenced by an HTTPS URL.
func DocumentPdfFromURL(u string) (*DocumentPdf, error) {
	d := NewDocumentPdf()
	d.store.Set("type", PdfTypeURL)
	if err := d.SetURL(u); err != nil {
		return nil, err
	}
	return d, nil
}

// DocumentPdfFromMap builds a DocumentPdf, validating type and url.
func DocumentPdfFromMap(data map[string]any) (*DocumentPdf, error) {
	d := NewDocumentPdf()
	err := populator{
		Fields: []fieldRule{
			checkedStringRule("type", d.SetType),
			stringRule("content", func(s string) { d.SetContent(s) }),
			checkedStringRule("url", d.SetURL),
		},
		Passthrough: func(k string, v any) { d.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// SetType sets base64 or url.
func (d *DocumentPdf) SetType(t string) error {
	if err := checkIn("type", "PDF type", t, PdfTypes); err != nil {
		return newInvalidArgument("type", "Invalid PDF type. Valid types are: base64, url", err)
	}
	d.store.Set("type", t)
	return nil
}

// SetContent sets the base64 payload.
func (d *DocumentPdf) SetContent(content string) *DocumentPdf {
	d.setString("content", content)
	return d
}

// SetURL requires an absolute https URL.
func (d *DocumentPdf) SetURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil || parsed.Scheme != "https" || parsed.Host == "" {
		return newInvalidArgument("url", "URL must be a valid HTTPS URL", err)
	}
	d.store.Set("url", u)
	return nil
}

func (d *DocumentPdf) Type() string    { return d.str("type") }
func (d *DocumentPdf) Content() string { return d.str("content") }
func (d *DocumentPdf) URL() string     { return d.str("url") }
