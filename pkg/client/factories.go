package client

import (
	"github.com/ameax/json-import-api-go/pkg/models"
)

// The factories below return documents already bound to c, so Submit can
// be called on them directly.

// NewOrganization returns an empty organization bound to c.
func (c *Client) NewOrganization() *models.Organization {
	o := models.NewOrganization()
	o.SetAPIClient(c)
	return o
}

// OrganizationFromMap is models.OrganizationFromMap bound to c.
func (c *Client) OrganizationFromMap(data map[string]any) (*models.Organization, error) {
	o, err := models.OrganizationFromMap(data)
	if err != nil {
		return nil, err
	}
	o.SetAPIClient(c)
	return o, nil
}

// NewPrivatePerson returns an empty private person bound to c.
func (c *Client) NewPrivatePerson() *models.PrivatePerson {
	p := models.NewPrivatePerson()
	p.SetAPIClient(c)
	return p
}

// PrivatePersonFromMap is models.PrivatePersonFromMap bound to c.
func (c *Client) PrivatePersonFromMap(data map[string]any) (*models.PrivatePerson, error) {
	p, err := models.PrivatePersonFromMap(data)
	if err != nil {
		return nil, err
	}
	p.SetAPIClient(c)
	return p, nil
}

// NewSale returns an empty sale bound to c.
func (c *Client) NewSale() *models.Sale {
	s := models.NewSale()
	s.SetAPIClient(c)
	return s
}

// SaleFromMap is models.SaleFromMap bound to c.
func (c *Client) SaleFromMap(data map[string]any) (*models.Sale, error) {
	s, err := models.SaleFromMap(data)
	if err != nil {
		return nil, err
	}
	s.SetAPIClient(c)
	return s, nil
}

// NewReceipt returns an empty receipt bound to c.
func (c *Client) NewReceipt() *models.Receipt {
	r := models.NewReceipt()
	r.SetAPIClient(c)
	return r
}

// ReceiptFromMap is models.ReceiptFromMap bound to c.
func (c *Client) ReceiptFromMap(data map[string]any) (*models.Receipt, error) {
	r, err := models.ReceiptFromMap(data)
	if err != nil {
		return nil, err
	}
	r.SetAPIClient(c)
	return r, nil
}

// NewAddress and NewContact are conveniences for building sub-objects.
func (c *Client) NewAddress() *models.Address { return models.NewAddress() }
func (c *Client) NewContact() *models.Contact { return models.NewContact() }

// DocumentFromMap builds the document named by documentType, bound to c.
func (c *Client) DocumentFromMap(documentType string, data map[string]any) (models.Document, error) {
	doc, err := models.FromMap(documentType, data)
	if err != nil {
		return nil, err
	}
	if b, ok := doc.(interface{ SetAPIClient(models.Sender) }); ok {
		b.SetAPIClient(c)
	}
	return doc, nil
}
