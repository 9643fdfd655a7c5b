package models

import (
	"context"
	"strings"

	"github.com/ameax/json-import-api-go/pkg/normalize"
)

// Sale statuses.
const (
	SaleStatusActive     = "active"
	SaleStatusInactive   = "inactive"
	SaleStatusCompleted  = "completed"
	SaleStatusCancelled  = "cancelled"
	SaleStatusTerminated = "terminated"
	SaleStatusLost       = "lost"
	SaleStatusWon        = "won"
)

// Selling statuses.
const (
	SellingStatusIdentification = "identification"
	SellingStatusAcquisition    = "acquisition"
	SellingStatusQualification  = "qualification"
	SellingStatusProposal       = "proposal"
	SellingStatusSale           = "sale"
)

// ActionTypeRemind is the only supported create action.
const ActionTypeRemind = "remind"

var (
	SaleStatuses = []string{
		SaleStatusActive,
		SaleStatusInactive,
		SaleStatusCompleted,
		SaleStatusCancelled,
		SaleStatusTerminated,
		SaleStatusLost,
		SaleStatusWon,
	}
	SellingStatuses = []string{
		SellingStatusIdentification,
		SellingStatusAcquisition,
		SellingStatusQualification,
		SellingStatusProposal,
		SellingStatusSale,
	}
)

// CreateAction is a follow-up the server creates alongside the sale.
type CreateAction struct {
	Type       string `mapstructure:"type"`
	RemindDate any    `mapstructure:"remind_date"`
	Subject    string `mapstructure:"subject"`
}

// Sale is an ameax_sale document. Its customer reference is strict: a
// customer number must be ASCII digits.
type Sale struct {
	document

	identifiers *Identifiers
	rating      *Rating
}

// NewSale returns a sale with meta set and no other fields.
func NewSale() *Sale {
	return &Sale{document: newDocument(DocumentTypeSale)}
}

// SaleFromMap builds a Sale. Flat customer_number and customer_external_id
// keys are folded into the customer object.
func SaleFromMap(data map[string]any) (*Sale, error) {
	s := NewSale()
	err := populator{
		Fields: []fieldRule{
			s.metaRule(),
			stringRule("subject", func(v string) { s.SetSubject(v) }),
			stringRule("description", func(v string) { s.SetDescription(v) }),
			checkedStringRule("sale_status", s.SetSaleStatus),
			checkedStringRule("selling_status", s.SetSellingStatus),
			valueRule("user_external_id", func(v any) { s.SetUserExternalID(v) }),
			valueRule("date", func(v any) { s.SetDate(v) }),
			valueRule("close_date", func(v any) { s.SetCloseDate(v) }),
			numberRule("amount", "Amount must be numeric.", s.SetAmount),
			{Key: "probability", Apply: func(v any) error {
				n, err := toInt(v)
				if err != nil {
					return newInvalidArgument("probability", "Probability must be an integer", err)
				}
				return s.SetProbability(n)
			}},
			{Key: "rating", Apply: func(v any) error {
				m, ok := v.(map[string]any)
				if !ok {
					return nil
				}
				r, err := RatingFromMap(m)
				if err != nil {
					return err
				}
				s.SetRatingObject(r)
				return nil
			}},
			{Key: "create_actions", Apply: func(v any) error {
				return s.SetCreateActions(toMapSlice(v))
			}},
			customDataRule(func(m map[string]any) { s.SetCustomData(m) }),
		},
		Nested: []nestedRule{
			{
				Key:  "identifiers",
				Flat: []flatField{{Legacy: "external_id", Canonical: "external_id"}},
				Apply: func(m map[string]any) error {
					ids, err := IdentifiersFromMap(m)
					if err != nil {
						return err
					}
					attach(s.store, "identifiers", &s.identifiers, ids)
					return nil
				},
			},
			{
				Key: "customer",
				Flat: []flatField{
					{Legacy: "customer_number", Canonical: "customer_number"},
					{Legacy: "customer_external_id", Canonical: "external_id"},
				},
				Apply: func(m map[string]any) error {
					if err := s.SetCustomerNumber(m["customer_number"]); err != nil {
						return err
					}
					s.SetCustomerExternalID(m["external_id"])
					return nil
				},
			},
		},
		Passthrough: func(k string, v any) { s.store.SetKey(k, v) },
	}.run(data)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// SetExternalID writes identifiers.external_id.
func (s *Sale) SetExternalID(v any) *Sale {
	if normalize.Stringify(v) == "" && s.identifiers == nil {
		return s
	}
	ensure(s.store, "identifiers", &s.identifiers, NewIdentifiers).SetExternalID(v)
	return s
}

// ExternalID returns identifiers.external_id.
func (s *Sale) ExternalID() string {
	if s.identifiers == nil {
		return ""
	}
	return s.identifiers.ExternalID()
}

// SetCustomerNumber writes customer.customer_number. Only ASCII digits are
// accepted; nil and "" remove it.
func (s *Sale) SetCustomerNumber(v any) error {
	num, ok := normalize.StrictCustomerNumber(v)
	if num == "" {
		s.removeCustomerField("customer_number")
		return nil
	}
	if !ok {
		return newInvalidArgument("customer.customer_number",
			"Customer number must contain only digits, got: "+num, nil)
	}
	s.store.Set("customer.customer_number", num)
	return nil
}

// SetCustomerExternalID writes customer.external_id.
func (s *Sale) SetCustomerExternalID(v any) *Sale {
	id := normalize.Stringify(v)
	if id == "" {
		s.removeCustomerField("external_id")
		return s
	}
	s.store.Set("customer.external_id", id)
	return s
}

// SetCustomerByExternalID is an alias for SetCustomerExternalID.
func (s *Sale) SetCustomerByExternalID(v any) *Sale {
	return s.SetCustomerExternalID(v)
}

func (s *Sale) removeCustomerField(field string) {
	s.store.Remove("customer." + field)
	if customer, ok := s.store.Submap("customer"); ok && len(customer) == 0 {
		s.store.Remove("customer")
	}
}

func (s *Sale) CustomerNumber() string     { return s.str("customer.customer_number") }
func (s *Sale) CustomerExternalID() string { return s.str("customer.external_id") }

// SetSubject stores the trimmed subject line. Blank removes it.
func (s *Sale) SetSubject(v string) *Sale {
	s.setString("subject", strings.TrimSpace(v))
	return s
}

// SetDescription stores v as given.
func (s *Sale) SetDescription(v string) *Sale {
	s.setString("description", v)
	return s
}

// SetSaleStatus sets one of SaleStatuses.
func (s *Sale) SetSaleStatus(status string) error {
	if err := checkIn("sale_status", "Sale status", status, SaleStatuses); err != nil {
		return err
	}
	s.store.Set("sale_status", status)
	return nil
}

// SetSellingStatus sets one of SellingStatuses.
func (s *Sale) SetSellingStatus(status string) error {
	if err := checkIn("selling_status", "Selling status", status, SellingStatuses); err != nil {
		return err
	}
	s.store.Set("selling_status", status)
	return nil
}

// SetUserExternalID names the responsible user. Nil removes it.
func (s *Sale) SetUserExternalID(v any) *Sale {
	s.setString("user_external_id", normalize.Stringify(v))
	return s
}

// SetDate accepts a time.Time or a date string.
func (s *Sale) SetDate(v any) *Sale {
	d, _ := normalize.Date(v)
	s.setString("date", d)
	return s
}

// SetCloseDate sets the expected close date, parsed like SetDate.
func (s *Sale) SetCloseDate(v any) *Sale {
	d, _ := normalize.Date(v)
	s.setString("close_date", d)
	return s
}

// SetAmount rejects negative amounts.
func (s *Sale) SetAmount(amount float64) error {
	if err := checkNonNegative("amount", "Amount cannot be negative", amount); err != nil {
		return err
	}
	s.store.Set("amount", amount)
	return nil
}

// SetProbability accepts 0 through 100.
func (s *Sale) SetProbability(p int) error {
	if err := checkIntRange("probability", "Probability must be between 0 and 100", p, 0, 100); err != nil {
		return err
	}
	s.store.Set("probability", p)
	return nil
}

func (s *Sale) Subject() string        { return s.str("subject") }
func (s *Sale) Description() string    { return s.str("description") }
func (s *Sale) SaleStatus() string     { return s.str("sale_status") }
func (s *Sale) SellingStatus() string  { return s.str("selling_status") }
func (s *Sale) UserExternalID() string { return s.str("user_external_id") }
func (s *Sale) Date() string           { return s.str("date") }
func (s *Sale) CloseDate() string      { return s.str("close_date") }

// Amount returns 0 when no amount is set.
func (s *Sale) Amount() float64 {
	f, _ := s.store.Float("amount")
	return f
}

// Probability reports the probability and whether it is set.
func (s *Sale) Probability() (int, bool) {
	return s.store.Int("probability")
}

// SetRating scores one category, creating the rating block on first use.
func (s *Sale) SetRating(category string, rating int, source string) error {
	r := s.rating
	if r == nil {
		r = NewRating()
	}
	if err := r.SetItem(category, rating, source); err != nil {
		return err
	}
	if s.rating == nil {
		s.SetRatingObject(r)
	}
	return nil
}

// SetRatingObject replaces the whole rating block. Nil removes it.
func (s *Sale) SetRatingObject(r *Rating) *Sale {
	attach(s.store, "rating", &s.rating, r)
	return s
}

func (s *Sale) Rating() *Rating { return s.rating }

// AddRemindAction appends a reminder. date may be a time.Time or a string
// and is written as YYYY-MM-DDTHH:MM:SS.
func (s *Sale) AddRemindAction(date any, subject string) error {
	action, err := newRemindAction(CreateAction{Type: ActionTypeRemind, RemindDate: date, Subject: subject})
	if err != nil {
		return err
	}
	actions, _ := s.store.Get("create_actions", nil).([]any)
	s.store.SetKey("create_actions", append(actions, action))
	return nil
}

// SetCreateActions replaces all actions. Each needs type, remind_date and
// subject. An empty list removes create_actions.
func (s *Sale) SetCreateActions(actions []map[string]any) error {
	list := make([]any, 0, len(actions))
	for i, raw := range actions {
		var a CreateAction
		if err := weakDecode(raw, &a); err != nil {
			return newInvalidArgument("create_actions", "invalid create action at index "+normalize.Stringify(i), err)
		}
		action, err := newRemindAction(a)
		if err != nil {
			return err
		}
		list = append(list, action)
	}
	if len(list) == 0 {
		s.store.Remove("create_actions")
		return nil
	}
	s.store.SetKey("create_actions", list)
	return nil
}

// CreateActions returns the queued actions, or nil.
func (s *Sale) CreateActions() []map[string]any {
	return toMapSlice(s.store.Get("create_actions", nil))
}

func newRemindAction(a CreateAction) (map[string]any, error) {
	if a.Type == "" {
		return nil, newInvalidArgument("create_actions.type", "Create action requires a type", nil)
	}
	if err := checkIn("create_actions.type", "Create action type", a.Type, []string{ActionTypeRemind}); err != nil {
		return nil, err
	}
	date, ok := normalize.DateTime(a.RemindDate)
	if date == "" {
		return nil, newInvalidArgument("create_actions.remind_date", "Create action requires a remind_date", nil)
	}
	if !ok {
		return nil, newInvalidArgument("create_actions.remind_date",
			"remind_date must be a date in format YYYY-MM-DDTHH:MM:SS, got: "+date, nil)
	}
	subject := strings.TrimSpace(a.Subject)
	if subject == "" {
		return nil, newInvalidArgument("create_actions.subject", "Create action requires a subject", nil)
	}
	return map[string]any{
		"type":        a.Type,
		"remind_date": date,
		"subject":     subject,
	}, nil
}

// SetCustomField stores a coerced custom_data value. Nil removes it.
func (s *Sale) SetCustomField(key string, value any) *Sale {
	s.setCustomField(key, value)
	return s
}

// SetCustomData merges data into custom_data unchanged.
func (s *Sale) SetCustomData(data map[string]any) *Sale {
	s.setCustomData(data)
	return s
}

// Validate checks the fields the import endpoint requires.
func (s *Sale) Validate() error {
	v := &validator{}
	s.validateMeta(v)
	v.required("subject", s.Subject())
	v.required("sale_status", s.SaleStatus())
	v.required("selling_status", s.SellingStatus())
	if s.CustomerNumber() == "" && s.CustomerExternalID() == "" {
		v.fail("customer.customer_number or customer.external_id is required")
	}
	return v.err()
}

// Submit posts s through the client set with SetAPIClient.
func (s *Sale) Submit(ctx context.Context) (map[string]any, error) {
	return s.submit(ctx)
}
