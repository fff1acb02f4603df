package models

// PaymentPlan is a purchasable enrollment plan. Charging happens in an
// external billing service; only the metadata lives here.
type PaymentPlan struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Currency  string  `bson:"currency" json:"currency"`
	CreatedAt string  `bson:"createdAt" json:"createdAt"` // "YYYY-MM-DD"
}

// PaymentRecord is one logged payment against a plan. LoggedAt may be empty
// when the upstream billing service reported no date.
type PaymentRecord struct {
	ID        string  `bson:"id" json:"id"`
	StudentID string  `bson:"studentId" json:"studentId"`
	PlanID    string  `bson:"planId,omitempty" json:"planId,omitempty"`
	Amount    float64 `bson:"amount" json:"amount"`
	Currency  string  `bson:"currency,omitempty" json:"currency,omitempty"`
	Method    string  `bson:"method,omitempty" json:"method,omitempty"` // "cash", "card", "upi", ...
	Status    string  `bson:"status,omitempty" json:"status,omitempty"`
	LoggedAt  string  `bson:"loggedAt,omitempty" json:"loggedAt,omitempty"` // "YYYY-MM-DD"
	Note      string  `bson:"note,omitempty" json:"note,omitempty"`
}

// PaymentLog is a record joined with its plan metadata for history views.
type PaymentLog struct {
	Record        PaymentRecord `json:"record"`
	PlanName      string        `json:"planName,omitempty"`
	PlanCreatedAt string        `json:"planCreatedAt,omitempty"`
}

// EffectiveDate picks the timestamp history views order by: the record's own
// logged date when present, else the plan's creation date, else empty (which
// sorts last).
func (l PaymentLog) EffectiveDate() string {
	if l.Record.LoggedAt != "" {
		return l.Record.LoggedAt
	}
	return l.PlanCreatedAt
}
