package model

// Typed request bodies, one per operation. Binding happens at the handler
// boundary; field validation produces a uniform validation error before any
// domain logic runs.

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExpenseRequest covers both create and update; Amount is a pointer so a
// missing amount is distinguishable from zero.
type ExpenseRequest struct {
	Amount   *float64 `json:"amount"`
	Category string   `json:"category"`
	Date     string   `json:"date"`
	Notes    string   `json:"notes,omitempty"`
}

type BudgetRequest struct {
	Budget *float64 `json:"budget"`
}

type EventPlanRequest struct {
	EventName string `json:"eventName"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Attendees int    `json:"attendees"`
	Notes     string `json:"notes,omitempty"`
}

type FinancialModelRequest struct {
	ProjectID    string           `json:"projectId"`
	Budget       *BudgetBreakdown `json:"budget"`
	Income       *IncomeBreakdown `json:"income"`
	ProfitMargin *float64         `json:"profitMargin"`
}

type NoteRequest struct {
	ProjectID  string `json:"projectId"`
	Notes      string `json:"notes"`
	Category   string `json:"category"`
	Importance string `json:"importance,omitempty"`
	DateTime   string `json:"dateTime"`
}

type MembershipRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Interests string `json:"interests,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
}

type ContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Query string `json:"query"`
}
