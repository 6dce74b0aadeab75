package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note importance levels.
const (
	ImportanceHigh   = "High"
	ImportanceNormal = "Normal"
	ImportanceLow    = "Low"
)

// EventPlan is the planning region of a project, populated at creation.
type EventPlan struct {
	EventName string `bson:"eventName" json:"eventName"`
	Date      string `bson:"date" json:"date"`
	Location  string `bson:"location" json:"location"`
	Attendees int    `bson:"attendees" json:"attendees"`
	Notes     string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// BudgetBreakdown is the planned-spend side of a financial model.
type BudgetBreakdown struct {
	Venue     float64 `bson:"venue" json:"venue"`
	Catering  float64 `bson:"catering" json:"catering"`
	Marketing float64 `bson:"marketing" json:"marketing"`
	Other     float64 `bson:"other" json:"other"`
}

// IncomeBreakdown is the expected-income side of a financial model.
type IncomeBreakdown struct {
	TicketSales  float64 `bson:"ticketSales" json:"ticketSales"`
	Sponsorships float64 `bson:"sponsorships" json:"sponsorships"`
	Merchandise  float64 `bson:"merchandise" json:"merchandise"`
}

// FinancialModel is attached or replaced wholesale; partial fields are never
// merged (last writer wins).
type FinancialModel struct {
	Budget       BudgetBreakdown    `bson:"budget" json:"budget"`
	Income       IncomeBreakdown    `bson:"income" json:"income"`
	ProfitMargin float64            `bson:"profitMargin" json:"profitMargin"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
}

// ExecutionNote is one entry of the append-only notes list. EventName is
// copied from the project's event plan at append time; later renames do not
// touch historical notes.
type ExecutionNote struct {
	Notes      string    `bson:"notes" json:"notes"`
	Category   string    `bson:"category" json:"category"`
	EventName  string    `bson:"eventName" json:"eventName"`
	Importance string    `bson:"importance" json:"importance"`
	DateTime   string    `bson:"dateTime" json:"dateTime"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// ProjectManagement is the event aggregate: one document holding the three
// independently-writable regions of a single event's state.
type ProjectManagement struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId" json:"userId"`
	EventPlanning    *EventPlan         `bson:"eventPlanning,omitempty" json:"eventPlanning,omitempty"`
	FinancialModel   *FinancialModel    `bson:"financialModeling,omitempty" json:"financialModeling,omitempty"`
	ExecutionNotes   []ExecutionNote    `bson:"executionNotes" json:"executionNotes"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *ProjectManagement) GetID() primitive.ObjectID   { return p.ID }
func (p *ProjectManagement) SetID(id primitive.ObjectID) { p.ID = id }

// EventSummary is the minimal list-events projection: id and name only.
type EventSummary struct {
	ProjectID string `json:"projectId"`
	EventName string `json:"eventName"`
}
