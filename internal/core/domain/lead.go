package domain

import "time"

// Lead is a CRM enquiry. Score and stage transitions are computed server-side.
type Lead struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Source     string     `json:"source,omitempty"`
	Status     LeadStatus `json:"status"`
	Score      int        `json:"score"`
	TourID     string     `json:"tourId,omitempty"`
	Message    string     `json:"message,omitempty"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	Notes      []LeadNote `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusProposal  LeadStatus = "proposal"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// Valid reports whether s is one of the known pipeline stages.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusProposal, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// LeadNote is a free-text follow-up attached to a lead.
type LeadNote struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LeadList is the payload of GET /admin/crm/leads.
type LeadList struct {
	Leads      []Lead     `json:"leads"`
	Pagination Pagination `json:"pagination"`
}

// LeadInput is submitted when creating or editing a lead by hand.
type LeadInput struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Source  string `json:"source"`
	TourID  string `json:"tourId"`
	Message string `json:"message"`
}

// LeadStats is the server-computed pipeline summary.
type LeadStats struct {
	Total          int                `json:"total"`
	ByStatus       map[LeadStatus]int `json:"byStatus"`
	BySource       map[string]int     `json:"bySource,omitempty"`
	ConversionRate float64            `json:"conversionRate"`
	AverageScore   float64            `json:"averageScore"`
}
