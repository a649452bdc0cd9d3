package model

// Reference codes are static lookup values constraining call and customer
// attributes.
type ReferenceCode struct {
	Code        string
	Description string
}

type BusinessSector struct {
	ID          int64
	Code        string
	Description string
}

var (
	DefaultCallOutcomes = []ReferenceCode{
		{"OC1", "Resolved"},
		{"OC2", "Follow-up required"},
		{"OC3", "Escalated"},
		{"OC4", "No answer"},
		{"OC5", "Wrong number"},
	}
	DefaultCallStatuses = []ReferenceCode{
		{"SC1", "Open"},
		{"SC2", "In progress"},
		{"SC3", "Closed"},
	}
	DefaultCustomerTypes = []ReferenceCode{
		{"CT1", "Individual"},
		{"CT2", "Small business"},
		{"CT3", "Enterprise"},
	}
	DefaultBusinessSectors = []BusinessSector{
		{Code: "RET", Description: "Retail"},
		{Code: "FIN", Description: "Financial services"},
		{Code: "TEL", Description: "Telecommunications"},
		{Code: "GOV", Description: "Public sector"},
	}
)
