package entity

// LeadStatus é o pipeline fixo do CRM. A automação dispara apenas em cima
// desses valores exatos (case-sensitive).
type LeadStatus string

const (
	StatusNewLead            LeadStatus = "New Lead"
	StatusNotifiedCloser     LeadStatus = "Notified Closer"
	StatusCallBooked         LeadStatus = "Call Booked"
	StatusCallConfirmed      LeadStatus = "Call Confirmed"
	StatusDealClosed         LeadStatus = "Deal Closed"
	StatusProductionStarted  LeadStatus = "Production Started"
	StatusProductionComplete LeadStatus = "Production Complete"
	StatusClosedPaid         LeadStatus = "Closed + Paid"
)

// AllStatuses na ordem do pipeline (a UI depende dessa ordem).
var AllStatuses = []LeadStatus{
	StatusNewLead,
	StatusNotifiedCloser,
	StatusCallBooked,
	StatusCallConfirmed,
	StatusDealClosed,
	StatusProductionStarted,
	StatusProductionComplete,
	StatusClosedPaid,
}

func (s LeadStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
