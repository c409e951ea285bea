package usecase

// Taxas fixas de comissão. O total tem taxa própria em vez de ser a soma das
// três: uma mudança futura em qualquer taxa individual não pode mexer no
// total implicitamente.
const (
	rateLeadGen  = 0.08
	rateCloser   = 0.10
	rateProducer = 0.08
	rateTotal    = 0.26
)

type CommissionSplit struct {
	LeadGen  float64 `json:"lead_gen"`
	Closer   float64 `json:"closer"`
	Producer float64 `json:"producer"`
	Total    float64 `json:"total"`
}

// CalculateCommissions quebra o valor do deal nas quatro parcelas. Não valida
// nada: valor negativo produz parcelas negativas, o guard rail fica em quem
// chama.
func CalculateCommissions(dealValue float64) CommissionSplit {
	return CommissionSplit{
		LeadGen:  dealValue * rateLeadGen,
		Closer:   dealValue * rateCloser,
		Producer: dealValue * rateProducer,
		Total:    dealValue * rateTotal,
	}
}
