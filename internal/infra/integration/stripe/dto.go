package stripe

// PaymentLinkInput é o DTO limpo que o usecase entrega; a conversão para o
// formato da API fica toda aqui dentro.
type PaymentLinkInput struct {
	Amount      float64
	DealID      int64
	LeadID      int64
	CompanyName string
}

type paymentLinkResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
