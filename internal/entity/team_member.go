package entity

import "context"

// Papéis reconhecidos no time.
const (
	RoleLeadGenerator = "Lead Generator"
	RoleCloser        = "Closer"
	RoleProducer      = "Producer"
	RoleManager       = "Manager"
)

// DefaultCommissionByRole pré-preenche o percentual no cadastro. Campo apenas
// informativo: o cálculo de comissão usa as taxas fixas do usecase, nunca
// esse valor.
var DefaultCommissionByRole = map[string]float64{
	RoleLeadGenerator: 8.0,
	RoleCloser:        10.0,
	RoleProducer:      8.0,
	RoleManager:       0.0,
}

type TeamMember struct {
	ID                   int64   `json:"member_id"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	Email                string  `json:"email,omitempty"`
	Phone                string  `json:"phone,omitempty"`
	CommissionPercentage float64 `json:"commission_percentage"`
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	List(ctx context.Context) ([]TeamMember, error)
	// FindFirstByRole retorna um membro qualquer com o papel dado (menor
	// member_id) ou nil se não houver.
	FindFirstByRole(ctx context.Context, role string) (*TeamMember, error)
}
