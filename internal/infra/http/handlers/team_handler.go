package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type TeamHandler struct {
	Team entity.TeamMemberRepository
}

func NewTeamHandler(team entity.TeamMemberRepository) *TeamHandler {
	return &TeamHandler{Team: team}
}

type createTeamMemberRequest struct {
	Name                 string   `json:"name"`
	Role                 string   `json:"role"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	CommissionPercentage *float64 `json:"commission_percentage"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	// percentual omitido cai no default do papel; o valor é só informativo,
	// o cálculo real usa as taxas fixas
	commission := entity.DefaultCommissionByRole[req.Role]
	if req.CommissionPercentage != nil {
		commission = *req.CommissionPercentage
	}

	member := &entity.TeamMember{
		Name:                 req.Name,
		Role:                 req.Role,
		Email:                req.Email,
		Phone:                req.Phone,
		CommissionPercentage: commission,
	}

	if err := h.Team.Create(r.Context(), member); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create team member")
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.Team.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list team members")
		return
	}
	if members == nil {
		members = []entity.TeamMember{}
	}
	writeJSON(w, http.StatusOK, members)
}
