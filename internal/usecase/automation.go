package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/integration/discord"
	"github.com/xavierca1/commission-crm/internal/infra/integration/stripe"
)

// Automation é o despachante central: recebe transições de status do lead e
// dispara o workflow correspondente. Não guarda estado além do snapshot de
// config carregado na construção.
type Automation struct {
	Leads    entity.LeadRepository
	Deals    entity.DealRepository
	Calls    entity.CallMeetingRepository
	Team     entity.TeamMemberRepository
	Activity entity.ActivityRepository

	Email     EmailService
	Chat      ChatService
	Forwarder EventForwarder
	Payments  PaymentLinkProvider

	Config entity.Config
}

func NewAutomation(
	leads entity.LeadRepository,
	deals entity.DealRepository,
	calls entity.CallMeetingRepository,
	team entity.TeamMemberRepository,
	activity entity.ActivityRepository,
	email EmailService,
	chat ChatService,
	forwarder EventForwarder,
	payments PaymentLinkProvider,
	cfg entity.Config,
) *Automation {
	return &Automation{
		Leads:     leads,
		Deals:     deals,
		Calls:     calls,
		Team:      team,
		Activity:  activity,
		Email:     email,
		Chat:      chat,
		Forwarder: forwarder,
		Payments:  payments,
		Config:    cfg,
	}
}

// HandleStatusChange roteia a transição para no máximo um workflow e sempre
// repassa o evento para o Make.com no final, mesmo quando nenhum workflow
// dispara. Lead inexistente é no-op silencioso; nenhuma falha externa sobe
// para o chamador.
func (a *Automation) HandleStatusChange(ctx context.Context, leadID int64, oldStatus, newStatus entity.LeadStatus) {
	lctx := a.loadLeadContext(ctx, leadID)
	if lctx == nil {
		return
	}

	switch newStatus {
	case entity.StatusCallBooked:
		a.notifyCloserCallBooked(ctx, lctx)
	case entity.StatusDealClosed:
		a.handleDealClosed(ctx, lctx)
	case entity.StatusProductionStarted:
		a.notifyProducerNewProject(ctx, lctx)
	case entity.StatusProductionComplete:
		a.calculateAndNotifyCommissions(ctx, lctx)
	case entity.StatusClosedPaid:
		a.setupRecurringPayment(ctx, lctx)
	default:
		// transição sem workflow: só o forward abaixo
	}

	a.forwardStatusChange(ctx, leadID, oldStatus, newStatus, lctx)
}

// loadLeadContext monta o snapshot do lead com os contatos relacionados em um
// único passo de composição. O destinatário de lead gen vem do config
// (default_lead_gen_email); sem config, cai no primeiro membro do time com
// esse papel.
func (a *Automation) loadLeadContext(ctx context.Context, leadID int64) *entity.LeadContext {
	lctx, err := a.Leads.FindContext(ctx, leadID)
	if err != nil {
		if !errors.Is(err, entity.ErrLeadNotFound) {
			log.Printf("⚠️ erro ao carregar contexto do lead %d: %v", leadID, err)
		}
		return nil
	}

	if email := a.Config.Get(entity.ConfigDefaultLeadGenMail); email != "" {
		lctx.LeadGenEmail = email
	} else if lg, err := a.Team.FindFirstByRole(ctx, entity.RoleLeadGenerator); err == nil && lg != nil {
		lctx.LeadGenName = lg.Name
		lctx.LeadGenEmail = lg.Email
	}

	return lctx
}

func (a *Automation) forwardStatusChange(ctx context.Context, leadID int64, oldStatus, newStatus entity.LeadStatus, lctx *entity.LeadContext) {
	err := a.Forwarder.Forward(ctx, "status_change", map[string]any{
		"lead_id":    leadID,
		"old_status": oldStatus,
		"new_status": newStatus,
		"lead_data":  lctx,
	})
	if err != nil {
		// o forward roda depois dos efeitos do workflow; falha aqui nunca
		// desfaz nem bloqueia nada
		log.Printf("⚠️ forward make.com falhou: %v", err)
	}
}

// Workflow 1: Call Booked → avisa o closer da call mais recente.
func (a *Automation) notifyCloserCallBooked(ctx context.Context, lctx *entity.LeadContext) {
	if lctx.CloserEmail == "" {
		return
	}

	callTime := "TBD"
	callNotes := ""
	if call, err := a.Calls.FindLatestByLeadID(ctx, lctx.Lead.ID); err == nil && call != nil {
		callTime = call.CallDatetime.Format("2006-01-02T15:04")
		callNotes = call.NotesSummary
	}

	subject := fmt.Sprintf("New Call Booked: %s", lctx.Lead.Name)
	body := callBookedEmail(lctx, callTime, callNotes)

	outcomes := []SendOutcome{
		a.sendEmail(lctx.CloserEmail, subject, body),
		a.sendChat(fmt.Sprintf("New Call Booked for %s", lctx.CloserName), &discord.Embed{
			Title:       "Call Booked Notification",
			Description: fmt.Sprintf("Lead: %s from %s", lctx.Lead.Name, orNA(lctx.Lead.CompanyName)),
			Color:       discord.ColorGreen,
			Fields: []discord.EmbedField{
				{Name: "Scheduled Time", Value: callTime, Inline: true},
				{Name: "Contact", Value: orNA(lctx.Lead.ContactEmail), Inline: true},
			},
		}),
	}
	reportOutcomes("call_booked", outcomes)
}

// Workflow 2: Deal Closed → gera link de pagamento e avisa o closer.
func (a *Automation) handleDealClosed(ctx context.Context, lctx *entity.LeadContext) {
	deal, err := a.Deals.FindLatestByLeadID(ctx, lctx.Lead.ID)
	if err != nil || deal == nil {
		if err != nil && !errors.Is(err, entity.ErrDealNotFound) {
			log.Printf("⚠️ erro ao buscar deal do lead %d: %v", lctx.Lead.ID, err)
		}
		return
	}

	link := a.paymentLinkFor(ctx, deal, lctx)

	if err := a.Deals.UpdatePaymentLink(ctx, deal.ID, link); err != nil {
		log.Printf("⚠️ erro ao salvar payment link do deal %d: %v", deal.ID, err)
	}

	if lctx.CloserEmail == "" {
		return
	}

	subject := fmt.Sprintf("Payment Link Generated: %s", lctx.Lead.Name)
	body := paymentLinkEmail(lctx, deal.Value, link)

	reportOutcomes("deal_closed", []SendOutcome{
		a.sendEmail(lctx.CloserEmail, subject, body),
	})
}

// paymentLinkFor pede o link ao Stripe; sem chave configurada ou com erro do
// provider, devolve o link placeholder determinístico do deal.
func (a *Automation) paymentLinkFor(ctx context.Context, deal *entity.Deal, lctx *entity.LeadContext) string {
	fallback := fmt.Sprintf("https://stripe.com/invoice/pay/%d", deal.ID)

	link, err := a.Payments.CreatePaymentLink(ctx, stripe.PaymentLinkInput{
		Amount:      deal.Value,
		DealID:      deal.ID,
		LeadID:      lctx.Lead.ID,
		CompanyName: lctx.Lead.CompanyName,
	})
	if err != nil {
		log.Printf("⚠️ stripe payment link indisponível, usando fallback: %v", err)
		return fallback
	}
	return link
}

// Workflow 3: Production Started → avisa o producer do projeto novo.
func (a *Automation) notifyProducerNewProject(ctx context.Context, lctx *entity.LeadContext) {
	if lctx.ProducerEmail == "" {
		return
	}

	// valor do deal pago mais recente; sem deal pago segue com 0
	dealValue := 0.0
	if deal, err := a.Deals.FindLatestPaidByLeadID(ctx, lctx.Lead.ID); err == nil && deal != nil {
		dealValue = deal.Value
	}

	subject := fmt.Sprintf("New Production Project: %s", lctx.Lead.Name)
	body := newProjectEmail(lctx, dealValue)

	outcomes := []SendOutcome{
		a.sendEmail(lctx.ProducerEmail, subject, body),
		a.sendChat(fmt.Sprintf("New Production Project for %s", lctx.ProducerName), &discord.Embed{
			Title:       "Production Started",
			Description: fmt.Sprintf("Client: %s - %s", lctx.Lead.Name, orNA(lctx.Lead.CompanyName)),
			Color:       discord.ColorGold,
			Fields: []discord.EmbedField{
				{Name: "Deal Value", Value: money(dealValue), Inline: true},
				{Name: "Producer", Value: lctx.ProducerName, Inline: true},
			},
		}),
	}
	reportOutcomes("production_started", outcomes)
}

// Workflow 4: Production Complete → calcula comissões, persiste no deal e
// avisa o manager. Reexecutar com o mesmo valor de deal grava os mesmos
// números de novo.
func (a *Automation) calculateAndNotifyCommissions(ctx context.Context, lctx *entity.LeadContext) {
	deal, err := a.Deals.FindLatestByLeadID(ctx, lctx.Lead.ID)
	if err != nil || deal == nil {
		if err != nil && !errors.Is(err, entity.ErrDealNotFound) {
			log.Printf("⚠️ erro ao buscar deal do lead %d: %v", lctx.Lead.ID, err)
		}
		return
	}

	split := CalculateCommissions(deal.Value)

	if err := a.Deals.UpdateCommissions(ctx, deal.ID, split.LeadGen, split.Closer, split.Producer, split.Total); err != nil {
		log.Printf("⚠️ erro ao persistir comissões do deal %d: %v", deal.ID, err)
	}

	managerEmail := a.managerEmail()
	if managerEmail == "" {
		log.Printf("manager_email ausente, comissões do deal %d gravadas sem notificação", deal.ID)
		return
	}

	subject := fmt.Sprintf("Commission Breakdown: %s", lctx.Lead.Name)
	body := commissionEmail(lctx, deal.Value, split)

	outcomes := []SendOutcome{
		a.sendEmail(managerEmail, subject, body),
		a.sendChat("Commission Calculation Complete", &discord.Embed{
			Title:       "Commissions Ready",
			Description: fmt.Sprintf("Deal: %s - %s", lctx.Lead.Name, money(deal.Value)),
			Color:       discord.ColorGreen,
			Fields: []discord.EmbedField{
				{Name: "Lead Gen", Value: money(split.LeadGen), Inline: true},
				{Name: "Closer", Value: money(split.Closer), Inline: true},
				{Name: "Producer", Value: money(split.Producer), Inline: true},
				{Name: "Total", Value: money(split.Total), Inline: false},
			},
		}),
	}
	reportOutcomes("production_complete", outcomes)
}

// Workflow 5: Closed + Paid → pede ao manager a configuração do retainer
// recorrente. Só leitura, nenhuma mutação no banco.
func (a *Automation) setupRecurringPayment(ctx context.Context, lctx *entity.LeadContext) {
	managerEmail := a.managerEmail()
	if managerEmail == "" {
		return
	}

	dealValue := 0.0
	if deal, err := a.Deals.FindLatestByLeadID(ctx, lctx.Lead.ID); err == nil && deal != nil {
		dealValue = deal.Value
	}

	subject := fmt.Sprintf("Client Fulfilled - Setup Recurring Payment: %s", lctx.Lead.Name)
	body := recurringPaymentEmail(lctx, dealValue)

	outcomes := []SendOutcome{
		a.sendEmail(managerEmail, subject, body),
		a.sendChat("Client Fulfilled - Recurring Payment Needed", &discord.Embed{
			Title:       "Setup Recurring Payment",
			Description: fmt.Sprintf("Client: %s is ready for monthly retainer", lctx.Lead.Name),
			Color:       discord.ColorTeal,
			Fields: []discord.EmbedField{
				{Name: "Client", Value: lctx.Lead.Name, Inline: true},
				{Name: "Company", Value: orNA(lctx.Lead.CompanyName), Inline: true},
			},
		}),
	}
	reportOutcomes("closed_paid", outcomes)
}

// managerEmail resolve o destinatário de manager: config manager_email com
// fallback no remetente SMTP.
func (a *Automation) managerEmail() string {
	return a.Config.GetOr(entity.ConfigManagerEmail, a.Config.Get(entity.ConfigSMTPEmail))
}

func (a *Automation) sendEmail(to, subject, body string) SendOutcome {
	return SendOutcome{Channel: "email", Recipient: to, Err: a.Email.Send(to, subject, body)}
}

func (a *Automation) sendChat(content string, embed *discord.Embed) SendOutcome {
	return SendOutcome{Channel: "discord", Recipient: "webhook", Err: a.Chat.Send(content, embed)}
}

// LogActivity registra uma entrada no activity_log (append-only).
func (a *Automation) LogActivity(ctx context.Context, leadID int64, activityType string, performedByID int64, notes string) {
	entry := &entity.ActivityEntry{
		RelatedLeadID: leadID,
		ActivityType:  activityType,
		PerformedByID: performedByID,
		Notes:         notes,
	}
	if err := a.Activity.Append(ctx, entry); err != nil {
		log.Printf("⚠️ erro ao gravar activity log: %v", err)
	}
}
