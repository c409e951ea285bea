package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/commission-crm/internal/entity"
	"github.com/xavierca1/commission-crm/internal/infra/database"
	"github.com/xavierca1/commission-crm/internal/infra/http/handlers"
	appmiddleware "github.com/xavierca1/commission-crm/internal/infra/http/middleware"
	"github.com/xavierca1/commission-crm/internal/infra/integration/discord"
	"github.com/xavierca1/commission-crm/internal/infra/integration/makecom"
	"github.com/xavierca1/commission-crm/internal/infra/integration/stripe"
	"github.com/xavierca1/commission-crm/internal/infra/mail"
	"github.com/xavierca1/commission-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	dealRepo := database.NewDealRepository(db)
	callRepo := database.NewCallMeetingRepository(db)
	teamRepo := database.NewTeamMemberRepository(db)
	activityRepo := database.NewActivityRepository(db)
	configRepo := database.NewConfigRepository(db)

	// 2. Snapshot de config: lido uma vez por instância da automação.
	// Mudanças no settings só valem após reiniciar.
	cfg, err := configRepo.LoadAll(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// 3. Integrações externas
	mailSender := mail.NewEmailSender(
		cfg.Get(entity.ConfigSMTPServer), 587,
		cfg.Get(entity.ConfigSMTPEmail), cfg.Get(entity.ConfigSMTPPassword),
	)
	discordClient := discord.NewClient(cfg.Get(entity.ConfigDiscordWebhook))
	makeClient := makecom.NewClient(cfg.Get(entity.ConfigMakeWebhook))
	stripeClient := stripe.NewClient(cfg.Get(entity.ConfigStripeAPIKey))

	// 4. Automação
	automation := usecase.NewAutomation(
		leadRepo, dealRepo, callRepo, teamRepo, activityRepo,
		mailSender, discordClient, makeClient, stripeClient,
		cfg,
	)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, automation)
	dealHandler := handlers.NewDealHandler(dealRepo, leadRepo, automation)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	callHandler := handlers.NewCallHandler(callRepo)
	activityHandler := handlers.NewActivityHandler(activityRepo)
	webhookHandler := handlers.NewWebhookHandler(automation, activityRepo)
	settingsHandler := handlers.NewSettingsHandler(configRepo,
		os.Getenv("SETTINGS_USER"), os.Getenv("SETTINGS_PASS"))
	statsHandler := handlers.NewStatsHandler(db)
	healthHandler := handlers.NewHealthHandler(db, cfg)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.Create)
	r.Get("/leads", leadHandler.List)
	r.Put("/leads/{leadID}/status", leadHandler.UpdateStatus)
	r.Get("/leads/{leadID}/calls", callHandler.ListByLead)
	r.Post("/deals", dealHandler.Create)
	r.Get("/deals", dealHandler.List)
	r.Post("/team", teamHandler.Create)
	r.Get("/team", teamHandler.List)
	r.Post("/calls", callHandler.Create)
	r.Get("/activity", activityHandler.List)
	r.Post("/settings", settingsHandler.Save)
	r.Get("/stats", statsHandler.Handle)
	r.Post("/webhook/stripe", webhookHandler.HandleStripe)
	r.Post("/webhook/make", webhookHandler.HandleMake)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🔥 Commission CRM rodando na porta :%s", port)
	http.ListenAndServe(":"+port, r)
}
