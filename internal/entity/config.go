package entity

import "context"

// Chaves conhecidas da tabela config.
const (
	ConfigDiscordWebhook     = "discord_webhook"
	ConfigMakeWebhook        = "make_webhook"
	ConfigStripeAPIKey       = "stripe_api_key"
	ConfigSMTPServer         = "smtp_server"
	ConfigSMTPEmail          = "smtp_email"
	ConfigSMTPPassword       = "smtp_password"
	ConfigManagerEmail       = "manager_email"
	ConfigDefaultLeadGenMail = "default_lead_gen_email"
)

// Config é o snapshot chave→valor carregado do banco na construção da
// automação. Mudanças feitas depois só valem para instâncias novas.
type Config map[string]string

func (c Config) Get(key string) string {
	return c[key]
}

// GetOr retorna o valor da chave ou o fallback se estiver vazia.
func (c Config) GetOr(key, fallback string) string {
	if v := c[key]; v != "" {
		return v
	}
	return fallback
}

type ConfigRepository interface {
	LoadAll(ctx context.Context) (Config, error)
	Upsert(ctx context.Context, key, value string) error
}
