package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Os nomes de tabela e coluna são contrato externo do CRM: outros sistemas
// leem esse schema direto. Não renomear.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS team_members (
		member_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT,
		email TEXT,
		phone TEXT,
		commission_percentage REAL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		lead_id SERIAL PRIMARY KEY,
		lead_name TEXT NOT NULL,
		company_name TEXT,
		industry TEXT,
		source TEXT,
		contact_email TEXT,
		contact_phone TEXT,
		assigned_closer_id INTEGER REFERENCES team_members(member_id),
		assigned_producer_id INTEGER REFERENCES team_members(member_id),
		lead_status TEXT DEFAULT 'New Lead',
		notes TEXT,
		date_added TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS calls_meetings (
		call_id SERIAL PRIMARY KEY,
		lead_id INTEGER REFERENCES leads(lead_id),
		call_datetime TIMESTAMP,
		call_outcome TEXT,
		notes_summary TEXT,
		recording_link TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS deals (
		deal_id SERIAL PRIMARY KEY,
		lead_id INTEGER REFERENCES leads(lead_id),
		deal_value REAL,
		deal_stage TEXT,
		close_date DATE,
		payment_status TEXT DEFAULT 'Pending',
		stripe_payment_link TEXT,
		commission_lead_gen REAL,
		commission_closer REAL,
		commission_producer REAL,
		total_commission REAL
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		activity_id SERIAL PRIMARY KEY,
		related_lead_id INTEGER,
		activity_type TEXT,
		timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		performed_by_id INTEGER,
		notes TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS config (
		config_key TEXT PRIMARY KEY,
		config_value TEXT
	)`,
}

// EnsureSchema cria as tabelas do CRM se ainda não existirem.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}
