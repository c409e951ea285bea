package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/commission-crm/internal/entity"
)

type ConfigRepository struct {
	DB *sql.DB
}

func NewConfigRepository(db *sql.DB) *ConfigRepository {
	return &ConfigRepository{DB: db}
}

// LoadAll carrega o mapa chave→valor inteiro. A automação chama isso uma vez
// na construção e nunca mais.
func (r *ConfigRepository) LoadAll(ctx context.Context) (entity.Config, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT config_key, config_value FROM config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cfg := make(entity.Config)
	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		cfg[key] = value.String
	}
	return cfg, rows.Err()
}

func (r *ConfigRepository) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO config (config_key, config_value)
		VALUES ($1, $2)
		ON CONFLICT (config_key)
		DO UPDATE SET config_value = EXCLUDED.config_value
	`
	_, err := r.DB.ExecContext(ctx, query, key, value)
	return err
}
