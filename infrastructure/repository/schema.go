package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/store-insights-api/infrastructure/database/postgres"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (
		id        INTEGER PRIMARY KEY,
		name      VARCHAR(120) NOT NULL,
		city      VARCHAR(120) NOT NULL,
		area_m2   NUMERIC(10,2) NOT NULL CHECK (area_m2 > 0),
		latitude  NUMERIC(9,6) NOT NULL,
		longitude NUMERIC(9,6) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id       INTEGER PRIMARY KEY,
		model    VARCHAR(120) NOT NULL,
		category VARCHAR(60) NOT NULL,
		price    NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales_reps (
		id       INTEGER PRIMARY KEY,
		name     VARCHAR(120) NOT NULL,
		store_id INTEGER NOT NULL REFERENCES stores (id)
	)`,
	`CREATE TABLE IF NOT EXISTS ad_spend (
		id          INTEGER PRIMARY KEY,
		date        DATE NOT NULL,
		channel     VARCHAR(20) NOT NULL,
		store_id    INTEGER NOT NULL REFERENCES stores (id),
		spend       NUMERIC(12,2) NOT NULL CHECK (spend >= 0),
		impressions INTEGER NOT NULL,
		clicks      INTEGER NOT NULL,
		CHECK (clicks <= impressions)
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id       INTEGER PRIMARY KEY,
		date     DATE NOT NULL,
		source   VARCHAR(20) NOT NULL,
		store_id INTEGER NOT NULL REFERENCES stores (id),
		status   VARCHAR(30) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id           INTEGER PRIMARY KEY,
		date         DATE NOT NULL,
		store_id     INTEGER NOT NULL REFERENCES stores (id),
		lead_id      INTEGER NOT NULL REFERENCES leads (id),
		sales_rep_id INTEGER NOT NULL REFERENCES sales_reps (id),
		outcome      VARCHAR(20) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id              INTEGER PRIMARY KEY,
		date            DATE NOT NULL,
		store_id        INTEGER NOT NULL REFERENCES stores (id),
		lead_id         INTEGER REFERENCES leads (id),
		sales_rep_id    INTEGER NOT NULL REFERENCES sales_reps (id),
		product_id      INTEGER NOT NULL REFERENCES products (id),
		amount          NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		margin          NUMERIC(5,4) NOT NULL CHECK (margin BETWEEN 0 AND 1),
		days_since_lead INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ad_spend_date ON ad_spend (date)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_date ON leads (date)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_date ON appointments (date)`,
}

// EnsureSchema cria as tabelas do dataset caso ainda não existam
func EnsureSchema(ctx context.Context, db postgres.Queryer) error {
	for _, statement := range schemaStatements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}
