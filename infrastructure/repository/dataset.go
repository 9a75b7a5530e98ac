// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/store-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-insights-api/internal/domain"
)

const (
	storesTable       = "stores"
	adSpendTable      = "ad_spend"
	leadsTable        = "leads"
	salesTable        = "sales"
	salesRepsTable    = "sales_reps"
	productsTable     = "products"
	appointmentsTable = "appointments"

	insertBatchSize = 500
)

// DatasetRepository carrega o dataset completo usado pelo motor de análise.
// O dataset devolvido é tratado como somente leitura por quem chama; Load pode
// devolver o mesmo ponteiro em chamadas seguidas.
type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// DatasetWriter persiste um dataset gerado, substituindo o conteúdo das tabelas
type DatasetWriter interface {
	Save(ctx context.Context, ds *domain.Dataset) error
}

type datasetRepository struct {
	conn postgres.Conn
}

func NewDatasetRepository(conn postgres.Conn) *datasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	stores, err := queryAll(ctx, r.conn, selectStores(), scanStore)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lojas: %w", err)
	}

	adSpend, err := queryAll(ctx, r.conn, selectAdSpend(), scanAdSpend)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar investimentos: %w", err)
	}

	leads, err := queryAll(ctx, r.conn, selectLeads(), scanLead)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar leads: %w", err)
	}

	sales, err := queryAll(ctx, r.conn, selectSales(), scanSale)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas: %w", err)
	}

	reps, err := queryAll(ctx, r.conn, selectSalesReps(), scanSalesRep)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendedores: %w", err)
	}

	products, err := queryAll(ctx, r.conn, selectProducts(), scanProduct)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos: %w", err)
	}

	appointments, err := queryAll(ctx, r.conn, selectAppointments(), scanAppointment)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar atendimentos: %w", err)
	}

	return domain.NewDataset(stores, adSpend, leads, sales, reps, products, appointments)
}

func selectStores() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "name", "city", "area_m2", "latitude", "longitude").
		From(storesTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectAdSpend() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "date", "channel", "store_id", "spend", "impressions", "clicks").
		From(adSpendTable).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectLeads() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "date", "source", "store_id", "status").
		From(leadsTable).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectSales() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "date", "store_id", "lead_id", "sales_rep_id", "product_id", "amount", "margin", "days_since_lead").
		From(salesTable).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectSalesReps() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "name", "store_id").
		From(salesRepsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectProducts() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "model", "category", "price").
		From(productsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func selectAppointments() squirrel.SelectBuilder {
	return squirrel.
		Select("id", "date", "store_id", "lead_id", "sales_rep_id", "outcome").
		From(appointmentsTable).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func queryAll[T any](
	ctx context.Context,
	conn postgres.Queryer,
	builder squirrel.SelectBuilder,
	scan func(*sql.Rows) (T, error),
) ([]T, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

func scanStore(rows *sql.Rows) (domain.Store, error) {
	var store domain.Store
	err := rows.Scan(&store.ID, &store.Name, &store.City, &store.AreaM2, &store.Latitude, &store.Longitude)
	return store, err
}

func scanAdSpend(rows *sql.Rows) (domain.AdSpend, error) {
	var (
		entry   domain.AdSpend
		channel string
	)
	err := rows.Scan(&entry.ID, &entry.Date, &channel, &entry.StoreID, &entry.Spend, &entry.Impressions, &entry.Clicks)
	if err != nil {
		return entry, err
	}

	entry.Channel, err = domain.ParseChannel(channel)
	if err == nil && entry.Channel == "" {
		err = fmt.Errorf("investimento %d sem canal", entry.ID)
	}
	entry.Date = entry.Date.UTC()
	return entry, err
}

func scanLead(rows *sql.Rows) (domain.Lead, error) {
	var (
		lead   domain.Lead
		source string
		status string
	)
	err := rows.Scan(&lead.ID, &lead.Date, &source, &lead.StoreID, &status)
	lead.Source = domain.LeadSource(source)
	lead.Status = domain.LeadStatus(status)
	lead.Date = lead.Date.UTC()
	return lead, err
}

func scanSale(rows *sql.Rows) (domain.Sale, error) {
	var (
		sale          domain.Sale
		leadID        sql.NullInt64
		daysSinceLead sql.NullInt64
	)
	err := rows.Scan(
		&sale.ID,
		&sale.Date,
		&sale.StoreID,
		&leadID,
		&sale.SalesRepID,
		&sale.ProductID,
		&sale.Amount,
		&sale.Margin,
		&daysSinceLead,
	)
	if err != nil {
		return sale, err
	}

	if leadID.Valid {
		id := int(leadID.Int64)
		sale.LeadID = &id
	}
	if daysSinceLead.Valid {
		days := int(daysSinceLead.Int64)
		sale.DaysSinceLead = &days
	}
	sale.Date = sale.Date.UTC()

	return sale, nil
}

func scanSalesRep(rows *sql.Rows) (domain.SalesRep, error) {
	var rep domain.SalesRep
	err := rows.Scan(&rep.ID, &rep.Name, &rep.StoreID)
	return rep, err
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var product domain.Product
	err := rows.Scan(&product.ID, &product.Model, &product.Category, &product.Price)
	return product, err
}

func scanAppointment(rows *sql.Rows) (domain.Appointment, error) {
	var (
		appointment domain.Appointment
		outcome     string
	)
	err := rows.Scan(&appointment.ID, &appointment.Date, &appointment.StoreID, &appointment.LeadID, &appointment.SalesRepID, &outcome)
	appointment.Outcome = domain.AppointmentOutcome(outcome)
	appointment.Date = appointment.Date.UTC()
	return appointment, err
}

// Save grava o dataset em uma única transação, limpando as tabelas antes
func (r *datasetRepository) Save(ctx context.Context, ds *domain.Dataset) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE %s, %s, %s, %s, %s, %s, %s",
			appointmentsTable, salesTable, leadsTable, adSpendTable, salesRepsTable, productsTable, storesTable))
		if err != nil {
			return fmt.Errorf("erro ao limpar tabelas: %w", err)
		}

		batches := []struct {
			table   string
			columns []string
			rows    [][]any
		}{
			{storesTable, []string{"id", "name", "city", "area_m2", "latitude", "longitude"}, storeRows(ds.Stores)},
			{productsTable, []string{"id", "model", "category", "price"}, productRows(ds.Products)},
			{salesRepsTable, []string{"id", "name", "store_id"}, salesRepRows(ds.SalesReps)},
			{adSpendTable, []string{"id", "date", "channel", "store_id", "spend", "impressions", "clicks"}, adSpendRows(ds.AdSpend)},
			{leadsTable, []string{"id", "date", "source", "store_id", "status"}, leadRows(ds.Leads)},
			{appointmentsTable, []string{"id", "date", "store_id", "lead_id", "sales_rep_id", "outcome"}, appointmentRows(ds.Appointments)},
			{salesTable, []string{"id", "date", "store_id", "lead_id", "sales_rep_id", "product_id", "amount", "margin", "days_since_lead"}, saleRows(ds.Sales)},
		}

		for _, batch := range batches {
			if err := insertRows(ctx, tx, batch.table, batch.columns, batch.rows); err != nil {
				return err
			}
		}

		return nil
	})
}

func insertRows(ctx context.Context, tx postgres.Queryer, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))

		query := squirrel.StatementBuilder.
			Insert(table).
			Columns(columns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, values := range rows[start:end] {
			query = query.Values(values...)
		}

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir insert em %s: %w", table, err)
		}

		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao inserir em %s: %w", table, err)
		}
	}

	return nil
}

func dateValue(t time.Time) string {
	return t.Format(time.DateOnly)
}

func storeRows(stores []domain.Store) [][]any {
	rows := make([][]any, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []any{s.ID, s.Name, s.City, s.AreaM2, s.Latitude, s.Longitude})
	}
	return rows
}

func productRows(products []domain.Product) [][]any {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{p.ID, p.Model, p.Category, p.Price})
	}
	return rows
}

func salesRepRows(reps []domain.SalesRep) [][]any {
	rows := make([][]any, 0, len(reps))
	for _, rep := range reps {
		rows = append(rows, []any{rep.ID, rep.Name, rep.StoreID})
	}
	return rows
}

func adSpendRows(entries []domain.AdSpend) [][]any {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{e.ID, dateValue(e.Date), string(e.Channel), e.StoreID, e.Spend, e.Impressions, e.Clicks})
	}
	return rows
}

func leadRows(leads []domain.Lead) [][]any {
	rows := make([][]any, 0, len(leads))
	for _, l := range leads {
		rows = append(rows, []any{l.ID, dateValue(l.Date), string(l.Source), l.StoreID, string(l.Status)})
	}
	return rows
}

func appointmentRows(appointments []domain.Appointment) [][]any {
	rows := make([][]any, 0, len(appointments))
	for _, a := range appointments {
		rows = append(rows, []any{a.ID, dateValue(a.Date), a.StoreID, a.LeadID, a.SalesRepID, string(a.Outcome)})
	}
	return rows
}

func saleRows(sales []domain.Sale) [][]any {
	rows := make([][]any, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []any{s.ID, dateValue(s.Date), s.StoreID, s.LeadID, s.SalesRepID, s.ProductID, s.Amount, s.Margin, s.DaysSinceLead})
	}
	return rows
}
