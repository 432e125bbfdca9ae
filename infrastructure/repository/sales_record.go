package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesRecordsTable       = "sales_records sr"
	averageTicketSizesTable = "average_ticket_sizes ats"
)

var ErrDatasetNotInDatabase = errors.New("dataset não encontrado no banco")

// SalesRecordRepository lê datasets gravados no Postgres pelo script de seed
type SalesRecordRepository interface {
	Fetch(ctx context.Context, name string) (*domain.RawDataset, error)
	ListDatasets(ctx context.Context) ([]string, error)
}

type salesRecordRepository struct {
	conn postgres.Queryer
}

func NewSalesRecordRepository(conn postgres.Queryer) SalesRecordRepository {
	return &salesRecordRepository{
		conn: conn,
	}
}

func buildSalesRecordsQuery(name string) (string, []any, error) {
	return squirrel.
		Select("sr.sale_date, sr.amount, sr.is_loyalty_member, sr.is_in_store").
		From(salesRecordsTable).
		Where(squirrel.Eq{"sr.dataset": name}).
		OrderBy("sr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildAverageTicketSizesQuery(name string) (string, []any, error) {
	return squirrel.
		Select("ats.all_customers, ats.loyalty").
		From(averageTicketSizesTable).
		Where(squirrel.Eq{"ats.dataset": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListDatasetsQuery() (string, []any, error) {
	return squirrel.
		Select("DISTINCT sr.dataset").
		From(salesRecordsTable).
		OrderBy("sr.dataset").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// Fetch monta o dataset bruto na mesma ordem em que foi gravado
func (r *salesRecordRepository) Fetch(ctx context.Context, name string) (*domain.RawDataset, error) {
	query, args, err := buildSalesRecordsQuery(name)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError("erro ao buscar vendas", err)
	}
	defer rows.Close()

	customers := make([]domain.RawSalesRecord, 0)
	for rows.Next() {
		var (
			date    string
			amount  float64
			loyalty bool
			inStore bool
		)
		if err := rows.Scan(&date, &amount, &loyalty, &inStore); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		customers = append(customers, domain.RawSalesRecord{
			Date:       date,
			Amount:     &amount,
			HasLoyalty: &loyalty,
			InStore:    &inStore,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	averages, err := r.fetchAverageTicketSizes(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(customers) == 0 && averages == nil {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotInDatabase, name)
	}

	return &domain.RawDataset{
		Customers:          customers,
		AverageTicketSizes: averages,
	}, nil
}

func (r *salesRecordRepository) fetchAverageTicketSizes(ctx context.Context, name string) (*domain.AverageTicketSizes, error) {
	query, args, err := buildAverageTicketSizesQuery(name)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	averages := &domain.AverageTicketSizes{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&averages.AllCustomersAverageTicketSize,
		&averages.LoyaltyAverageTicketSize,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapPQError("erro ao buscar médias de ticket", err)
	}

	return averages, nil
}

// ListDatasets devolve os datasets gravados, em ordem alfabética
func (r *salesRecordRepository) ListDatasets(ctx context.Context) ([]string, error) {
	query, args, err := buildListDatasetsQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError("erro ao listar datasets", err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("erro ao escanear dataset: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func wrapPQError(message string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s (%s): %w", message, pqErr.Code.Name(), err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
