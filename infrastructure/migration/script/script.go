package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/datasource"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const insertBatchSize = 500

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sales_records (
		id TEXT PRIMARY KEY,
		dataset TEXT NOT NULL,
		position INTEGER NOT NULL,
		sale_date TEXT NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		is_loyalty_member BOOLEAN NOT NULL DEFAULT FALSE,
		is_in_store BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE (dataset, position)
	)`,
	`CREATE TABLE IF NOT EXISTS average_ticket_sizes (
		dataset TEXT PRIMARY KEY,
		all_customers NUMERIC(12, 2) NOT NULL,
		loyalty NUMERIC(12, 2) NOT NULL
	)`,
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de seed de datasets...")
}

// datasetName usa o nome do arquivo sem extensão (AreaChart.json -> AreaChart)
func datasetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func createTables(ctx context.Context, tx *sql.Tx) error {
	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar tabelas: %w", err)
		}
	}
	return nil
}

func deleteDataset(ctx context.Context, tx *sql.Tx, name string) error {
	for _, table := range []string{"sales_records", "average_ticket_sizes"} {
		query, args, err := squirrel.
			Delete(table).
			Where(squirrel.Eq{"dataset": name}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao limpar %s: %w", table, err)
		}
	}
	return nil
}

// buildInsertRecords monta um INSERT para um lote de vendas a partir de offset
func buildInsertRecords(name string, records []domain.SalesRecord, offset int) (string, []any, error) {
	builder := squirrel.
		Insert("sales_records").
		Columns("id", "dataset", "position", "sale_date", "amount", "is_loyalty_member", "is_in_store").
		PlaceholderFormat(squirrel.Dollar)

	for i, record := range records {
		builder = builder.Values(
			utils.GenerateID(),
			name,
			offset+i,
			record.Date,
			record.Amount,
			record.IsLoyaltyMember,
			record.IsInStore,
		)
	}

	return builder.ToSql()
}

func buildInsertAverages(name string, averages domain.AverageTicketSizes) (string, []any, error) {
	return squirrel.
		Insert("average_ticket_sizes").
		Columns("dataset", "all_customers", "loyalty").
		Values(name, averages.AllCustomersAverageTicketSize, averages.LoyaltyAverageTicketSize).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func insertDataset(ctx context.Context, tx *sql.Tx, dataset *domain.Dataset) error {
	logrus.Infof("Inserindo %d vendas do dataset %s...", len(dataset.Records), dataset.Name)
	startTime := time.Now()

	for start := 0; start < len(dataset.Records); start += insertBatchSize {
		end := min(start+insertBatchSize, len(dataset.Records))

		query, args, err := buildInsertRecords(dataset.Name, dataset.Records[start:end], start)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir vendas [%d-%d]: %w", start, end, err)
		}

		logrus.Infof("Progresso: %d/%d vendas inseridas", end, len(dataset.Records))
	}

	if dataset.AverageTicketSizes != nil {
		query, args, err := buildInsertAverages(dataset.Name, *dataset.AverageTicketSizes)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir médias de ticket: %w", err)
		}
	}

	logrus.Infof("Dataset %s inserido em %v", dataset.Name, time.Since(startTime))
	return nil
}

func seedFile(ctx context.Context, conn *postgres.Connection, path string) error {
	raw, err := datasource.ReadFile(path)
	if err != nil {
		return err
	}

	dataset, err := ingesting.Normalize(datasetName(path), raw)
	if err != nil {
		return err
	}

	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createTables(ctx, tx); err != nil {
			return err
		}
		if err := deleteDataset(ctx, tx, dataset.Name); err != nil {
			return err
		}
		return insertDataset(ctx, tx, dataset)
	})
}

func main() {
	setupLogger()

	files := os.Args[1:]
	if len(files) == 0 {
		logrus.Fatal("Uso: script <AreaChart.json> [BarChart.yaml ...]")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar no banco: %v", err)
	}
	defer conn.Close()

	failed := 0
	for _, file := range files {
		if err := seedFile(ctx, conn, file); err != nil {
			logrus.WithError(err).Errorf("ERRO ao importar %s", file)
			failed++
			continue
		}
	}

	logrus.Infof("Seed concluído. Arquivos: %d, Erros: %d", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
