package datasource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Extensões procuradas, em ordem de prioridade
var Extensions = []string{".json", ".yaml", ".yml", ".xlsx"}

const averageTicketSizesSheet = "averageTicketSizes"

var ErrDatasetFileNotFound = errors.New("arquivo do dataset não encontrado")

// FileSource lê datasets de arquivos <dir>/<nome>.<ext>
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (f *FileSource) Fetch(ctx context.Context, name string) (*domain.RawDataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ext := range Extensions {
		path := filepath.Join(f.dir, name+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return ReadFile(path)
	}

	return nil, errors.Wrapf(ErrDatasetFileNotFound, "%s em %s", name, f.dir)
}

// ReadFile lê um dataset de acordo com a extensão do arquivo
func ReadFile(path string) (*domain.RawDataset, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".xlsx" {
		return readXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler arquivo do dataset")
	}

	var raw domain.RawDataset
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.Errorf("extensão de dataset não suportada: %s", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao interpretar %s", filepath.Base(path))
	}

	return &raw, nil
}

func readXLSX(path string) (*domain.RawDataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir planilha")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	// Valores crus: datas do Excel chegam como número serial, sem o formato de exibição
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler aba de vendas")
	}

	customers, err := parseCustomerRows(rows, usesDate1904(f))
	if err != nil {
		return nil, err
	}

	raw := &domain.RawDataset{Customers: customers}

	for _, sheet := range sheets[1:] {
		if sheet != averageTicketSizesSheet {
			continue
		}

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, errors.Wrap(err, "erro ao ler aba de médias")
		}

		raw.AverageTicketSizes, err = parseAverageRows(rows)
		if err != nil {
			return nil, err
		}
	}

	return raw, nil
}

func usesDate1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}

// dateCell converte o número serial de uma célula de data; texto passa intacto
func dateCell(value string, date1904 bool) string {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return value
	}

	parsed, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return value
	}
	return parsed.Format(time.DateOnly)
}

func parseCustomerRows(rows [][]string, date1904 bool) ([]domain.RawSalesRecord, error) {
	if len(rows) == 0 {
		return []domain.RawSalesRecord{}, nil
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		columns[strings.TrimSpace(cell)] = i
	}

	if _, ok := columns["date"]; !ok {
		return nil, errors.New("coluna date não encontrada na planilha")
	}

	customers := make([]domain.RawSalesRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		record := domain.RawSalesRecord{Date: dateCell(cell(row, columns, "date"), date1904)}

		for _, field := range []struct {
			column string
			target **float64
		}{
			{"ticketSize", &record.TicketSize},
			{"ticketPrice", &record.TicketPrice},
			{"price", &record.Price},
			{"amount", &record.Amount},
		} {
			value := cell(row, columns, field.column)
			if value == "" {
				continue
			}
			amount, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "valor inválido na linha %d", i+2)
			}
			*field.target = &amount
		}

		for _, field := range []struct {
			column string
			target **bool
		}{
			{"hasLoyalty", &record.HasLoyalty},
			{"isLoyaltyMember", &record.IsLoyaltyMember},
			{"inStore", &record.InStore},
			{"isInStore", &record.IsInStore},
		} {
			value := cell(row, columns, field.column)
			if value == "" {
				continue
			}
			flag, err := strconv.ParseBool(strings.ToLower(value))
			if err != nil {
				return nil, errors.Wrapf(err, "flag %s inválida na linha %d", field.column, i+2)
			}
			*field.target = &flag
		}

		customers = append(customers, record)
	}

	return customers, nil
}

func parseAverageRows(rows [][]string) (*domain.AverageTicketSizes, error) {
	if len(rows) < 2 {
		return nil, nil
	}

	columns := make(map[string]int)
	for i, cell := range rows[0] {
		columns[strings.TrimSpace(cell)] = i
	}

	averages := &domain.AverageTicketSizes{}
	for column, target := range map[string]*float64{
		"AllCustomersAverageTicketSize": &averages.AllCustomersAverageTicketSize,
		"LoyaltyAverageTicketSize":      &averages.LoyaltyAverageTicketSize,
	} {
		value := cell(rows[1], columns, column)
		if value == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("média %s inválida: %w", column, err)
		}
		*target = parsed
	}

	return averages, nil
}

func cell(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
