package ingesting

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var validate = validator.New()

// Normalize valida o dataset bruto e converte as vendas para o modelo interno.
// Qualquer venda com data inválida rejeita o dataset inteiro.
func Normalize(name string, raw *domain.RawDataset) (*domain.Dataset, error) {
	if raw == nil {
		return nil, ErrNilDatasetValue
	}

	records := make([]domain.SalesRecord, 0, len(raw.Customers))
	for i, rawRecord := range raw.Customers {
		record, err := normalizeRecord(i, rawRecord)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	dataset := &domain.Dataset{
		Name:    name,
		Records: records,
		Raw:     raw,
	}

	if raw.AverageTicketSizes != nil {
		averages := *raw.AverageTicketSizes
		dataset.AverageTicketSizes = &averages
	}

	return dataset, nil
}

func normalizeRecord(index int, raw domain.RawSalesRecord) (domain.SalesRecord, error) {
	if err := validate.Struct(raw); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && validationErrors[0].Field() == "Date" {
			return domain.SalesRecord{}, &InvalidDateError{Index: index, Value: raw.Date, Err: utils.ErrEmptyDate}
		}
		return domain.SalesRecord{}, &RecordError{Index: index, Err: err}
	}

	date, err := utils.ParseDate(raw.Date)
	if err != nil {
		return domain.SalesRecord{}, &InvalidDateError{Index: index, Value: raw.Date, Err: err}
	}

	amount, ok := raw.ResolveAmount()
	if !ok {
		return domain.SalesRecord{}, &RecordError{Index: index, Err: ErrMissingAmount}
	}

	return domain.SalesRecord{
		Date:            raw.Date,
		Time:            date,
		Amount:          amount,
		IsLoyaltyMember: raw.ResolveLoyalty(),
		IsInStore:       raw.ResolveInStore(),
	}, nil
}
