package charting

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetNotFound  = errors.New("dataset não encontrado")
	ErrInvalidKind      = errors.New("tipo de gráfico inválido")
	ErrInvalidPreset    = errors.New("preset de período inválido")
	ErrInvalidMetric    = errors.New("métrica inválida")
	ErrInvalidPartition = errors.New("partição inválida")
)

// ChartError é um erro com contexto adicional para gráficos
type ChartError struct {
	Err     error  // Erro base
	Dataset string // Dataset envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *ChartError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

func NewChartError(err error, dataset string, details string) *ChartError {
	return &ChartError{
		Err:     err,
		Dataset: dataset,
		Details: details,
	}
}
