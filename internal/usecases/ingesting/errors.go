package ingesting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAmount   = errors.New("venda sem valor")
	ErrSourceFetch     = errors.New("erro ao buscar dataset na origem")
	ErrInvalidDataset  = errors.New("dataset inválido")
	ErrNilDatasetValue = errors.New("origem retornou dataset nulo")
)

// InvalidDateError indica uma venda cuja data não pôde ser interpretada
type InvalidDateError struct {
	Index int
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("data inválida na venda %d: %q", e.Index, e.Value)
}

func (e *InvalidDateError) Unwrap() error {
	return e.Err
}

// RecordError indica uma venda rejeitada pela validação
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("venda %d inválida: %s", e.Index, e.Err.Error())
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
