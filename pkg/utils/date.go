package utils

import (
	"errors"
	"strings"
	"time"
)

// DateLayouts são os formatos aceitos para datas de vendas
var DateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
	"January 2 2006",
	"Jan 2 2006",
}

var ErrEmptyDate = errors.New("data vazia")

// ParseDate interpreta a data em qualquer um dos formatos aceitos
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	var lastErr error
	for _, layout := range DateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
