package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	WindowAllTime = -1
	WindowCustom  = -2
)

// DateWindow representa o período selecionado no gráfico.
// Selector >= 0 são os meses de um preset, -1 é todo o período e -2 usa CustomMonths.
type DateWindow struct {
	Selector     int `json:"selector"`
	CustomMonths int `json:"custom_months,omitempty"`
}

func AllTime() DateWindow {
	return DateWindow{Selector: WindowAllTime}
}

func LastMonths(n int) DateWindow {
	return DateWindow{Selector: n}
}

func CustomMonths(n int) DateWindow {
	return DateWindow{Selector: WindowCustom, CustomMonths: n}
}

func (w DateWindow) IsAllTime() bool {
	return w.Selector == WindowAllTime
}

func (w DateWindow) IsCustom() bool {
	return w.Selector == WindowCustom
}

// Months retorna a quantidade de meses da janela e se ela deve filtrar os registros
func (w DateWindow) Months() (int, bool) {
	switch {
	case w.Selector >= 0:
		return w.Selector, true
	case w.IsCustom() && w.CustomMonths > 0:
		return w.CustomMonths, true
	default:
		return 0, false
	}
}

func (w DateWindow) IsValid() bool {
	return w.Selector >= WindowCustom
}

func (w DateWindow) String() string {
	switch {
	case w.IsAllTime():
		return "all-time"
	case w.IsCustom():
		return fmt.Sprintf("custom:%d", w.CustomMonths)
	default:
		return fmt.Sprintf("last:%d", w.Selector)
	}
}

// ParseDateWindow interpreta o seletor e o valor customizado vindos da interface.
// Seletor vazio significa todo o período; valor customizado vazio ou inválido vira zero.
func ParseDateWindow(selector, custom string) (DateWindow, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return AllTime(), nil
	}

	value, err := strconv.Atoi(selector)
	if err != nil {
		return DateWindow{}, fmt.Errorf("seletor de período inválido: %q", selector)
	}

	window := DateWindow{Selector: value}
	if !window.IsValid() {
		return DateWindow{}, fmt.Errorf("seletor de período inválido: %d", value)
	}

	if window.IsCustom() {
		months, err := strconv.Atoi(strings.TrimSpace(custom))
		if err == nil {
			window.CustomMonths = months
		}
	}

	return window, nil
}
