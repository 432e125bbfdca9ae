package domain

import "time"

const (
	// Séries exibidas nos gráficos de linha e pizza
	AllCustomersLabel     = "All Customers"
	LoyaltyCustomersLabel = "Loyalty Customers"

	// Séries exibidas no gráfico de barras
	InStoreLabel = "In-Store"
	OnlineLabel  = "Online"
)

// SalesRecord representa uma venda já validada e normalizada
type SalesRecord struct {
	Date            string    `json:"date"` // Chave de agrupamento (comparação exata de string)
	Time            time.Time `json:"-"`    // Data já interpretada, usada nos filtros de janela
	Amount          float64   `json:"amount"`
	IsLoyaltyMember bool      `json:"is_loyalty_member"`
	IsInStore       bool      `json:"is_in_store"`
}

// RawSalesRecord é o formato de uma venda como chega no dataset.
// O valor da venda aparece com nomes diferentes dependendo do gráfico de origem.
type RawSalesRecord struct {
	Date            string   `json:"date" yaml:"date" validate:"required"`
	TicketSize      *float64 `json:"ticketSize,omitempty" yaml:"ticketSize,omitempty"`
	TicketPrice     *float64 `json:"ticketPrice,omitempty" yaml:"ticketPrice,omitempty"`
	Price           *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Amount          *float64 `json:"amount,omitempty" yaml:"amount,omitempty"`
	HasLoyalty      *bool    `json:"hasLoyalty,omitempty" yaml:"hasLoyalty,omitempty"`
	IsLoyaltyMember *bool    `json:"isLoyaltyMember,omitempty" yaml:"isLoyaltyMember,omitempty"`
	InStore         *bool    `json:"inStore,omitempty" yaml:"inStore,omitempty"`
	IsInStore       *bool    `json:"isInStore,omitempty" yaml:"isInStore,omitempty"`
}

// ResolveAmount retorna o primeiro campo de valor preenchido
func (r RawSalesRecord) ResolveAmount() (float64, bool) {
	for _, v := range []*float64{r.TicketSize, r.TicketPrice, r.Price, r.Amount} {
		if v != nil {
			return *v, true
		}
	}
	return 0, false
}

func (r RawSalesRecord) ResolveLoyalty() bool {
	return firstTrue(r.HasLoyalty, r.IsLoyaltyMember)
}

func (r RawSalesRecord) ResolveInStore() bool {
	return firstTrue(r.InStore, r.IsInStore)
}

func firstTrue(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}

// Partition separa as vendas entre o conjunto completo e um subconjunto marcado
type Partition string

const (
	PartitionLoyalty Partition = "loyalty"
	PartitionInStore Partition = "in-store"
)

// Matches indica se a venda pertence ao subconjunto da partição
func (p Partition) Matches(record SalesRecord) bool {
	switch p {
	case PartitionInStore:
		return record.IsInStore
	default:
		return record.IsLoyaltyMember
	}
}

func (p Partition) IsValid() bool {
	return p == PartitionLoyalty || p == PartitionInStore
}
