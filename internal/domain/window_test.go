package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateWindow(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		custom   string
		want     DateWindow
		wantErr  bool
	}{
		{name: "vazio é todo o período", want: AllTime()},
		{name: "todo o período", selector: "-1", want: AllTime()},
		{name: "preset", selector: "3", want: LastMonths(3)},
		{name: "preset zero", selector: "0", want: LastMonths(0)},
		{name: "customizado", selector: "-2", custom: "5", want: CustomMonths(5)},
		{name: "customizado sem valor", selector: "-2", custom: "abc", want: CustomMonths(0)},
		{name: "seletor desconhecido", selector: "-3", wantErr: true},
		{name: "seletor não numérico", selector: "tres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateWindow(tt.selector, tt.custom)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateWindowMonths(t *testing.T) {
	months, ok := LastMonths(6).Months()
	assert.True(t, ok)
	assert.Equal(t, 6, months)

	_, ok = AllTime().Months()
	assert.False(t, ok)

	_, ok = CustomMonths(0).Months()
	assert.False(t, ok)

	months, ok = CustomMonths(2).Months()
	assert.True(t, ok)
	assert.Equal(t, 2, months)
}

func TestDateWindowString(t *testing.T) {
	assert.Equal(t, "all-time", AllTime().String())
	assert.Equal(t, "custom:4", CustomMonths(4).String())
	assert.Equal(t, "last:12", LastMonths(12).String())
}
