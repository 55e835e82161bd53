package stock_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epicontrol/epi-api/internal/domain/stock"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		available int
		minimum   int
		want      stock.Status
	}{
		{0, 0, stock.StatusCritical},
		{0, 10, stock.StatusCritical},
		{1, 0, stock.StatusNormal},
		{1, 10, stock.StatusLow},
		{5, 5, stock.StatusLow},
		{10, 10, stock.StatusLow},
		{6, 5, stock.StatusAttention},
		{7, 5, stock.StatusAttention}, // 7 <= 7.5
		{8, 5, stock.StatusNormal},
		{11, 10, stock.StatusAttention},
		{15, 10, stock.StatusAttention}, // fronteira exata: 15 == 10 * 1,5
		{16, 10, stock.StatusNormal},
		{100, 10, stock.StatusNormal},
		{3, 2, stock.StatusAttention}, // fronteira: 3 == 2 * 1,5
		{4, 2, stock.StatusNormal},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%d", tc.available, tc.minimum), func(t *testing.T) {
			assert.Equal(t, tc.want, stock.Classify(tc.available, tc.minimum))
		})
	}
}

// O status deriva sempre do par (disponível, mínimo) corrente: a mesma
// função responde para listagens, painel e alertas.
func TestClassify_TransicoesAposMovimentacao(t *testing.T) {
	min := 5
	assert.Equal(t, stock.StatusNormal, stock.Classify(10, min))
	// Retirada de 6 unidades: 10 -> 4.
	assert.Equal(t, stock.StatusLow, stock.Classify(4, min))
	// Devolução de 2 unidades: 4 -> 6.
	assert.Equal(t, stock.StatusAttention, stock.Classify(6, min))
}
