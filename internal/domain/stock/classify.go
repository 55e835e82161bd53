// Package stock contém a regra de classificação de saúde do estoque.
// É a única implementação: dashboards, listagens e relatórios importam
// daqui em vez de recalcular por conta própria.
package stock

// Status de saúde do estoque derivado de disponível vs. mínimo.
type Status string

const (
	StatusCritical  Status = "critico"
	StatusLow       Status = "baixo"
	StatusAttention Status = "atencao"
	StatusNormal    Status = "normal"
)

// Classify deriva o status a partir do disponível e do mínimo.
//
//	critico  quando disponível == 0
//	baixo    quando 0 < disponível <= mínimo
//	atencao  quando mínimo < disponível <= mínimo * 1,5
//	normal   caso contrário
//
// A comparação com mínimo*1,5 usa 2*disponível <= 3*mínimo para ficar
// exata em inteiros.
func Classify(available, minimum int) Status {
	switch {
	case available == 0:
		return StatusCritical
	case available <= minimum:
		return StatusLow
	case 2*available <= 3*minimum:
		return StatusAttention
	default:
		return StatusNormal
	}
}
