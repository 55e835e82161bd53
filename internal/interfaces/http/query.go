package http

import "time"

// dateLayout formato aceito nos filtros de período via query string.
const dateLayout = "2006-01-02"

// parseDate interpreta YYYY-MM-DD; string vazia vira nil (sem filtro).
func parseDate(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// parseDateRange interpreta o par from/to. "to" cobre o dia inteiro:
// avança para o início do dia seguinte antes de filtrar.
func parseDateRange(fromStr, toStr string) (from, to *time.Time, ok bool) {
	from, ok = parseDate(fromStr)
	if !ok {
		return nil, nil, false
	}
	to, ok = parseDate(toStr)
	if !ok {
		return nil, nil, false
	}
	if to != nil {
		end := to.AddDate(0, 0, 1)
		to = &end
	}
	return from, to, true
}
