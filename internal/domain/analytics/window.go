package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/PavaniTiago/nps-feedback-api/internal/domain/entities"
	"github.com/PavaniTiago/nps-feedback-api/internal/utils"
)

const dateLayout = "2006-01-02"

// ErrInvalidRange indica um filtro de datas mal formado
var ErrInvalidRange = errors.New("período inválido")

// Range é um filtro de dias civis, com os dois extremos inclusivos
type Range struct {
	Start time.Time
	End   time.Time
}

// Window é um intervalo semiaberto [From, To). O zero value não filtra nada.
type Window struct {
	From time.Time
	To   time.Time
}

// ParseRange interpreta dataInicio/dataFim (YYYY-MM-DD) no fuso do serviço.
// Sem nenhuma das duas datas retorna nil; apenas uma delas é erro.
func ParseRange(start, end string, loc *time.Location) (*Range, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: informe dataInicio e dataFim juntos", ErrInvalidRange)
	}
	s, err := time.ParseInLocation(dateLayout, start, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: dataInicio %q", ErrInvalidRange, start)
	}
	e, err := time.ParseInLocation(dateLayout, end, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: dataFim %q", ErrInvalidRange, end)
	}
	if s.After(e) {
		return nil, fmt.Errorf("%w: dataInicio posterior a dataFim", ErrInvalidRange)
	}
	return &Range{Start: s, End: e}, nil
}

// Window converte o filtro em [início 00:00, fim+1 dia 00:00)
func (r *Range) Window(loc *time.Location) Window {
	if r == nil {
		return Window{}
	}
	return Window{
		From: utils.StartOfDay(r.Start, loc),
		To:   utils.StartOfDay(r.End, loc).AddDate(0, 0, 1),
	}
}

// Filter ecoa o filtro aplicado na resposta do painel
func (r *Range) Filter() *entities.DashboardFilter {
	if r == nil {
		return nil
	}
	return &entities.DashboardFilter{
		Start: r.Start.Format(dateLayout),
		End:   r.End.Format(dateLayout),
	}
}

// TimelineWindow usa o filtro quando houver; sem filtro, a janela móvel dos
// últimos days dias contados a partir de now, sem limite superior
func TimelineWindow(r *Range, now time.Time, days int, loc *time.Location) Window {
	if r != nil {
		return r.Window(loc)
	}
	return Window{From: now.In(loc).AddDate(0, 0, -days)}
}

// Contains verifica se t pertence à janela
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !t.Before(w.To) {
		return false
	}
	return true
}
