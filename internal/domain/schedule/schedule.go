package schedule

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-saas/internal/httperr"
)

// ===============================
// Week schedule (per-shop)
// ===============================

// DayRule é a configuração de um dia da semana. Horários no formato
// "HH:MM" (24h, zero à esquerda). BreakStart/BreakEnd vazios = sem pausa.
type DayRule struct {
	Open       string `json:"open"`
	Close      string `json:"close"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`
}

// Week mapeia o nome do dia em minúsculas ("monday"..."sunday") para a regra.
type Week map[string]DayRule

var weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday",
	"thursday", "friday", "saturday",
}

// fallbackRule substitui configuração ausente ou corrompida.
// Política de leniência: nunca rejeitar por JSON ruim.
var fallbackRule = DayRule{Open: "09:00", Close: "18:00", Active: true}

// Default é a semana criada junto com a barbearia:
// seg-sex 09:00-18:00, sábado 09:00-14:00, domingo fechado.
func Default() Week {
	w := Week{}
	for _, day := range weekdays {
		switch day {
		case "sunday":
			w[day] = DayRule{Open: "09:00", Close: "18:00", Active: false}
		case "saturday":
			w[day] = DayRule{Open: "09:00", Close: "14:00", Active: true}
		default:
			w[day] = DayRule{Open: "09:00", Close: "18:00", Active: true}
		}
	}
	return w
}

// Parse desserializa a semana persistida. Erro aqui é tratado pelo
// validador com a regra padrão, nunca propagado para o cliente.
func Parse(raw string) (Week, error) {
	var w Week
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, err
	}
	return w, nil
}

func Serialize(w Week) (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ===============================
// Slot validation
// ===============================

// WeekdayName devolve o nome do dia em minúsculas para lookup na semana.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// minuteOfDay converte "HH:MM" para minutos desde meia-noite.
// Comparação numérica preserva a semântica de intervalo semiaberto
// da comparação lexicográfica de strings zero-padded.
func minuteOfDay(hm string) (int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ValidateSlot decide se o horário proposto é agendável segundo a semana
// persistida. Função pura: sem I/O, sem estado.
//
// Regras:
//   - JSON corrompido → regra padrão 09:00-18:00 ativa (leniência)
//   - dia ausente ou inativo → closed_this_day
//   - t < open ou t >= close → outside_business_hours
//   - break_start <= t < break_end → inside_break_window
func ValidateSlot(raw string, at time.Time) error {
	rule, ok := ruleFor(raw, WeekdayName(at))
	if !ok {
		return httperr.ErrBusiness("closed_this_day")
	}

	openMin, okO := minuteOfDay(rule.Open)
	closeMin, okC := minuteOfDay(rule.Close)
	if !okO || !okC {
		// regra com horário inválido cai na padrão
		openMin, _ = minuteOfDay(fallbackRule.Open)
		closeMin, _ = minuteOfDay(fallbackRule.Close)
		rule.BreakStart = ""
		rule.BreakEnd = ""
	}

	t := at.Hour()*60 + at.Minute()

	if t < openMin || t >= closeMin {
		return httperr.ErrBusiness("outside_business_hours")
	}

	if rule.BreakStart != "" && rule.BreakEnd != "" {
		bs, okS := minuteOfDay(rule.BreakStart)
		be, okE := minuteOfDay(rule.BreakEnd)
		if okS && okE && t >= bs && t < be {
			return httperr.ErrBusiness("inside_break_window")
		}
	}

	return nil
}

func ruleFor(raw, weekday string) (DayRule, bool) {
	week, err := Parse(raw)
	if err != nil || week == nil {
		return fallbackRule, true
	}

	rule, ok := week[weekday]
	if !ok || !rule.Active {
		return DayRule{}, false
	}
	return rule, true
}

// ValidateWeek checa uma semana recebida do painel antes de persistir:
// nomes de dia conhecidos e horários "HH:MM" válidos. Pausa vazia é ok.
func ValidateWeek(w Week) error {
	known := map[string]bool{}
	for _, d := range weekdays {
		known[d] = true
	}

	for day, rule := range w {
		if !known[day] {
			return httperr.ErrBusiness("unknown_weekday")
		}
		if _, ok := minuteOfDay(rule.Open); !ok {
			return httperr.ErrBusiness("invalid_time_format")
		}
		if _, ok := minuteOfDay(rule.Close); !ok {
			return httperr.ErrBusiness("invalid_time_format")
		}
		if rule.BreakStart != "" || rule.BreakEnd != "" {
			if _, ok := minuteOfDay(rule.BreakStart); !ok {
				return httperr.ErrBusiness("invalid_time_format")
			}
			if _, ok := minuteOfDay(rule.BreakEnd); !ok {
				return httperr.ErrBusiness("invalid_time_format")
			}
		}
	}
	return nil
}

// ParseDateTime aceita o formato local do agendamento ("2024-01-01T09:00"),
// com segundos opcionais. Sem fuso horário.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}
