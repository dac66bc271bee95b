package utils

import "time"

// DefaultTimezone é o fuso usado quando nenhum outro é configurado
const DefaultTimezone = "America/Sao_Paulo"

// LoadLocation carrega o fuso informado (padrão São Paulo), caindo para UTC-3 fixo
// quando o banco de fusos do sistema não está disponível.
// Deve ser usada em todo o projeto para obter o fuso de referência das datas.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.FixedZone(DefaultTimezone, -3*60*60)
	}
	return loc
}

// StartOfDay normaliza t para 00:00:00 do mesmo dia civil em loc
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// FormatBR formata uma data como dd/mm/yyyy
func FormatBR(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}
