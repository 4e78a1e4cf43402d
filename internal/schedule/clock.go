// Package schedule é o motor de disponibilidade da agenda: geração de
// slots, detecção de conflito e mesclagem de agenda entre barbeiros.
//
// Todo o cálculo acontece em minutos-do-dia (offset a partir da meia-noite),
// projetando tanto as strings "HH:MM" do expediente quanto os instantes dos
// agendamentos para o mesmo eixo. A projeção descarta a data: agendamentos
// que cruzam a meia-noite não são suportados.
//
// O pacote é puro: sem I/O, sem relógio ambiente, sem estado compartilhado.
// Qualquer decisão relativa a "agora" recebe o instante de referência como
// parâmetro de quem chama.
package schedule

import (
	"fmt"
	"time"
)

// MinutesPerDay limita o eixo de minutos-do-dia ([0, 1440)).
const MinutesPerDay = 24 * 60

// ParseClock converte "HH:MM" em minutos-do-dia.
// Retorna false para strings vazias ou fora do formato (exige zero à
// esquerda: "9:00" não vale, "09:00" sim).
func ParseClock(hm string) (int, bool) {
	if len(hm) != 5 {
		return 0, false
	}
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FormatClock converte minutos-do-dia de volta para "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// MinutesOfDay projeta um instante para minutos-do-dia usando o relógio de
// parede da própria localidade do instante. Projeção com perda: a data e o
// fuso são descartados.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
