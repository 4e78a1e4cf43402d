package schedule

// WorkingHours é o expediente de um barbeiro em um dia da semana, como
// configurado nas preferências da barbearia. Snapshot imutável por chamada:
// o motor nunca altera nem guarda referência.
type WorkingHours struct {
	Weekday    int    `json:"weekday"` // 0 = domingo ... 6 = sábado
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	Active     bool   `json:"active"`
}

// window é a forma normalizada do expediente em minutos-do-dia.
type window struct {
	open       int
	close      int
	breakStart int
	breakEnd   int
	hasBreak   bool
}

// window valida e normaliza o expediente. ok=false significa "dia fechado":
// inativo, campos ausentes ou configuração malformada (abertura >= fechamento,
// pausa pela metade, pausa fora do expediente). Dados parciais nunca derrubam
// um render: degradam para dia fechado.
func (wh WorkingHours) window() (window, bool) {
	if !wh.Active || wh.StartTime == "" || wh.EndTime == "" {
		return window{}, false
	}

	open, okOpen := ParseClock(wh.StartTime)
	close, okClose := ParseClock(wh.EndTime)
	if !okOpen || !okClose || open >= close {
		return window{}, false
	}

	w := window{open: open, close: close}

	if wh.BreakStart == "" && wh.BreakEnd == "" {
		return w, true
	}
	if wh.BreakStart == "" || wh.BreakEnd == "" {
		return window{}, false
	}

	bs, okBS := ParseClock(wh.BreakStart)
	be, okBE := ParseClock(wh.BreakEnd)
	if !okBS || !okBE || bs >= be || bs < open || be > close {
		return window{}, false
	}

	w.breakStart = bs
	w.breakEnd = be
	w.hasBreak = true
	return w, true
}

// Closed informa se o expediente resulta em dia fechado (inclui malformados).
func (wh WorkingHours) Closed() bool {
	_, ok := wh.window()
	return !ok
}
