package schedule

import "sort"

// MergeAvailability une a disponibilidade de vários barbeiros em uma única
// linha do tempo de horários distintos, ordenada por início.
//
// Cada barbeiro contribui com seus slots livres (expediente menos pausa menos
// ocupados); horários oferecidos por mais de um barbeiro aparecem uma vez só.
// A linha do tempo responde "algum barbeiro está livre neste horário", não
// "quantos" — é o conjunto de linhas da grade em que as colunas são os
// barbeiros.
func MergeAvailability(barbers []BarberAvailability, slotMin int) []TimeSlot {
	seen := make(map[int]TimeSlot)

	for _, b := range barbers {
		for _, s := range AvailableSlots(b, slotMin) {
			if _, ok := seen[s.StartMin]; ok {
				continue
			}
			seen[s.StartMin] = s
		}
	}

	merged := make([]TimeSlot, 0, len(seen))
	for _, s := range seen {
		merged = append(merged, s)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].StartMin < merged[j].StartMin
	})

	return merged
}
