package booking

import "time"

// MaxPerDay é a cota de bookings por usuário por dia-calendário, contada
// pelo timestamp de criação.
const MaxPerDay = 2

// DayRange devolve os limites do dia-calendário local de um instante:
// 00:00:00.000 até 23:59:59.999...
func DayRange(at time.Time) (start, end time.Time) {
	start = time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	end = start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
