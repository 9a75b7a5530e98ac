package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayOf normaliza a data para meia-noite em UTC, mantendo o dia de calendário
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInclusive conta os dias do intervalo incluindo as duas pontas.
// Retorna 0 para intervalo invertido.
func DaysInclusive(startDate, endDate time.Time) int {
	start := DayOf(startDate)
	end := DayOf(endDate)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// GenerateDateRange gera a lista de dias entre as datas, inclusive
func GenerateDateRange(startDate, endDate time.Time) []time.Time {
	currentDate := DayOf(startDate)
	endDateTime := DayOf(endDate)

	if currentDate.After(endDateTime) {
		return []time.Time{}
	}

	dates := make([]time.Time, 0, DaysInclusive(currentDate, endDateTime))
	for !currentDate.After(endDateTime) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return dates
}
