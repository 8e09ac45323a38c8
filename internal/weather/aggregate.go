package weather

import (
	"fmt"
	"math"
	"strconv"
)

// BuildResponse reshapes an upstream forecast into the dashboard view.
// All three periods of today share today's daily category.
func BuildResponse(f UpstreamForecast) (WeatherResponse, error) {
	n := min(len(f.DailyMin), len(f.DailyMax), len(f.DailyCodes))
	if n < WeekDays {
		return WeatherResponse{}, fmt.Errorf("%w (got %d)", ErrInsufficientDays, n)
	}

	states := ClassifyAll(f.DailyCodes[:WeekDays])

	week := make(Week, WeekDays)
	for i := 0; i < WeekDays; i++ {
		week[fmt.Sprintf("day_%d", i+1)] = DaySummary{
			Min:   f.DailyMin[i],
			Max:   f.DailyMax[i],
			State: states[i],
		}
	}

	todayMin, todayMax, today := f.DailyMin[0], f.DailyMax[0], states[0]

	return WeatherResponse{
		Main: PeriodSummary{
			Temperature: f.CurrentTemperature,
			State:       Classify(f.CurrentCode),
		},
		Day: DayPeriods{
			Morning: PeriodSummary{Temperature: todayMin, State: today},
			Day:     PeriodSummary{Temperature: roundTo((todayMin+todayMax)/2, 1), State: today},
			Evening: PeriodSummary{Temperature: todayMax, State: today},
		},
		Week: week,
	}, nil
}

// roundTo rounds v to the given number of decimal places. Ties are decided on
// the exact binary value and go to the even digit, so 2.25 -> 2.2 and 12.75 -> 12.8.
func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
