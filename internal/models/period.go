package models

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used in report payloads.
const DateLayout = "2006-01-02"

// MaxRangeDays bounds custom report ranges; accessors do not paginate.
const MaxRangeDays = 31

var ErrInvalidPeriod = errors.New("invalid report period")

// Period is an inclusive range of calendar days, stored as UTC midnights.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the first and last day of the given calendar month.
func MonthPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", ErrInvalidPeriod, year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, -1)}, nil
}

// RangePeriod builds a custom period such as a week. Both bounds are truncated to their date.
func RangePeriod(start, end time.Time) (Period, error) {
	p := Period{Start: truncateDate(start), End: truncateDate(end)}
	if p.End.Before(p.Start) {
		return Period{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidPeriod,
			p.End.Format(DateLayout), p.Start.Format(DateLayout))
	}
	if p.Days() > MaxRangeDays {
		return Period{}, fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidPeriod, p.Days(), MaxRangeDays)
	}
	return p, nil
}

// PreviousMonth resolves the calendar month before the one containing Start,
// independently of this period's length.
func (p Period) PreviousMonth() Period {
	first := time.Date(p.Start.Year(), p.Start.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: first, End: first.AddDate(0, 1, -1)}
}

// PreviousRange returns the equal-length range ending the day before Start.
func (p Period) PreviousRange() Period {
	days := p.Days()
	return Period{
		Start: p.Start.AddDate(0, 0, -days),
		End:   p.Start.AddDate(0, 0, -1),
	}
}

// Days counts the calendar days in the period, both ends included.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

func (p Period) StartDate() string {
	return p.Start.Format(DateLayout)
}

func (p Period) EndDate() string {
	return p.End.Format(DateLayout)
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
