package entity

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ShowingKey identifies one screening. Seats are unique per key.
type ShowingKey struct {
	Branch   string
	Hall     string
	ShowDate time.Time
	ShowTime string // HH:MM
}

func (k ShowingKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", k.Branch, k.Hall, k.ShowDate.Format(DateLayout), k.ShowTime)
}

// ParseShowDate accepts YYYY-MM-DD.
func ParseShowDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// NormalizeShowTime accepts HH:MM or HH:MM:SS and returns HH:MM.
func NormalizeShowTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(TimeLayout), nil
		}
	}
	return "", fmt.Errorf("invalid show time %q", value)
}

// SeatRef is a seat position within a hall, e.g. row "A" number 1.
type SeatRef struct {
	Row    string
	Number int
}

func NewSeatRef(row string, number int) SeatRef {
	return SeatRef{Row: strings.ToUpper(strings.TrimSpace(row)), Number: number}
}

func (s SeatRef) String() string {
	return s.Row + strconv.Itoa(s.Number)
}

func compareSeats(a, b SeatRef) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Number, b.Number)
}

// SeatSet is an unordered set of seats.
type SeatSet map[SeatRef]struct{}

func NewSeatSet(seats ...SeatRef) SeatSet {
	set := make(SeatSet, len(seats))
	for _, seat := range seats {
		set.Add(seat)
	}
	return set
}

func (s SeatSet) Add(seat SeatRef) {
	s[seat] = struct{}{}
}

func (s SeatSet) Contains(seat SeatRef) bool {
	_, ok := s[seat]
	return ok
}

// Conflicts returns the requested seats already present in s, sorted.
func (s SeatSet) Conflicts(requested []SeatRef) []SeatRef {
	var taken []SeatRef
	seen := make(SeatSet, len(requested))
	for _, seat := range requested {
		if s.Contains(seat) && !seen.Contains(seat) {
			taken = append(taken, seat)
		}
		seen.Add(seat)
	}
	slices.SortFunc(taken, compareSeats)
	return taken
}

// Sorted returns the seats ordered by row then number.
func (s SeatSet) Sorted() []SeatRef {
	seats := make([]SeatRef, 0, len(s))
	for seat := range s {
		seats = append(seats, seat)
	}
	slices.SortFunc(seats, compareSeats)
	return seats
}

// DuplicateSeats returns seats listed more than once, sorted.
func DuplicateSeats(seats []SeatRef) []SeatRef {
	seen := make(SeatSet, len(seats))
	dupes := make(SeatSet)
	for _, seat := range seats {
		if seen.Contains(seat) {
			dupes.Add(seat)
		}
		seen.Add(seat)
	}
	return dupes.Sorted()
}

// SeatLabels renders seats as A1, A2, ...
func SeatLabels(seats []SeatRef) []string {
	labels := make([]string, len(seats))
	for i, seat := range seats {
		labels[i] = seat.String()
	}
	return labels
}
