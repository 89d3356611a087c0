package memory

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gamjatokki/internal/core"
)

// Store is an in-memory entry source, used when no database is configured.
type Store struct {
	mu    sync.Mutex
	items []core.Entry
}

func New(entries []core.Entry) *Store {
	s := &Store{}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

// NewFromFile seeds the store from a pipe-separated file
// ("2025-03-02|장보기|54000|expense|rabbit"). Missing or empty files fall back
// to a small demo month around now.
func NewFromFile(path string, now time.Time) *Store {
	return New(SeedEntries(path, now))
}

// SeedEntries reads the seed file at path, falling back to DemoEntries.
func SeedEntries(path string, now time.Time) []core.Entry {
	if entries := readEntries(path); len(entries) > 0 {
		return entries
	}
	return DemoEntries(now)
}

// Entries returns a copy of every stored entry in insertion order.
func (s *Store) Entries() []core.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Entry(nil), s.items...)
}

// ListEntries implements ledger.EntryLister.
func (s *Store) ListEntries(_ context.Context, year, month int) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Entry
	for _, e := range s.items {
		if e.Date.Year() == year && int(e.Date.Month()) == month {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date.Time) })
	return out, nil
}

func (s *Store) add(e core.Entry) {
	if e.Validate() != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = int64(len(s.items) + 1)
	s.items = append(s.items, e)
}

// DemoEntries returns a plausible month of entries for the month containing now.
func DemoEntries(now time.Time) []core.Entry {
	y, m := now.Year(), int(now.Month())
	d := func(day int) core.Date { return core.NewDate(y, m, day) }
	return []core.Entry{
		{Date: d(1), Description: "관리비", Amount: 185000, Kind: core.Expense, Owner: core.OwnerPotato},
		{Date: d(3), Description: "장보기", Amount: 54300, Kind: core.Expense, Owner: core.OwnerRabbit},
		{Date: d(7), Description: "데이트 저녁", Amount: 68000, Kind: core.Expense, Owner: core.OwnerPotato},
		{Date: d(10), Description: "영희 월급", Amount: 2850000, Kind: core.Income, Owner: core.OwnerRabbit},
		{Date: d(12), Description: "교통카드 충전", Amount: 50000, Kind: core.Expense, Owner: core.OwnerRabbit},
		{Date: d(25), Description: "철수 월급", Amount: 3100000, Kind: core.Income, Owner: core.OwnerPotato},
	}
}

func readEntries(path string) []core.Entry {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()
	var out []core.Entry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if e, ok := parseEntry(line); ok {
			out = append(out, e)
		}
	}
	return out
}

func parseEntry(line string) (core.Entry, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return core.Entry{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	t, err := time.Parse("2006-01-02", parts[0])
	if err != nil {
		return core.Entry{}, false
	}
	amount, err := core.ParseWon(parts[2])
	if err != nil {
		return core.Entry{}, false
	}
	e := core.Entry{
		Date:        core.Date{Time: t},
		Description: parts[1],
		Amount:      amount,
		Kind:        core.Kind(parts[3]),
		Owner:       core.Owner(parts[4]),
	}
	return e, e.Validate() == nil
}
