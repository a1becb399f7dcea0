package grocery

import (
	"context"
	"sync"
)

type fakeSource struct {
	entries   []RotationEntrySnapshot
	groups    []HouseholdGroupSnapshot
	entryErr  error
	groupErr  error
	lastWeeks []int
}

func (f *fakeSource) ListRotationEntries(ctx context.Context, userID int64, weeks []int) ([]RotationEntrySnapshot, error) {
	f.lastWeeks = weeks
	if f.entryErr != nil {
		return nil, f.entryErr
	}
	allowed := make(map[int]bool, len(weeks))
	for _, w := range weeks {
		allowed[w] = true
	}
	var result []RotationEntrySnapshot
	for _, entry := range f.entries {
		if allowed[entry.WeekNumber] {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeSource) ListEligibleHouseholdGroups(ctx context.Context, userID int64) ([]HouseholdGroupSnapshot, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	return f.groups, nil
}

type fakeCheckStore struct {
	mu      sync.Mutex
	checked map[string]bool
	calls   int
	err     error
}

func newFakeCheckStore() *fakeCheckStore {
	return &fakeCheckStore{checked: map[string]bool{}}
}

func (f *fakeCheckStore) GetCheckedKeys(ctx context.Context, userID int64, keys []string) (map[string]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	result := map[string]bool{}
	for _, key := range keys {
		if f.checked[key] {
			result[key] = true
		}
	}
	return result, nil
}

func (f *fakeCheckStore) UpsertCheck(ctx context.Context, userID int64, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.checked[key] = true
	return nil
}

func (f *fakeCheckStore) DeleteCheck(ctx context.Context, userID int64, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.checked, key)
	return nil
}

func (f *fakeCheckStore) DeleteAllChecks(ctx context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.checked = map[string]bool{}
	return nil
}

func line(name, category string, value *float64, unit string) LineItem {
	return LineItem{Name: name, Category: category, QuantityValue: value, QuantityUnit: unit}
}

func entry(id int64, week int, servings *int, meal *MealSnapshot) RotationEntrySnapshot {
	return RotationEntrySnapshot{ID: id, WeekNumber: week, Servings: servings, Meal: meal}
}
