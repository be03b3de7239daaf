package services

import (
	"context"
	"sync"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

type fakeSearchStore struct {
	mu       sync.Mutex
	pages    map[int64][]models.Record
	total    int64
	seen     []models.FilterCriteria
	failIDs  map[int64]error
	updated  []int64
	affected int64
	err      error
}

func (f *fakeSearchStore) MasterSearch(_ context.Context, c models.FilterCriteria) ([]models.Record, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, c)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.pages[c.Page], f.total, nil
}

func (f *fakeSearchStore) Approve(context.Context, int64) (int64, error) {
	return f.affected, f.err
}

func (f *fakeSearchStore) UpdateSelectedUser(_ context.Context, u models.SelectedUserUpdate) error {
	if err, ok := f.failIDs[u.RegID.Value]; ok {
		return err
	}
	f.mu.Lock()
	f.updated = append(f.updated, u.RegID.Value)
	f.mu.Unlock()
	return nil
}

func (f *fakeSearchStore) SewaLocations(context.Context) ([]models.Record, error) {
	return []models.Record{models.NewRecord([]string{"sewa_location_id", "SEWA_LOCATION_NAME"}, []any{int64(1), "Delhi"})}, f.err
}

func rec(kv ...any) models.Record {
	cols := make([]string, 0, len(kv)/2)
	vals := make([]any, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		cols = append(cols, kv[i].(string))
		vals = append(vals, kv[i+1])
	}
	return models.NewRecord(cols, vals)
}
