package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

// SearchStore is the store side of the master search grid.
type SearchStore interface {
	MasterSearch(ctx context.Context, f models.FilterCriteria) ([]models.Record, int64, error)
	Approve(ctx context.Context, regID int64) (int64, error)
	UpdateSelectedUser(ctx context.Context, u models.SelectedUserUpdate) error
	SewaLocations(ctx context.Context) ([]models.Record, error)
}

// Tri-state text flags the store reports for these two fields.
const (
	FieldIsPresent = "isPresent"
	FieldPassEntry = "passEntry"
	flagYes        = "YES"
)

// DefaultExportPageSize is how many rows SearchAll asks for per store round trip.
const DefaultExportPageSize = 500

type SearchService struct {
	Repo           SearchStore
	RequestID      string
	Timeout        time.Duration
	ExportPageSize int64
	// MaxParallel caps concurrent writes in UpdateSelected; 0 means one goroutine per user.
	MaxParallel int
}

// Search runs one page of the master search and shapes it for the grid.
func (s SearchService) Search(ctx context.Context, f models.FilterCriteria) (models.SearchPage, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	raw, total, err := s.Repo.MasterSearch(ctx, f)
	if err != nil {
		utils.LogFailure(s.RequestID, "search", "master_search", err)
		return models.SearchPage{}, err
	}
	if f.Limit > 0 && int64(len(raw)) > f.Limit {
		raw = raw[:f.Limit]
	}

	records := FormatRecords(raw)
	ResortPage(records, f.SortBy, f.SortOrder)

	utils.LogEvent(s.RequestID, "search", "master_search",
		fmt.Sprintf("page=%d limit=%d returned=%d total=%d", f.Page, f.Limit, len(records), total))

	return models.SearchPage{
		Records:    records,
		Pagination: models.NewPagination(f.Page, f.Limit, int64(len(records)), total),
	}, nil
}

// SearchAll collects every record matching f by paging through the store, for export.
func (s SearchService) SearchAll(ctx context.Context, f models.FilterCriteria) ([]models.Record, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	size := s.ExportPageSize
	if size <= 0 {
		size = DefaultExportPageSize
	}

	var all []models.Record
	for page := int64(1); ; page++ {
		raw, total, err := s.Repo.MasterSearch(ctx, f.WithPage(page, size))
		if err != nil {
			utils.LogFailure(s.RequestID, "search", "export_collect", err, zap.Int64("page", page))
			return nil, err
		}
		all = append(all, FormatRecords(raw)...)
		if len(raw) == 0 {
			break
		}
		// A known total decides the end, since the store may cap pages below size.
		// Every page adds at least one record, so this is bounded by total.
		if total > 0 {
			if int64(len(all)) >= total {
				break
			}
			continue
		}
		if int64(len(raw)) < size {
			break
		}
	}
	ResortPage(all, f.SortBy, f.SortOrder)
	utils.LogEvent(s.RequestID, "search", "export_collect", fmt.Sprintf("rows=%d", len(all)))
	return all, nil
}

// Approve marks a registration approved.
func (s SearchService) Approve(ctx context.Context, regID int64) (models.ApproveResult, error) {
	if regID <= 0 {
		return models.ApproveResult{}, domain.ValidationError{Field: "regId", Msg: "must be a positive integer"}
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	affected, err := s.Repo.Approve(ctx, regID)
	if err != nil {
		utils.LogFailure(s.RequestID, "search", "approve", err, zap.Int64("reg_id", regID))
		return models.ApproveResult{}, err
	}
	if affected == 0 {
		return models.ApproveResult{}, domain.NotFoundError{Resource: "user", Msg: "User not found"}
	}
	utils.LogEvent(s.RequestID, "search", "approve", fmt.Sprintf("reg_id=%d affected=%d", regID, affected))
	return models.ApproveResult{RegID: regID, AffectedRows: affected}, nil
}

// UpdateSelected applies every row of a bulk edit concurrently. Rows are independent: a failed
// row never stops or rolls back the others. Failed rows are returned as a PartialBatchFailure.
func (s SearchService) UpdateSelected(ctx context.Context, users []models.SelectedUserUpdate) (int, error) {
	if len(users) == 0 {
		return 0, domain.ValidationError{Msg: "No users provided"}
	}
	for i, u := range users {
		if !u.RegID.Valid || u.RegID.Value <= 0 {
			return 0, domain.ValidationError{Field: fmt.Sprintf("users[%d].reg_id", i), Msg: "must be a positive integer"}
		}
	}

	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures []domain.BatchItemFailure
	)
	if s.MaxParallel > 0 {
		g.SetLimit(s.MaxParallel)
	}
	for _, u := range users {
		g.Go(func() error {
			if err := s.Repo.UpdateSelectedUser(ctx, u); err != nil {
				utils.LogFailure(s.RequestID, "search", "update_selected", err, zap.Int64("reg_id", u.RegID.Value))
				mu.Lock()
				failures = append(failures, domain.BatchItemFailure{ID: u.RegID.Value, Err: err})
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	updated := len(users) - len(failures)
	utils.LogEvent(s.RequestID, "search", "update_selected",
		fmt.Sprintf("requested=%d updated=%d failed=%d", len(users), updated, len(failures)))

	if len(failures) > 0 {
		sort.Slice(failures, func(i, j int) bool { return failures[i].ID < failures[j].ID })
		return updated, domain.PartialBatchFailure{Total: len(users), Failures: failures}
	}
	return updated, nil
}

// SewaLocations lists sewa locations with normalized keys.
func (s SearchService) SewaLocations(ctx context.Context) ([]models.Record, error) {
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	raw, err := s.Repo.SewaLocations(ctx)
	if err != nil {
		utils.LogFailure(s.RequestID, "search", "sewa_locations", err)
		return nil, err
	}
	return NormalizeRecords(raw), nil
}

// NormalizeRecords camel-cases the keys of every record.
func NormalizeRecords(raw []models.Record) []models.Record {
	out := make([]models.Record, 0, len(raw))
	for _, r := range raw {
		out = append(out, r.Normalize())
	}
	return out
}

// FormatRecords normalizes keys and then coerces the presence flags.
func FormatRecords(raw []models.Record) []models.Record {
	out := NormalizeRecords(raw)
	for i := range out {
		coerceFlags(&out[i])
	}
	return out
}

// coerceFlags maps isPresent/passEntry to 1 when the value is exactly "YES", else 0.
// Both keys are always present afterwards; no other key is touched.
func coerceFlags(r *models.Record) {
	for _, key := range []string{FieldIsPresent, FieldPassEntry} {
		v, _ := r.Get(key)
		if s, ok := v.(string); ok && s == flagYes {
			r.Set(key, 1)
		} else {
			r.Set(key, 0)
		}
	}
}

// ResortPage orders records in place by field, case-insensitively. Records whose value is
// missing, null or empty go last in both directions; ties keep their input order.
func ResortPage(records []models.Record, field, order string) {
	if field == "" || len(records) < 2 {
		return
	}
	desc := strings.EqualFold(order, domain.SortDesc)
	keys := make([]string, len(records))
	for i, r := range records {
		v, _ := r.Get(field)
		keys[i] = strings.ToLower(models.ScalarText(v))
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		switch {
		case ka == "" && kb == "":
			return false
		case ka == "":
			return false
		case kb == "":
			return true
		case desc:
			return ka > kb
		default:
			return ka < kb
		}
	})
	sorted := make([]models.Record, len(records))
	for i, j := range idx {
		sorted[i] = records[j]
	}
	copy(records, sorted)
}
