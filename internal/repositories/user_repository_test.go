package repositories

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

func TestUpdateMasterRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	var req models.RoleUpdateRequest
	if err := json.Unmarshal([]byte(`{"regId":[3,"4"],"isPresent":true,"isAdmin":"NO","remark":"ok"}`), &req); err != nil {
		t.Fatalf("decode request: %v", err)
	}

	mock.ExpectQuery(regexp.QuoteMeta("CALL sp_update_master_user_role(?, ?, ?, ?, ?, ?, ?, ?)")).
		WithArgs("3,4", 1, nil, nil, 0, "ok", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"affected_rows"}).AddRow(int64(2)))

	n, err := UserRepository{DB: db}.UpdateMasterRole(context.Background(), req)
	if err != nil {
		t.Fatalf("UpdateMasterRole returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("affected rows: got %d want 2", n)
	}
}
