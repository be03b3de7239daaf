package repositories

import (
	"context"
	"database/sql"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
)

// UserRepository applies admin edits to one or more registrations.
type UserRepository struct {
	DB *sql.DB
}

const procUpdateMasterRole = "sp_update_master_user_role"

// UpdateMasterRole returns the number of registrations the procedure changed.
func (r UserRepository) UpdateMasterRole(ctx context.Context, req models.RoleUpdateRequest) (int64, error) {
	var affected int64
	err := withConn(ctx, r.DB, procUpdateMasterRole, func(conn *sql.Conn) error {
		sets, err := call(ctx, conn, procUpdateMasterRole, req.Args()...)
		if err != nil {
			return err
		}
		affected = affectedRows(sets)
		return nil
	})
	return affected, err
}
