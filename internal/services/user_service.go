package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/validation"
)

type RoleStore interface {
	UpdateMasterRole(ctx context.Context, req models.RoleUpdateRequest) (int64, error)
}

type UserService struct {
	Repo      RoleStore
	RequestID string
	Timeout   time.Duration
}

// UpdateRole applies presence, pass, deletion, admin and location edits to one or more
// registrations. Zero affected rows is reported as an unsuccessful result, not an error.
func (s UserService) UpdateRole(ctx context.Context, req models.RoleUpdateRequest) (models.RoleUpdateResult, error) {
	if err := validation.Struct(req); err != nil {
		return models.RoleUpdateResult{}, err
	}
	ctx, cancel := withTimeout(ctx, s.Timeout)
	defer cancel()

	affected, err := s.Repo.UpdateMasterRole(ctx, req)
	if err != nil {
		utils.LogFailure(s.RequestID, "user", "update_role", err)
		return models.RoleUpdateResult{}, err
	}
	utils.LogEvent(s.RequestID, "user", "update_role", fmt.Sprintf("reg_ids=%s affected=%d", req.RegID, affected))

	if affected == 0 {
		return models.RoleUpdateResult{
			Success: false,
			Message: "No record updated. Please check user ID or data.",
		}, nil
	}
	return models.RoleUpdateResult{
		Success:      true,
		Message:      fmt.Sprintf("User role updated successfully for %d record(s)", affected),
		AffectedRows: affected,
	}, nil
}
