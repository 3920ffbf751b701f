package booking

import (
	"homeserv/models"
	"homeserv/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Update applies a partial update: non-nil fields overwrite, nil fields are
// left untouched. The merged record is not re-validated against the booking
// shape rule. Returns the full updated record.
func (s *DefaultBookingService) Update(id string, update models.BookingUpdate) (*models.Booking, error) {
	updateFields := bson.M{}
	if update.ScheduledAt != nil {
		updateFields["scheduled_at"] = *update.ScheduledAt
	}
	if update.Status != nil {
		updateFields["status"] = *update.Status
	}
	if update.TotalPrice != nil {
		updateFields["total_price"] = *update.TotalPrice
	}
	if update.Details != nil {
		updateFields["details"] = *update.Details
	}

	if len(updateFields) > 0 {
		if err := s.Repo.UpdateFields(id, updateFields); err != nil {
			utils.GetLogger().Error("Failed to update booking", zap.String("bookingID", id), zap.Error(err))
			return nil, err
		}
	}
	return s.Repo.GetByID(id)
}

// CompleteJob forces the booking status to completed regardless of the
// current status.
func (s *DefaultBookingService) CompleteJob(id string) error {
	return s.Repo.UpdateFields(id, bson.M{"status": models.StatusCompleted})
}

// ChangeStatus persists the new status with no other side effects. Callers
// are expected to have restricted the value to the valid status set.
func (s *DefaultBookingService) ChangeStatus(id, status string) (*models.Booking, error) {
	if err := s.Repo.UpdateFields(id, bson.M{"status": status}); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// Delete removes the booking record.
func (s *DefaultBookingService) Delete(id string) error {
	return s.Repo.Delete(id)
}
