package booking_test

import (
	"fmt"
	"sort"
	"testing"
	"time"

	bookingRepo "homeserv/database/repository/booking"
	"homeserv/models"
	"homeserv/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	return &b, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUser(userID string, filter bookingRepo.PackageFilter) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		switch filter {
		case bookingRepo.PackageOnly:
			if b.PackageID == nil {
				continue
			}
		case bookingRepo.PackageNone:
			if b.PackageID != nil {
				continue
			}
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeBookingRepo) UpdateFields(id string, fields bson.M) error {
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	for key, value := range fields {
		switch key {
		case "status":
			b.Status = value.(string)
		case "details":
			b.Details = value.(string)
		case "total_price":
			b.TotalPrice = value.(float64)
		case "scheduled_at":
			b.ScheduledAt = value.(time.Time)
		}
	}
	r.bookings[id] = b
	return nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking with id %s: %w", id, bookingRepo.ErrNotFound)
	}
	delete(r.bookings, id)
	return nil
}

func newService() (*booking.DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	return &booking.DefaultBookingService{Repo: repo}, repo
}

func TestCreateRoundTrip(t *testing.T) {
	svc, _ := newService()

	scheduled := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	created, err := svc.Create(models.BookingCreate{
		UserID:         "u1",
		AreaID:         3,
		ServiceID:      int64Ptr(2),
		ProfessionalID: int64Ptr(7),
		ScheduledAt:    scheduled,
		TotalPrice:     149.99,
		Details:        "kitchen sink leaking",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", fetched.UserID)
	assert.Equal(t, int64(3), fetched.AreaID)
	assert.Equal(t, int64(2), *fetched.ServiceID)
	assert.Equal(t, int64(7), *fetched.ProfessionalID)
	assert.Nil(t, fetched.PackageID)
	assert.Equal(t, scheduled, fetched.ScheduledAt)
	assert.Equal(t, 149.99, fetched.TotalPrice)
	assert.Equal(t, "kitchen sink leaking", fetched.Details)
	assert.Equal(t, models.StatusPending, fetched.Status)
}

func TestCreateRejectsInvalidShape(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Create(models.BookingCreate{
		UserID:    "u1",
		PackageID: int64Ptr(5),
		ServiceID: int64Ptr(2),
	})
	var invalid booking.InvalidBookingError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, repo.bookings, "nothing may be persisted on a shape violation")
}

func TestPartialUpdateLeavesOtherFieldsUntouched(t *testing.T) {
	svc, _ := newService()

	scheduled := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	created, err := svc.Create(models.BookingCreate{
		UserID:         "u1",
		ServiceID:      int64Ptr(2),
		ProfessionalID: int64Ptr(7),
		ScheduledAt:    scheduled,
		TotalPrice:     80,
		Details:        "wiring fix",
	})
	require.NoError(t, err)

	cancelled := models.StatusCancelled
	updated, err := svc.Update(created.ID, models.BookingUpdate{Status: &cancelled})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, scheduled, updated.ScheduledAt)
	assert.Equal(t, float64(80), updated.TotalPrice)
	assert.Equal(t, "wiring fix", updated.Details)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newService()

	status := models.StatusCancelled
	_, err := svc.Update("missing", models.BookingUpdate{Status: &status})
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestCompleteJobForcesStatus(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(models.BookingCreate{
		UserID:         "u1",
		ServiceID:      int64Ptr(2),
		ProfessionalID: int64Ptr(7),
	})
	require.NoError(t, err)

	// Force-complete twice: no transition guard exists.
	require.NoError(t, svc.CompleteJob(created.ID))
	require.NoError(t, svc.CompleteJob(created.ID))

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, fetched.Status)

	assert.ErrorIs(t, svc.CompleteJob("missing"), booking.ErrNotFound)
}

func TestChangeStatusPersists(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(models.BookingCreate{
		UserID:    "u1",
		PackageID: int64Ptr(5),
	})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(created.ID, models.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)

	// Terminal states are convention only: cancelled can go back to pending.
	updated, err = svc.ChangeStatus(created.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _ := newService()

	created, err := svc.Create(models.BookingCreate{
		UserID:    "u1",
		PackageID: int64Ptr(5),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), booking.ErrNotFound)
}

func TestUserBookingPartitioning(t *testing.T) {
	svc, _ := newService()

	pkg, err := svc.Create(models.BookingCreate{UserID: "u1", PackageID: int64Ptr(5)})
	require.NoError(t, err)
	normal, err := svc.Create(models.BookingCreate{
		UserID:         "u1",
		ServiceID:      int64Ptr(2),
		ProfessionalID: int64Ptr(7),
	})
	require.NoError(t, err)
	_, err = svc.Create(models.BookingCreate{UserID: "u2", PackageID: int64Ptr(9)})
	require.NoError(t, err)

	all, err := svc.GetByUser("u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	packages, err := svc.GetPackageBookingsByUser("u1")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, pkg.ID, packages[0].ID)

	normals, err := svc.GetNormalBookingsByUser("u1")
	require.NoError(t, err)
	require.Len(t, normals, 1)
	assert.Equal(t, normal.ID, normals[0].ID)
}

func TestCreateFromTriage(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateFromTriage("u9", "Plumbing", "burst pipe under sink")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "u9", fetched.UserID)
	assert.Equal(t, "Plumbing", fetched.ServiceName)
	assert.Equal(t, "burst pipe under sink", fetched.Details)
	assert.Equal(t, models.StatusPending, fetched.Status)
	assert.Equal(t, models.SourceChat, fetched.Source)
	assert.Nil(t, fetched.PackageID)
	assert.Nil(t, fetched.ServiceID)
	assert.Nil(t, fetched.ProfessionalID)
}
