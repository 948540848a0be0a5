package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "serenite/database/repository/booking"
	"serenite/models"
	"serenite/services/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	bookings []models.Booking
}

func (f *fakeRepo) FindActiveForDate(ctx context.Context, professionalID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProfessionalID == professionalID && b.Date == date && b.Active() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	for _, b := range f.bookings {
		if b.ProfessionalID == booking.ProfessionalID && b.Date == booking.Date && b.Active() &&
			booking.Start < b.End && b.Start < booking.End {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			rec := b
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SetStatus(ctx context.Context, id, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeRepo) ListForClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeEngine struct {
	day models.DayAvailability
	err error
}

func (f *fakeEngine) ComputeAvailableSlots(ctx context.Context, professionalID string, date time.Time, durationMinutes int) (models.DayAvailability, error) {
	if f.err != nil {
		return models.DayAvailability{}, f.err
	}
	return f.day, nil
}

type fakeReminders struct {
	scheduled []string
	err       error
}

func (f *fakeReminders) ScheduleReminder(ctx context.Context, booking *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.scheduled = append(f.scheduled, booking.ID)
	return nil
}

type fakePayments struct {
	intents int
	err     error
}

func (f *fakePayments) CreateDepositIntent(ctx context.Context, booking *models.Booking) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.intents++
	return "pi_test", nil
}

func openDay(slots ...string) models.DayAvailability {
	return models.DayAvailability{Date: "2026-09-14", Slots: slots}
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ProfessionalID:  "pro-1",
		ClientID:        "client-1",
		Date:            "2026-09-14",
		StartTime:       "10:00",
		DurationMinutes: 60,
		Service:         "Massage 60min",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &fakeRepo{}
	reminders := &fakeReminders{}
	svc := &DefaultBookingService{
		Repo:      repo,
		Engine:    &fakeEngine{day: openDay("09:00", "10:00", "11:00")},
		Reminders: reminders,
	}

	created, err := svc.CreateBooking(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.Equal(t, 600, created.Start)
	assert.Equal(t, 660, created.End)
	assert.Len(t, repo.bookings, 1)
	assert.Equal(t, []string{created.ID}, reminders.scheduled)
}

func TestCreateBooking_SlotNotOffered(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:   &fakeRepo{},
		Engine: &fakeEngine{day: openDay("09:00", "11:00")}, // 10:00 missing
	}

	_, err := svc.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)
}

func TestCreateBooking_BlockedDay(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:   &fakeRepo{},
		Engine: &fakeEngine{day: models.DayAvailability{Date: "2026-09-14", Blocked: true, Reason: "Congé"}},
	}

	_, err := svc.CreateBooking(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)
	assert.Contains(t, err.Error(), "Congé")
}

func TestCreateBooking_RaceLostAtWriteTime(t *testing.T) {
	// The engine still offers 10:00, but the store already holds a conflicting
	// booking: the transactional insert must refuse.
	repo := &fakeRepo{bookings: []models.Booking{
		{ID: "b-1", ProfessionalID: "pro-1", Date: "2026-09-14", Start: 630, End: 690, Status: models.BookingStatusConfirmed},
	}}
	svc := &DefaultBookingService{
		Repo:   repo,
		Engine: &fakeEngine{day: openDay("10:00")},
	}

	_, err := svc.CreateBooking(context.Background(), validRequest())

	assert.ErrorIs(t, err, bookingRepo.ErrSlotTaken)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_InvalidInputs(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeRepo{}, Engine: &fakeEngine{day: openDay("10:00")}}

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"bad date", func(r *CreateBookingRequest) { r.Date = "14/09/2026" }},
		{"bad start time", func(r *CreateBookingRequest) { r.StartTime = "25:00" }},
		{"negative duration", func(r *CreateBookingRequest) { r.DurationMinutes = -5 }},
		{"crosses midnight", func(r *CreateBookingRequest) { r.StartTime = "23:30"; r.DurationMinutes = 60 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.CreateBooking(context.Background(), req)
			var invalid *schedule.InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestCreateBooking_DepositIntent(t *testing.T) {
	payments := &fakePayments{}
	svc := &DefaultBookingService{
		Repo:     &fakeRepo{},
		Engine:   &fakeEngine{day: openDay("10:00")},
		Payments: payments,
	}

	req := validRequest()
	req.DepositCents = 2000
	created, err := svc.CreateBooking(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "pi_test", created.PaymentIntent)
	assert.Equal(t, 1, payments.intents)
}

func TestCreateBooking_ReminderFailureDoesNotFailBooking(t *testing.T) {
	svc := &DefaultBookingService{
		Repo:      &fakeRepo{},
		Engine:    &fakeEngine{day: openDay("10:00")},
		Reminders: &fakeReminders{err: errors.New("queue down")},
	}

	_, err := svc.CreateBooking(context.Background(), validRequest())

	assert.NoError(t, err)
}

func TestCancelBooking_FreesSlot(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultBookingService{Repo: repo, Engine: &fakeEngine{day: openDay("10:00")}}
	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking(context.Background(), created.ID))

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, stored.Status)

	// Cancelling twice is refused.
	assert.Error(t, svc.CancelBooking(context.Background(), created.ID))
}

func TestMarkNoShow(t *testing.T) {
	repo := &fakeRepo{}
	svc := &DefaultBookingService{Repo: repo, Engine: &fakeEngine{day: openDay("10:00")}}
	created, err := svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.MarkNoShow(context.Background(), created.ID))

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, models.BookingStatusNoShow, stored.Status)
}

func TestCancelBooking_Unknown(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeRepo{}, Engine: &fakeEngine{}}

	err := svc.CancelBooking(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
