package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"appointment-booking-api/internal/model"
	"appointment-booking-api/internal/store"
	"appointment-booking-api/pkg/apperr"
	"appointment-booking-api/pkg/metrics"
)

// Scheduler is the only writer of slots and appointments. Every operation
// runs inside a single store closure and checks all of its preconditions
// before the first mutation, so failed calls never leave partial state and
// the availability invariant holds after every call: a slot is unavailable
// exactly when one live (booked or rescheduled) appointment references it.
type Scheduler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewScheduler(st *store.Store, logger *zap.Logger) *Scheduler {
	return &Scheduler{store: st, logger: logger}
}

// ListSlots returns available slots. identity may be nil (anonymous).
// includeUnavailable is honored for admins only; everyone else gets the
// available subset no matter what they asked for.
func (s *Scheduler) ListSlots(identity *model.Identity, includeUnavailable bool) []model.AppointmentSlot {
	var out []model.AppointmentSlot
	_ = s.store.View(func(d *store.Data) error {
		src := d.AvailableSlots()
		if includeUnavailable && canSeeAllSlots(identity) {
			src = d.Slots
		}
		out = make([]model.AppointmentSlot, 0, len(src))
		for _, sl := range src {
			out = append(out, *sl)
		}
		return nil
	})
	return out
}

// CreateSlot publishes a new open slot owned by the calling admin.
func (s *Scheduler) CreateSlot(identity model.Identity, start, end time.Time) (*model.AppointmentSlot, error) {
	if !canManageSlots(identity) {
		return nil, apperr.Forbidden("Unauthorized. Admin access required.")
	}
	if start.IsZero() || end.IsZero() {
		return nil, apperr.Invalid("Start time and end time are required")
	}
	if !end.After(start) {
		return nil, apperr.Invalid("Start time must be before end time")
	}

	slot := &model.AppointmentSlot{
		ID:           uuid.New().String(),
		ProviderID:   identity.UserID,
		ProviderName: identity.Name,
		StartTime:    start,
		EndTime:      end,
		IsAvailable:  true,
	}

	_ = s.store.Update(func(d *store.Data) error {
		d.InsertSlot(slot)
		return nil
	})

	metrics.SlotsCreated.Inc()
	s.logger.Info("slot created",
		zap.String("slotId", slot.ID),
		zap.String("providerId", slot.ProviderID),
		zap.Time("start", start),
	)

	out := *slot
	return &out, nil
}

// DeleteSlot removes a slot and every appointment row that ever referenced
// it. Blocked while a live appointment holds the slot.
func (s *Scheduler) DeleteSlot(identity model.Identity, slotID string) error {
	if !canManageSlots(identity) {
		return apperr.Forbidden("Unauthorized. Admin access required.")
	}

	err := s.store.Update(func(d *store.Data) error {
		if d.SlotByID(slotID) == nil {
			return apperr.NotFound("Slot not found")
		}
		if d.LiveAppointmentForSlot(slotID) != nil {
			return apperr.Conflict("Cannot delete a slot with an active booking")
		}
		d.RemoveSlot(slotID)
		d.RemoveAppointmentsForSlot(slotID)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.SlotsDeleted.Inc()
	s.logger.Info("slot deleted", zap.String("slotId", slotID))
	return nil
}

// Book reserves an available slot for the caller and returns the new
// appointment carrying a snapshot of the slot at booking time.
func (s *Scheduler) Book(identity model.Identity, slotID string) (*model.Appointment, error) {
	if identity.UserID == "" {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	if slotID == "" {
		return nil, apperr.Invalid("Slot ID is required")
	}

	appt := &model.Appointment{
		ID:        uuid.New().String(),
		UserID:    identity.UserID,
		UserName:  identity.Name,
		Status:    model.StatusBooked,
		CreatedAt: time.Now(),
	}

	err := s.store.Update(func(d *store.Data) error {
		slot := d.SlotByID(slotID)
		if slot == nil {
			return apperr.NotFound("Slot not found")
		}
		if !slot.IsAvailable {
			return apperr.Conflict("This slot is no longer available")
		}

		slot.IsAvailable = false
		appt.SlotID = slot.ID
		appt.Slot = *slot
		d.InsertAppointment(appt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Bookings.Inc()
	s.logger.Info("slot booked",
		zap.String("slotId", slotID),
		zap.String("appointmentId", appt.ID),
		zap.String("userId", identity.UserID),
	)

	out := *appt
	return &out, nil
}

// Reschedule moves a live appointment to another available slot: the old
// slot is released, the new one reserved, and the embedded snapshot
// replaced, all in one step. Rescheduling again later is fine; a cancelled
// appointment stays cancelled.
func (s *Scheduler) Reschedule(identity model.Identity, appointmentID, newSlotID string) (*model.Appointment, error) {
	if identity.UserID == "" {
		return nil, apperr.Unauthenticated("Authentication required")
	}
	if newSlotID == "" {
		return nil, apperr.Invalid("New slot ID is required")
	}

	var out model.Appointment
	err := s.store.Update(func(d *store.Data) error {
		appt := d.AppointmentByID(appointmentID)
		if appt == nil {
			return apperr.NotFound("Appointment not found")
		}
		if !canModifyAppointment(identity, appt) {
			return apperr.Forbidden("Not authorized to reschedule this appointment")
		}
		if appt.Status == model.StatusCancelled {
			return apperr.Conflict("Appointment has been cancelled")
		}

		newSlot := d.SlotByID(newSlotID)
		if newSlot == nil {
			return apperr.NotFound("New slot not found")
		}
		if !newSlot.IsAvailable {
			return apperr.Conflict("The selected slot is not available")
		}

		// release the old slot if it still exists
		if old := d.SlotByID(appt.SlotID); old != nil {
			old.IsAvailable = true
		}

		newSlot.IsAvailable = false
		appt.SlotID = newSlot.ID
		appt.Slot = *newSlot
		appt.Status = model.StatusRescheduled
		out = *appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Reschedules.Inc()
	s.logger.Info("appointment rescheduled",
		zap.String("appointmentId", appointmentID),
		zap.String("newSlotId", newSlotID),
	)
	return &out, nil
}

// Cancel releases the appointment's slot and marks it cancelled. The row is
// kept for history. Cancelled is terminal: cancelling twice is a conflict.
func (s *Scheduler) Cancel(identity model.Identity, appointmentID string) error {
	if identity.UserID == "" {
		return apperr.Unauthenticated("Authentication required")
	}

	err := s.store.Update(func(d *store.Data) error {
		appt := d.AppointmentByID(appointmentID)
		if appt == nil {
			return apperr.NotFound("Appointment not found")
		}
		if !canModifyAppointment(identity, appt) {
			return apperr.Forbidden("Not authorized to cancel this appointment")
		}
		if appt.Status == model.StatusCancelled {
			return apperr.Conflict("Appointment is already cancelled")
		}

		if slot := d.SlotByID(appt.SlotID); slot != nil {
			slot.IsAvailable = true
		}
		appt.Status = model.StatusCancelled
		return nil
	})
	if err != nil {
		return err
	}

	metrics.Cancellations.Inc()
	s.logger.Info("appointment cancelled", zap.String("appointmentId", appointmentID))
	return nil
}

// ListAppointments returns every appointment for admins and the caller's own
// otherwise.
func (s *Scheduler) ListAppointments(identity model.Identity) []model.Appointment {
	var out []model.Appointment
	_ = s.store.View(func(d *store.Data) error {
		src := d.Appointments
		if !identity.IsAdmin() {
			src = d.AppointmentsByUser(identity.UserID)
		}
		out = make([]model.Appointment, 0, len(src))
		for _, a := range src {
			out = append(out, *a)
		}
		return nil
	})
	return out
}
