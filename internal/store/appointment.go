package store

import "appointment-booking-api/internal/model"

func (d *Data) AppointmentByID(id string) *model.Appointment {
	for _, a := range d.Appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (d *Data) InsertAppointment(a *model.Appointment) {
	d.Appointments = append(d.Appointments, a)
}

// LiveAppointmentForSlot returns the appointment holding the slot reserved,
// if any. The availability invariant guarantees at most one.
func (d *Data) LiveAppointmentForSlot(slotID string) *model.Appointment {
	for _, a := range d.Appointments {
		if a.SlotID == slotID && a.Live() {
			return a
		}
	}
	return nil
}

func (d *Data) AppointmentsByUser(userID string) []*model.Appointment {
	out := make([]*model.Appointment, 0, len(d.Appointments))
	for _, a := range d.Appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out
}

// RemoveAppointmentsForSlot drops every appointment row referencing slotID,
// regardless of status, and returns how many were removed. Used when a slot
// is deleted: its history goes with it.
func (d *Data) RemoveAppointmentsForSlot(slotID string) int {
	kept := d.Appointments[:0]
	removed := 0
	for _, a := range d.Appointments {
		if a.SlotID == slotID {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	d.Appointments = kept
	return removed
}
