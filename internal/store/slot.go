package store

import "appointment-booking-api/internal/model"

func (d *Data) SlotByID(id string) *model.AppointmentSlot {
	for _, s := range d.Slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (d *Data) InsertSlot(s *model.AppointmentSlot) {
	d.Slots = append(d.Slots, s)
}

// RemoveSlot deletes the slot and reports whether it existed.
func (d *Data) RemoveSlot(id string) bool {
	for i, s := range d.Slots {
		if s.ID == id {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Data) AvailableSlots() []*model.AppointmentSlot {
	out := make([]*model.AppointmentSlot, 0, len(d.Slots))
	for _, s := range d.Slots {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out
}
