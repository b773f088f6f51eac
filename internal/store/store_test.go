package store

import (
	"testing"
	"time"

	"appointment-booking-api/internal/auth"
	"appointment-booking-api/internal/model"
)

func TestSeedContents(t *testing.T) {
	st := New()
	if err := st.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := st.View(func(d *Data) error {
		if len(d.Users) != 2 {
			t.Fatalf("expected 2 seeded users, got %d", len(d.Users))
		}

		admin := d.UserByEmail(SeedAdminEmail)
		if admin == nil {
			t.Fatal("seed admin missing")
		}
		if admin.Role != model.RoleAdmin || admin.ID != SeedAdminID {
			t.Errorf("admin fields: role=%s id=%s", admin.Role, admin.ID)
		}
		if !auth.CheckPassword(admin.PasswordHash, SeedAdminPassword) {
			t.Error("admin password hash does not match demo credentials")
		}

		user := d.UserByEmail(SeedUserEmail)
		if user == nil {
			t.Fatal("seed user missing")
		}
		if user.Role != model.RoleUser {
			t.Errorf("user role: %s", user.Role)
		}

		// 6 hours per day for 7 days
		if len(d.Slots) != 42 {
			t.Fatalf("expected 42 seeded slots, got %d", len(d.Slots))
		}
		for i, s := range d.Slots {
			if !s.IsAvailable {
				t.Errorf("slot %s seeded unavailable", s.ID)
			}
			if s.ProviderID != SeedAdminID || s.ProviderName != SeedAdminName {
				t.Errorf("slot %s provider: %s/%s", s.ID, s.ProviderID, s.ProviderName)
			}
			if s.EndTime.Sub(s.StartTime) != time.Hour {
				t.Errorf("slot %s is not one hour long", s.ID)
			}
			wantHour := seedHours[i%len(seedHours)]
			if s.StartTime.Hour() != wantHour {
				t.Errorf("slot %s starts at hour %d, want %d", s.ID, s.StartTime.Hour(), wantHour)
			}
		}

		if d.Slots[0].ID != "slot-1" || d.Slots[41].ID != "slot-42" {
			t.Error("seed slot ids are not deterministic")
		}

		if len(d.Appointments) != 0 {
			t.Errorf("seed created %d appointments", len(d.Appointments))
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestRemoveAppointmentsForSlot(t *testing.T) {
	st := New()
	_ = st.Update(func(d *Data) error {
		d.InsertAppointment(&model.Appointment{ID: "a1", SlotID: "s1", Status: model.StatusCancelled})
		d.InsertAppointment(&model.Appointment{ID: "a2", SlotID: "s2", Status: model.StatusBooked})
		d.InsertAppointment(&model.Appointment{ID: "a3", SlotID: "s1", Status: model.StatusRescheduled})
		return nil
	})

	_ = st.Update(func(d *Data) error {
		if got := d.RemoveAppointmentsForSlot("s1"); got != 2 {
			t.Errorf("removed %d rows, want 2", got)
		}
		return nil
	})

	_ = st.View(func(d *Data) error {
		if len(d.Appointments) != 1 || d.Appointments[0].ID != "a2" {
			t.Errorf("unexpected survivors: %+v", d.Appointments)
		}
		return nil
	})
}

func TestLiveAppointmentForSlot(t *testing.T) {
	st := New()
	_ = st.Update(func(d *Data) error {
		d.InsertAppointment(&model.Appointment{ID: "a1", SlotID: "s1", Status: model.StatusCancelled})
		d.InsertAppointment(&model.Appointment{ID: "a2", SlotID: "s1", Status: model.StatusRescheduled})
		return nil
	})

	_ = st.View(func(d *Data) error {
		live := d.LiveAppointmentForSlot("s1")
		if live == nil || live.ID != "a2" {
			t.Errorf("live appointment: %+v", live)
		}
		if d.LiveAppointmentForSlot("s2") != nil {
			t.Error("phantom live appointment for empty slot")
		}
		return nil
	})
}
