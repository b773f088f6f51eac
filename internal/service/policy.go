package service

import "appointment-booking-api/internal/model"

// Authorization lives here and nowhere else, so slot and appointment rules
// cannot drift apart per endpoint.

// canManageSlots gates slot publication and deletion.
func canManageSlots(id model.Identity) bool {
	return id.IsAdmin()
}

// canModifyAppointment gates reschedule and cancel: the owner, or an admin.
func canModifyAppointment(id model.Identity, a *model.Appointment) bool {
	return a.UserID == id.UserID || id.IsAdmin()
}

// canSeeAllSlots gates the includeUnavailable listing flag.
func canSeeAllSlots(id *model.Identity) bool {
	return id != nil && id.IsAdmin()
}
