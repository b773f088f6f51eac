package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusBooked      = "booked"
	StatusRescheduled = "rescheduled"
	StatusCancelled   = "cancelled"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

type AppointmentSlot struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsAvailable  bool      `json:"isAvailable"`
}

// Appointment keeps Slot as a value snapshot taken at booking or reschedule
// time; later changes to the live slot do not rewrite history.
type Appointment struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	SlotID    string          `json:"slotId"`
	Slot      AppointmentSlot `json:"slot"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Live reports whether the appointment currently holds its slot reserved.
func (a *Appointment) Live() bool {
	return a.Status == StatusBooked || a.Status == StatusRescheduled
}

// Identity is the authenticated principal derived from a verified token.
type Identity struct {
	UserID string
	Email  string
	Role   string
	Name   string
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }
