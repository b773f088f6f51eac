package store

import "appointment-booking-api/internal/model"

func (d *Data) UserByEmail(email string) *model.User {
	for _, u := range d.Users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (d *Data) UserByID(id string) *model.User {
	for _, u := range d.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (d *Data) InsertUser(u *model.User) {
	d.Users = append(d.Users, u)
}
