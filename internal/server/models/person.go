// Package models defines server-side data models persisted in the database.
package models

import "time"

// Person is a memorial profile. ID is assigned by the database on create and
// never changes afterwards. Image references (PhotoURL, Gallery entries) are
// object-storage download URLs or external URLs, never inline data URLs.
type Person struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	DOB          string        `json:"dob,omitempty"`
	About        string        `json:"about,omitempty"`
	PhotoURL     string        `json:"photoUrl,omitempty"`
	Primary      string        `json:"primary,omitempty"`
	Secondary    string        `json:"secondary,omitempty"`
	Gender       string        `json:"gender,omitempty"`
	Testimonials []Testimonial `json:"testimonials"`
	Gallery      []string      `json:"gallery"`
	CreatedAt    time.Time     `json:"createdAt"`
	CreatedBy    string        `json:"createdBy,omitempty"`
}

// PersonUpdate carries a partial update; nil fields are left untouched.
type PersonUpdate struct {
	Name      *string `json:"name"`
	DOB       *string `json:"dob"`
	About     *string `json:"about"`
	PhotoURL  *string `json:"photoUrl"`
	Primary   *string `json:"primary"`
	Secondary *string `json:"secondary"`
	Gender    *string `json:"gender"`
}

// UnmarshalJSON accepts the legacy "description" spelling for the about
// field. The alias is translated here at the edge and never stored.
func (u *PersonUpdate) UnmarshalJSON(b []byte) error {
	type alias PersonUpdate
	aux := struct {
		*alias
		Description *string `json:"description"`
	}{alias: (*alias)(u)}
	if err := jsonUnmarshal(b, &aux); err != nil {
		return err
	}
	if u.About == nil && aux.Description != nil {
		u.About = aux.Description
	}
	return nil
}

// HeroDraft is the single-key client cache of last-edited hero fields,
// persisted per user and never merged into a Person document.
type HeroDraft struct {
	Name     string `json:"name"`
	Caption  string `json:"caption"`
	ImageSrc string `json:"imageSrc"`
}
