package controllers

import (
	"net/http"
	"strings"
)

// LoginForm is the POST /login body.
type LoginForm struct {
	Username string
	Password string
	Next     string
}

func (f *LoginForm) Bind(r *http.Request) {
	f.Username = strings.TrimSpace(r.PostFormValue("username"))
	f.Password = r.PostFormValue("password")
	f.Next = r.PostFormValue("next")
}

// Validate rejects empty credentials with the same message as a failed login.
func (f *LoginForm) Validate() []string {
	if f.Username == "" || f.Password == "" {
		return []string{invalidCredentialsMsg}
	}
	return nil
}

// InviteForm is the text part of the POST /create_invite body. Field rules
// live in the invite service.
type InviteForm struct {
	Message   string
	EventDate string
	EventTime string
	Location  string
}

func (f *InviteForm) Bind(r *http.Request) {
	f.Message = r.PostFormValue("message")
	f.EventDate = r.PostFormValue("event_date")
	f.EventTime = r.PostFormValue("event_time")
	f.Location = r.PostFormValue("location")
}

// RSVPForm is the POST /invite/{token} body.
type RSVPForm struct {
	Name              string
	NumberOfAttendees string
}

func (f *RSVPForm) Bind(r *http.Request) {
	f.Name = r.PostFormValue("name")
	f.NumberOfAttendees = r.PostFormValue("number_of_attendees")
}
