package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"strings"
	texttemplate "text/template"

	"invites/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

const (
	rsvpSubjectFile = "templates/rsvp_received_subject.txt"
	rsvpHTMLFile    = "templates/rsvp_received.html"
	rsvpTextFile    = "templates/rsvp_received.txt"
)

// RSVPRenderer builds the admin notification for a new RSVP. Its templates
// are parsed once, when it is created.
type RSVPRenderer struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

// NewRSVPRenderer parses the embedded rsvp_received templates.
func NewRSVPRenderer() (*RSVPRenderer, error) {
	return newRSVPRenderer(templateFS)
}

func newRSVPRenderer(fsys fs.FS) (*RSVPRenderer, error) {
	subject, err := texttemplate.ParseFS(fsys, rsvpSubjectFile)
	if err != nil {
		return nil, fmt.Errorf("parse rsvp subject: %w", err)
	}
	html, err := htmltemplate.ParseFS(fsys, rsvpHTMLFile)
	if err != nil {
		return nil, fmt.Errorf("parse rsvp html: %w", err)
	}
	text, err := texttemplate.ParseFS(fsys, rsvpTextFile)
	if err != nil {
		return nil, fmt.Errorf("parse rsvp text: %w", err)
	}
	return &RSVPRenderer{subject: subject, html: html, text: text}, nil
}

// RenderRSVPReceived renders the subject line and both bodies. The subject is
// flattened to a single line.
func (r *RSVPRenderer) RenderRSVPReceived(data *domain.RSVPReceivedEmailData) (domain.RenderedEmail, error) {
	if data == nil {
		return domain.RenderedEmail{}, errors.New("render rsvp: nil data")
	}
	var subject, html, text bytes.Buffer
	if err := r.subject.Execute(&subject, data); err != nil {
		return domain.RenderedEmail{}, fmt.Errorf("render rsvp subject: %w", err)
	}
	if err := r.html.Execute(&html, data); err != nil {
		return domain.RenderedEmail{}, fmt.Errorf("render rsvp html: %w", err)
	}
	if err := r.text.Execute(&text, data); err != nil {
		return domain.RenderedEmail{}, fmt.Errorf("render rsvp text: %w", err)
	}
	return domain.RenderedEmail{
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
