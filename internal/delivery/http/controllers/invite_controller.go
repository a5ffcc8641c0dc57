package controllers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"invites/internal/delivery/http/helpers"
	"invites/internal/delivery/http/views"
	"invites/internal/domain"
)

// MaxInviteBodyBytes caps the create-invite request, image included.
const MaxInviteBodyBytes = 16 << 20

type InviteController struct {
	Logger   *slog.Logger
	Service  domain.InviteService
	Renderer PageRenderer
	// BaseURL prefixes shareable links; empty means derive it from the request.
	BaseURL string
}

func NewInviteController(logger *slog.Logger, svc domain.InviteService, renderer PageRenderer, baseURL string) *InviteController {
	return &InviteController{
		Logger:   logger,
		Service:  svc,
		Renderer: renderer,
		BaseURL:  baseURL,
	}
}

// InviteCreatedData is rendered after a successful invite creation.
type InviteCreatedData struct {
	Link   string
	Invite *domain.Invite
}

// NewInviteForm handles GET /create_invite.
func (c *InviteController) NewInviteForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageCreateInvite, views.Page{
		Title: "Create invite",
		Flash: helpers.ReadFlash(w, r),
		Admin: true,
	})
}

// CreateInvite handles POST /create_invite (multipart, optional "image" file).
func (c *InviteController) CreateInvite(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxInviteBodyBytes)
	var form InviteForm
	if _, err := helpers.BindAndValidate(r, &form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			helpers.WriteFlash(w, r, "Upload is too large.")
		} else {
			helpers.WriteFlash(w, r, "Invalid form submission.")
		}
		redirectSeeOther(w, r, createInvitePath)
		return
	}

	in := domain.CreateInviteInput{
		Message:   form.Message,
		EventDate: form.EventDate,
		EventTime: form.EventTime,
		Location:  form.Location,
	}
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		in.Image = &domain.ImageUpload{Filename: header.Filename, Content: file}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}
	defer removeMultipartFiles(r.MultipartForm)

	invite, err := c.Service.CreateInvite(r.Context(), in)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			helpers.WriteFlash(w, r, msg)
			redirectSeeOther(w, r, createInvitePath)
			return
		}
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}

	c.Logger.InfoContext(r.Context(), "invite created", "invite_id", invite.ID, "has_image", invite.ImagePath != "")
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageInviteCreated, views.Page{
		Title: "Invite created",
		Admin: true,
		Data: InviteCreatedData{
			Link:   helpers.InviteLink(r, c.BaseURL, invite.Token),
			Invite: invite,
		},
	})
}

// ViewInvite handles GET /invite/{token}.
func (c *InviteController) ViewInvite(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.GetInvite(r.Context(), r.PathValue("token"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			NotFound(w, r, c.Logger, c.Renderer, invalidInviteMsg)
			return
		}
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageInvitee, views.Page{
		Title: "You're invited",
		Flash: helpers.ReadFlash(w, r),
		Data:  view,
	})
}

// SubmitRSVP handles POST /invite/{token}.
func (c *InviteController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	var form RSVPForm
	if _, err := helpers.BindAndValidate(r, &form); err != nil {
		helpers.WriteFlash(w, r, "Invalid form submission.")
		redirectSeeOther(w, r, helpers.InvitePath(token))
		return
	}

	resp, err := c.Service.SubmitRSVP(r.Context(), token, form.Name, form.NumberOfAttendees)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			NotFound(w, r, c.Logger, c.Renderer, invalidInviteMsg)
			return
		}
		if msg, ok := validationMessage(err); ok {
			helpers.WriteFlash(w, r, msg)
			redirectSeeOther(w, r, helpers.InvitePath(token))
			return
		}
		serverError(w, r, c.Logger, c.Renderer, err)
		return
	}
	renderPage(w, r, c.Logger, c.Renderer, http.StatusOK, views.PageResponse, views.Page{
		Title: "Thank you",
		Data:  resp,
	})
}

func removeMultipartFiles(form *multipart.Form) {
	if form != nil {
		_ = form.RemoveAll()
	}
}
