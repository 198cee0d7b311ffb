package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/events-api/internal/api/handler/v1/response"
	"github.com/campushub/events-api/internal/domain"
	"github.com/campushub/events-api/internal/service"
)

type RegistrationService interface {
	RegisterForEvent(ctx context.Context, eventID string, user domain.User) (domain.Registration, error)
	CountRegistrations(ctx context.Context, eventID string) (int, error)
	MyRegistrations(ctx context.Context, userID string) ([]service.RegisteredEvent, error)
	ListRegistrations(ctx context.Context) ([]domain.Registration, error)
}

type RegistrationHandler struct {
	svc  RegistrationService
	uSvc UserService
}

func NewRegistrationHandler(svc RegistrationService, uSvc UserService) *RegistrationHandler {
	return &RegistrationHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleRegisterForEvent godoc
// @Summary      Register for an event
// @Description  Rejects duplicates and registrations past the participant cap.
// @Tags         registrations
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      201  {object}  domain.Registration
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/register [post]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleRegisterForEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID := ctx.Param("eventID")

	registration, err := h.svc.RegisterForEvent(ctx.Request.Context(), eventID, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyRegistered))
		case errors.Is(err, service.ErrEventFull):
			response.RenderErr(ctx, response.ErrConflict(service.ErrEventFull))
		case errors.Is(err, service.ErrEventNotApproved):
			response.RenderErr(ctx, response.ErrConflict(service.ErrEventNotApproved))
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		default:
			err = fmt.Errorf("v1.HandleRegisterForEvent -> h.svc.RegisterForEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleCountRegistrations godoc
// @Summary      Count registrations for an event
// @Tags         registrations
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/registrations/count [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleCountRegistrations(ctx *gin.Context) {
	if _, respErr := getUserFromContext(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	count, err := h.svc.CountRegistrations(ctx.Request.Context(), ctx.Param("eventID"))
	if err != nil {
		err = fmt.Errorf("v1.HandleCountRegistrations -> h.svc.CountRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count})
}

// HandleMyRegistrations godoc
// @Summary      List the authenticated user's registrations
// @Tags         registrations
// @Produce      json
// @Success      200  {array}   service.RegisteredEvent
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations/mine [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleMyRegistrations(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrations, err := h.svc.MyRegistrations(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleMyRegistrations -> h.svc.MyRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleListRegistrations godoc
// @Summary      List all registrations (admin)
// @Tags         registrations
// @Produce      json
// @Success      200  {array}   domain.Registration
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /registrations [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	registrations, err := h.svc.ListRegistrations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}
