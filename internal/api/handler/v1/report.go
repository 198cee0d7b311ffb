package v1

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/events-api/internal/api/handler/v1/response"
	"github.com/campushub/events-api/internal/export"
	"github.com/campushub/events-api/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportService interface {
	EventsTable(ctx context.Context) (service.Table, error)
	RegistrationsTable(ctx context.Context) (service.Table, error)
	UsersTable(ctx context.Context) (service.Table, error)
}

type ReportHandler struct {
	svc  ReportService
	uSvc UserService
}

func NewReportHandler(svc ReportService, uSvc UserService) *ReportHandler {
	return &ReportHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleExport godoc
// @Summary      Export a collection as a spreadsheet (admin)
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        entity  path  string  true  "events, registrations or users"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reports/{entity}/export [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleExport(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("user %v is not an admin", user.ID)))
		return
	}

	var (
		table service.Table
		err   error
	)

	entity := ctx.Param("entity")
	switch entity {
	case "events":
		table, err = h.svc.EventsTable(ctx.Request.Context())
	case "registrations":
		table, err = h.svc.RegistrationsTable(ctx.Request.Context())
	case "users":
		table, err = h.svc.UsersTable(ctx.Request.Context())
	default:
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("unknown report entity %q", entity)))
		return
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleExport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	var buf bytes.Buffer
	if err = export.WriteXLSX(&buf, table); err != nil {
		err = fmt.Errorf("v1.HandleExport -> export.WriteXLSX -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := fmt.Sprintf("%s_data.xlsx", table.Name)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
