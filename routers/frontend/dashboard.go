package frontend

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/routers/api/models"
	"github.com/unicsmcr/hs_employees/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	dashboardTemplate = "dashboard.gohtml"
	dashboardPath     = "/dashboard"

	// viewParam identifies one browser tab showing the list, so tabs sharing a session do not
	// supersede each other's fetches
	viewParam = "view"
)

type dashboardDataModel struct {
	View       string
	Search     string
	Page       uint
	TotalPages uint
	Employees  []entities.Employee
	// Loaded is false when the list could not be fetched
	Loaded  bool
	HasPrev bool
	HasNext bool
	PrevURL string
	NextURL string
}

func (r *frontendRouter) Dashboard(ctx *gin.Context) {
	session := sessionFromCtx(ctx)
	search := ctx.Query("search")
	page := parsePage(ctx.Query("page"))
	view := ctx.Query(viewParam)
	if view == "" {
		view = uuid.New().String()
	}

	reqCtx, ticket := r.tracker.Begin(ctx.Request.Context(), listFetchKey(session.Token, view))
	defer ticket.Done()

	employees, err := r.employeeService.GetEmployees(reqCtx, session.Token, entities.EmployeeQuery{
		Search: search,
		Page:   page,
		Limit:  r.cfg.Employees.PageSize,
	})
	if !ticket.Current() {
		r.logger.Debug("discarding superseded employee list response", zap.Uint64("seq", ticket.Seq()))
		models.SendAPIError(ctx, http.StatusConflict, "superseded by a newer request")
		return
	}

	data := dashboardDataModel{
		View:   view,
		Search: search,
		Page:   page,
	}

	if err != nil {
		if errors.Cause(err) == services.ErrUnauthorized {
			r.logger.Warn("employees API rejected session token", zap.Error(err))
			r.redirectToLogin(ctx, sessionExpiredMessage)
			return
		}
		r.logger.Error("could not fetch employees", zap.String("search", search), zap.Uint("page", page), zap.Error(err))
		r.render(ctx, statusForServiceError(err), dashboardTemplate, data, errorNotice("could not load employees"))
		return
	}

	data.Loaded = true
	data.Employees = employees.Employees
	data.TotalPages = employees.TotalPages
	data.HasPrev = page > 1
	data.HasNext = page < employees.TotalPages
	if data.HasPrev {
		data.PrevURL = dashboardURL(view, search, page-1)
	}
	if data.HasNext {
		data.NextURL = dashboardURL(view, search, page+1)
	}

	r.render(ctx, http.StatusOK, dashboardTemplate, data)
}

func (r *frontendRouter) DeleteEmployee(ctx *gin.Context) {
	session := sessionFromCtx(ctx)
	id := ctx.Param("id")
	returnTo := dashboardURL(ctx.PostForm(viewParam), ctx.PostForm("search"), parsePage(ctx.PostForm("page")))

	if !primitive.IsValidObjectID(id) {
		r.logger.Warn("invalid employee id", zap.String("id", id))
		r.renderNotice(ctx, http.StatusNotFound, errorNotice("employee not found"), returnTo, false)
		return
	}

	err := r.employeeService.DeleteEmployeeWithID(ctx.Request.Context(), session.Token, id)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrUnauthorized:
			r.logger.Warn("employees API rejected session token", zap.Error(err))
			r.redirectToLogin(ctx, sessionExpiredMessage)
			return
		case services.ErrNotFound:
			r.logger.Warn("employee to delete not found", zap.String("id", id), zap.Error(err))
			setFlash(ctx, errorNotice("employee not found"))
		default:
			r.logger.Error("could not delete employee", zap.String("id", id), zap.Error(err))
			setFlash(ctx, errorNotice("could not delete employee"))
		}
		ctx.Redirect(http.StatusSeeOther, returnTo)
		return
	}

	setFlash(ctx, successNotice("Employee deleted"))
	ctx.Redirect(http.StatusSeeOther, returnTo)
}

// parsePage reads a 1-based page number, falling back to the first page
func parsePage(raw string) uint {
	page, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || page < 1 {
		return 1
	}
	return uint(page)
}

// listFetchKey scopes "last request wins" to one tab of one session
func listFetchKey(token, view string) string {
	return token + "/" + view
}

func dashboardURL(view, search string, page uint) string {
	query := url.Values{}
	if view != "" {
		query.Set(viewParam, view)
	}
	if search != "" {
		query.Set("search", search)
	}
	if page > 1 {
		query.Set("page", strconv.FormatUint(uint64(page), 10))
	}
	if len(query) == 0 {
		return dashboardPath
	}
	return dashboardPath + "?" + query.Encode()
}

func statusForServiceError(err error) int {
	switch errors.Cause(err) {
	case services.ErrRejected:
		return http.StatusBadRequest
	case services.ErrNotFound:
		return http.StatusNotFound
	case services.ErrUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
