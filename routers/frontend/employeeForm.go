package frontend

import (
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"math"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/services"
	"github.com/unicsmcr/hs_employees/utils/submissions"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	employeeFormTemplate = "employeeForm.gohtml"
	noticeTemplate       = "notice.gohtml"

	submissionIDField      = "submissionId"
	retainedImageField     = "f_ImageData"
	retainedImageNameField = "f_ImageName"

	// room for the text fields of the form on top of the image
	formOverhead = 64 << 10
)

type formMode string

const (
	createMode formMode = "create"
	editMode   formMode = "edit"
)

type employeeFormDataModel struct {
	Mode         formMode
	Action       string
	EmployeeID   string
	Draft        entities.EmployeeDraft
	SubmissionID string
	Errors       []string
	Designations []entities.Designation
	Genders      []entities.Gender
	Courses      []string
	ImageTypes   string
}

type noticeDataModel struct {
	Notice      notice
	RedirectURL string
}

func (r *frontendRouter) CreateEmployeePage(ctx *gin.Context) {
	r.renderEmployeeForm(ctx, http.StatusOK, createMode, "", entities.EmployeeDraft{}, r.guard.NewID(), nil)
}

func (r *frontendRouter) CreateEmployee(ctx *gin.Context) {
	r.submitEmployeeForm(ctx, createMode, "")
}

func (r *frontendRouter) EditEmployeePage(ctx *gin.Context) {
	session := sessionFromCtx(ctx)
	id := ctx.Param("id")
	if !primitive.IsValidObjectID(id) {
		r.logger.Warn("invalid employee id", zap.String("id", id))
		r.renderNotice(ctx, http.StatusNotFound, errorNotice("employee not found"), dashboardPath, false)
		return
	}

	employee, err := r.employeeService.GetEmployeeWithID(ctx.Request.Context(), session.Token, id)
	if err != nil {
		switch errors.Cause(err) {
		case services.ErrUnauthorized:
			r.logger.Warn("employees API rejected session token", zap.Error(err))
			r.redirectToLogin(ctx, sessionExpiredMessage)
		case services.ErrNotFound:
			r.logger.Warn("employee not found", zap.String("id", id), zap.Error(err))
			r.renderNotice(ctx, http.StatusNotFound, errorNotice("employee not found"), dashboardPath, false)
		default:
			r.logger.Error("could not fetch employee", zap.String("id", id), zap.Error(err))
			r.renderNotice(ctx, statusForServiceError(err), errorNotice("could not load employee"), dashboardPath, false)
		}
		return
	}

	r.renderEmployeeForm(ctx, http.StatusOK, editMode, id, employee.Draft(), r.guard.NewID(), nil)
}

func (r *frontendRouter) EditEmployee(ctx *gin.Context) {
	id := ctx.Param("id")
	if !primitive.IsValidObjectID(id) {
		r.logger.Warn("invalid employee id", zap.String("id", id))
		r.renderNotice(ctx, http.StatusNotFound, errorNotice("employee not found"), dashboardPath, false)
		return
	}

	r.submitEmployeeForm(ctx, editMode, id)
}

// submitEmployeeForm validates the submitted form and sends it to the employees API.
// On any failure the form is rendered again with everything the user entered
func (r *frontendRouter) submitEmployeeForm(ctx *gin.Context, mode formMode, id string) {
	session := sessionFromCtx(ctx)

	// must run before anything reads the form so the body limit applies
	draft, err := r.bindEmployeeDraft(ctx)
	submissionID := ctx.PostForm(submissionIDField)
	if err == nil {
		err = r.validateDraft(draft, mode)
	}
	if err != nil {
		r.logger.Warn("invalid employee form", zap.String("mode", string(mode)), zap.Error(err))
		r.renderEmployeeForm(ctx, http.StatusBadRequest, mode, id, draft, r.submissionIDOrNew(submissionID), errorMessages(err))
		return
	}

	err = r.guard.Begin(submissionID)
	if err != nil {
		if errors.Cause(err) == submissions.ErrDuplicate {
			r.logger.Debug("duplicate employee form submission", zap.String("submission", submissionID))
			r.renderNotice(ctx, http.StatusConflict, infoNotice("This form has already been submitted"), dashboardPath, false)
			return
		}
		r.logger.Warn("invalid submission id", zap.String("submission", submissionID), zap.Error(err))
		r.renderEmployeeForm(ctx, http.StatusBadRequest, mode, id, draft, r.guard.NewID(),
			[]string{"the form has expired, please submit it again"})
		return
	}

	if mode == createMode {
		err = r.employeeService.CreateEmployee(ctx.Request.Context(), session.Token, draft)
	} else {
		err = r.employeeService.UpdateEmployeeWithID(ctx.Request.Context(), session.Token, id, draft)
	}
	if err != nil {
		r.guard.Release(submissionID)
		if errors.Cause(err) == services.ErrUnauthorized {
			r.logger.Warn("employees API rejected session token", zap.Error(err))
			r.redirectToLogin(ctx, sessionExpiredMessage)
			return
		}
		r.logger.Error("could not save employee", zap.String("mode", string(mode)), zap.String("id", id), zap.Error(err))
		r.renderEmployeeForm(ctx, statusForServiceError(err), mode, id, draft, submissionID, nil,
			errorNotice(fmt.Sprintf("could not %s employee, please try again", mode)))
		return
	}
	r.guard.Accept(submissionID)

	message := "Employee created"
	if mode == editMode {
		message = "Employee updated"
	}
	r.renderNotice(ctx, http.StatusOK, successNotice(message), dashboardPath, true)
}

// bindEmployeeDraft reads the text fields and the image of the employee form.
// The image is either a new upload or the one retained from a previous attempt
func (r *frontendRouter) bindEmployeeDraft(ctx *gin.Context) (entities.EmployeeDraft, error) {
	var draft entities.EmployeeDraft
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, r.formBodyLimit())

	if err := ctx.ShouldBind(&draft); err != nil {
		return draft, r.formReadError(err)
	}

	fileHeader, err := ctx.FormFile(string(entities.EmployeeImage))
	switch {
	case err == nil:
		image, err := r.readUploadedImage(fileHeader)
		if err != nil {
			return draft, err
		}
		draft.Image = image
	case err == http.ErrMissingFile || err == http.ErrNotMultipart:
		retained := ctx.PostForm(retainedImageField)
		if retained == "" {
			return draft, nil
		}
		image, err := entities.ParseDataURI(ctx.PostForm(retainedImageNameField), retained)
		if err != nil {
			r.logger.Warn("could not restore retained image", zap.Error(err))
			return draft, nil
		}
		if err := r.checkRetainedImage(image); err != nil {
			return draft, err
		}
		draft.Image = image
	default:
		return draft, r.formReadError(err)
	}

	return draft, nil
}

func (r *frontendRouter) readUploadedImage(fileHeader *multipart.FileHeader) (*entities.ImageResource, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !r.isAllowedImageType(ext) {
		return nil, errors.Errorf("image must be one of %s", strings.Join(r.cfg.Employees.ImageFileTypes, ", "))
	}
	if fileHeader.Size > r.cfg.Employees.MaxImageSize {
		return nil, r.imageTooLargeError()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "could not read image")
	}
	defer file.Close()

	data, err := ioutil.ReadAll(io.LimitReader(file, r.cfg.Employees.MaxImageSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "could not read image")
	}
	if int64(len(data)) > r.cfg.Employees.MaxImageSize {
		return nil, r.imageTooLargeError()
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}

	return entities.NewImageResource(filepath.Base(fileHeader.Filename), data), nil
}

// checkRetainedImage applies the upload rules to an image sent back as a data URI
func (r *frontendRouter) checkRetainedImage(image *entities.ImageResource) error {
	if !r.isAllowedImageType(strings.ToLower(filepath.Ext(image.FileName))) {
		return errors.Errorf("image must be one of %s", strings.Join(r.cfg.Employees.ImageFileTypes, ", "))
	}
	if int64(len(image.Data)) > r.cfg.Employees.MaxImageSize {
		return r.imageTooLargeError()
	}
	return nil
}

// formBodyLimit bounds the form body. A form may carry a new upload and the retained
// copy of the previous one, base64 encoded, at the same time
func (r *frontendRouter) formBodyLimit() int64 {
	maxImage := r.cfg.Employees.MaxImageSize
	return maxImage + int64(base64.StdEncoding.EncodedLen(int(maxImage))) + formOverhead
}

func (r *frontendRouter) isAllowedImageType(ext string) bool {
	for _, allowed := range r.cfg.Employees.ImageFileTypes {
		if strings.EqualFold(allowed, ext) {
			return true
		}
	}
	return false
}

func (r *frontendRouter) imageTooLargeError() error {
	return errors.Errorf("image must not be larger than %d KB", r.cfg.Employees.MaxImageSize>>10)
}

func (r *frontendRouter) formReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return r.imageTooLargeError()
	}
	return errors.New("the form could not be read, please try again")
}

func (r *frontendRouter) submissionIDOrNew(id string) string {
	if id == "" {
		return r.guard.NewID()
	}
	return id
}

func (r *frontendRouter) renderEmployeeForm(ctx *gin.Context, status int, mode formMode, id string,
	draft entities.EmployeeDraft, submissionID string, formErrors []string, notices ...notice) {
	action := "/create-employee"
	if mode == editMode {
		action = "/edit-employee/" + id
	}

	r.render(ctx, status, employeeFormTemplate, employeeFormDataModel{
		Mode:         mode,
		Action:       action,
		EmployeeID:   id,
		Draft:        draft,
		SubmissionID: submissionID,
		Errors:       formErrors,
		Designations: entities.Designations,
		Genders:      entities.Genders,
		Courses:      entities.Courses,
		ImageTypes:   strings.Join(r.cfg.Employees.ImageFileTypes, ","),
	}, notices...)
}

// renderNotice renders a page holding a single notice.
// With autoRedirect the browser moves on to redirectURL after the configured delay
func (r *frontendRouter) renderNotice(ctx *gin.Context, status int, n notice, redirectURL string, autoRedirect bool) {
	model := templateDataModel{
		Data: noticeDataModel{
			Notice:      n,
			RedirectURL: redirectURL,
		},
	}
	if autoRedirect {
		after := int(math.Ceil(r.cfg.Employees.RedirectDelay.Seconds()))
		if after < 1 {
			after = 1
		}
		model.Refresh = &pageRefresh{After: after, URL: redirectURL}
	}

	r.renderPage(ctx, status, noticeTemplate, model)
}
