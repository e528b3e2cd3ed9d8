package rest

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/services"
	"go.uber.org/zap"
)

const (
	employeesPath      = "/employees"
	addEmployeePath    = "/employees/add"
	editEmployeePath   = "/employees/edit/"
	deleteEmployeePath = "/employees/delete/"

	coursesField = "f_Course[]"
)

type employeeService struct {
	logger *zap.Logger
	client *Client
}

// NewEmployeeService creates a new EmployeeService backed by the employees API
func NewEmployeeService(logger *zap.Logger, client *Client) services.EmployeeService {
	return &employeeService{
		logger: logger,
		client: client,
	}
}

func (s *employeeService) GetEmployees(ctx context.Context, token string, query entities.EmployeeQuery) (*entities.EmployeePage, error) {
	params := url.Values{}
	params.Set("search", query.Search)
	params.Set("page", strconv.FormatUint(uint64(query.Page), 10))
	params.Set("limit", strconv.FormatUint(uint64(query.Limit), 10))

	res, err := s.client.Get(ctx, employeesPath, params, token)
	if err != nil {
		return nil, err
	}

	var page entities.EmployeePage
	err = DecodeResponse(res, &page)
	if err != nil {
		return nil, err
	}
	if page.Employees == nil {
		page.Employees = []entities.Employee{}
	}

	return &page, nil
}

func (s *employeeService) GetEmployeeWithID(ctx context.Context, token string, id string) (*entities.Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, services.ErrInvalidID
	}

	res, err := s.client.Get(ctx, employeesPath+"/"+url.PathEscape(id), nil, token)
	if err != nil {
		return nil, err
	}

	var employee entities.Employee
	err = DecodeResponse(res, &employee)
	if err != nil {
		return nil, err
	}
	if employee.ID == "" {
		employee.ID = id
	}

	return &employee, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, token string, draft entities.EmployeeDraft) error {
	res, err := s.client.Post(ctx, addEmployeePath, employeeBody(draft), token)
	if err != nil {
		return err
	}
	DiscardResponse(res)

	return nil
}

func (s *employeeService) UpdateEmployeeWithID(ctx context.Context, token string, id string, draft entities.EmployeeDraft) error {
	if strings.TrimSpace(id) == "" {
		return services.ErrInvalidID
	}

	res, err := s.client.Put(ctx, editEmployeePath+url.PathEscape(id), employeeBody(draft), token)
	if err != nil {
		return err
	}
	DiscardResponse(res)

	return nil
}

func (s *employeeService) DeleteEmployeeWithID(ctx context.Context, token string, id string) error {
	if strings.TrimSpace(id) == "" {
		return services.ErrInvalidID
	}

	res, err := s.client.Delete(ctx, deleteEmployeePath+url.PathEscape(id), token)
	if err != nil {
		return errors.Wrapf(err, "could not delete employee %s", id)
	}
	DiscardResponse(res)

	return nil
}

// employeeBody builds the multipart payload shared by the create and edit calls
func employeeBody(draft entities.EmployeeDraft) *MultipartBody {
	body := NewMultipartBody().
		AddField(string(entities.EmployeeName), draft.Name).
		AddField(string(entities.EmployeeEmail), draft.Email).
		AddField(string(entities.EmployeeMobile), draft.Mobile).
		AddField(string(entities.EmployeeDesignation), draft.Designation).
		AddField(string(entities.EmployeeGender), draft.Gender)

	for _, course := range draft.Courses {
		body.AddField(coursesField, course)
	}

	if !draft.Image.IsEmpty() {
		body.AddFile(string(entities.EmployeeImage), draft.Image.FileName, draft.Image.ContentType, draft.Image.Data)
	}

	return body
}
