package entities

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// EmployeeField is the name of an employee field as used by the employees API and the employee forms
type EmployeeField string

const (
	EmployeeID          EmployeeField = "_id"
	EmployeeName        EmployeeField = "f_Name"
	EmployeeEmail       EmployeeField = "f_Email"
	EmployeeMobile      EmployeeField = "f_Mobile"
	EmployeeDesignation EmployeeField = "f_Designation"
	EmployeeGender      EmployeeField = "f_Gender"
	EmployeeCourses     EmployeeField = "f_Course"
	EmployeeImage       EmployeeField = "f_Image"
)

// Designation is the role of an employee
type Designation string

const (
	Manager   Designation = "Manager"
	Developer Designation = "Developer"
	Tester    Designation = "Tester"
)

// Designations lists the valid designations in display order
var Designations = []Designation{Manager, Developer, Tester}

// Gender of an employee
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Genders lists the valid genders in display order
var Genders = []Gender{Male, Female}

// Courses lists the courses an employee can take, in display order
var Courses = []string{"React", "Node", "JavaScript", "Python"}

// MobileNumber is a phone number kept as a string of digits.
// The employees API may send it either as a JSON string or as a JSON number
type MobileNumber string

// UnmarshalJSON accepts both quoted and numeric mobile numbers
func (m *MobileNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*m = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return errors.Wrap(err, "could not unquote mobile number")
		}
		*m = MobileNumber(unquoted)
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return errors.Errorf("mobile number %s is neither a string nor a number", raw)
	}
	*m = MobileNumber(raw)
	return nil
}

// Employee is the struct to store employees as returned by the employees API
type Employee struct {
	ID          string         `json:"_id"`
	Name        string         `json:"f_Name"`
	Email       string         `json:"f_Email"`
	Mobile      MobileNumber   `json:"f_Mobile"`
	Designation Designation    `json:"f_Designation"`
	Gender      Gender         `json:"f_Gender"`
	Courses     []string       `json:"f_Course"`
	Image       *ImageResource `json:"f_Image,omitempty"`
}

// Draft returns a form draft pre-filled with the employee's values
func (e Employee) Draft() EmployeeDraft {
	courses := make([]string, len(e.Courses))
	copy(courses, e.Courses)

	return EmployeeDraft{
		Name:        e.Name,
		Email:       e.Email,
		Mobile:      string(e.Mobile),
		Designation: string(e.Designation),
		Gender:      string(e.Gender),
		Courses:     courses,
		Image:       e.Image,
	}
}

// EmployeeDraft is the mutable copy of an employee bound to the create and edit forms
type EmployeeDraft struct {
	Name        string   `form:"f_Name" validate:"required"`
	Email       string   `form:"f_Email" validate:"required"`
	Mobile      string   `form:"f_Mobile" validate:"required"`
	Designation string   `form:"f_Designation" validate:"required,oneof=Manager Developer Tester"`
	Gender      string   `form:"f_Gender" validate:"required,oneof=Male Female"`
	Courses     []string `form:"f_Course" validate:"dive,oneof=React Node JavaScript Python"`
	// Image is attached separately since it arrives either as an upload or as a retained data URI
	Image *ImageResource `form:"-"`
}

// HasCourse reports whether course is selected in the draft
func (d EmployeeDraft) HasCourse(course string) bool {
	for _, c := range d.Courses {
		if c == course {
			return true
		}
	}
	return false
}

// EmployeeQuery are the parameters of an employee list fetch
type EmployeeQuery struct {
	Search string
	Page   uint
	Limit  uint
}

// EmployeePage is one page of the employee list
type EmployeePage struct {
	Employees  []Employee `json:"employees"`
	TotalPages uint       `json:"totalPages"`
}
