package testutils

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadedFile is a file attached to a multipart test request
type UploadedFile struct {
	FileName string
	Data     []byte
}

// NewMultipartRequest creates a multipart/form-data request with given method, target, form values and files
func NewMultipartRequest(method, target string, values url.Values, files map[string]UploadedFile) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, vals := range values {
		for _, val := range vals {
			if err := writer.WriteField(key, val); err != nil {
				panic(err)
			}
		}
	}
	for field, file := range files {
		part, err := writer.CreateFormFile(field, file.FileName)
		if err != nil {
			panic(err)
		}
		if _, err := part.Write(file.Data); err != nil {
			panic(err)
		}
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// NewFormRequest creates an application/x-www-form-urlencoded request with given method, target and form values
func NewFormRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// CookieFromRecorder returns the cookie with the given name set on the recorded response, or nil
func CookieFromRecorder(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// CopyCookies copies the cookies set on the recorded response onto req, skipping expired ones
func CopyCookies(w *httptest.ResponseRecorder, req *http.Request) {
	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 || strings.TrimSpace(cookie.Value) == "" {
			continue
		}
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
}

// SetEnvVars sets given environment variables and provides a callback function to restore the variables to their initial values
func SetEnvVars(vars map[string]string) (restoreVars func()) {
	initialValues := map[string]string{}
	unsetVars := map[string]bool{}

	for name, value := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		} else {
			unsetVars[name] = true
		}

		err := os.Setenv(name, value)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}

		for name := range unsetVars {
			err := os.Unsetenv(name)
			if err != nil {
				panic(err)
			}
		}
	}
}

// UnsetVars unsets given environment variables and provides a callback function to restore the variables to their initial values
func UnsetVars(vars ...string) (restoreVars func()) {
	initialValues := map[string]string{}
	for _, name := range vars {
		initialValue, exists := os.LookupEnv(name)
		if exists {
			initialValues[name] = initialValue
		}

		err := os.Unsetenv(name)
		if err != nil {
			panic(err)
		}
	}

	return func() {
		for name, value := range initialValues {
			err := os.Setenv(name, value)
			if err != nil {
				panic(err)
			}
		}
	}
}

// RouterGroupMatcher matches gin router groups with given path
type RouterGroupMatcher struct {
	// Path is the base path of the router groups to match
	Path string
}

// Matches implements the gomock.Matcher interface
func (r RouterGroupMatcher) Matches(x interface{}) bool {
	group, ok := x.(*gin.RouterGroup)
	if !ok || group == nil {
		return false
	}

	return group.BasePath() == r.Path
}

func (r RouterGroupMatcher) String() string {
	return fmt.Sprintf("router group's base path is %s", r.Path)
}

