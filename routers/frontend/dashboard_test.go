package frontend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/hs_employees/entities"
	"github.com/unicsmcr/hs_employees/services"
	"github.com/unicsmcr/hs_employees/testutils"
)

const testEmployeeID = "5f1a2b3c4d5e6f7a8b9c0d1e"

var testEmployee = entities.Employee{
	ID:          testEmployeeID,
	Name:        "Ana Tester",
	Email:       "ana@example.com",
	Mobile:      "0123456789",
	Designation: entities.Tester,
	Gender:      entities.Female,
	Courses:     []string{"React", "Python"},
}

func Test_Dashboard__should_fetch_employees_with_query(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantQuery entities.EmployeeQuery
	}{
		{
			name:      "search term fetches first page",
			target:    "/dashboard?search=ana",
			wantQuery: entities.EmployeeQuery{Search: "ana", Page: 1, Limit: 10},
		},
		{
			name:      "page is passed through",
			target:    "/dashboard?search=ana&page=3",
			wantQuery: entities.EmployeeQuery{Search: "ana", Page: 3, Limit: 10},
		},
		{
			name:      "page 0 is clamped to 1",
			target:    "/dashboard?page=0",
			wantQuery: entities.EmployeeQuery{Page: 1, Limit: 10},
		},
		{
			name:      "malformed page falls back to 1",
			target:    "/dashboard?page=abc",
			wantQuery: entities.EmployeeQuery{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t, nil)
			setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, tt.wantQuery).
				Return(&entities.EmployeePage{Employees: []entities.Employee{}, TotalPages: 1}, nil).Times(1)

			w := setup.get(t, tt.target)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func Test_Dashboard__should_render_rows(t *testing.T) {
	setup := setupTest(t, nil)
	withImage := testEmployee
	withImage.Image = entities.NewImageResource("", testPNG)
	withoutImage := testEmployee
	withoutImage.ID = "5f1a2b3c4d5e6f7a8b9c0d1f"
	withoutImage.Name = "Bob Tester"

	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
		Return(&entities.EmployeePage{Employees: []entities.Employee{withImage, withoutImage}, TotalPages: 1}, nil)

	w := setup.get(t, "/dashboard")
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(body, `class="employee-row"`))
	assert.Contains(t, body, "Ana Tester")
	assert.Contains(t, body, "Bob Tester")
	assert.Contains(t, body, "React, Python")
	assert.Contains(t, body, `src="data:image/png;base64,`)
	assert.Contains(t, body, "No Image")
	assert.Contains(t, body, `href="/edit-employee/`+testEmployeeID+`"`)
	assert.Contains(t, body, "Welcome, "+testDisplayName)
}

func Test_Dashboard__should_render_empty_last_page(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, entities.EmployeeQuery{Search: "ana", Page: 2, Limit: 10}).
		Return(&entities.EmployeePage{Employees: []entities.Employee{}, TotalPages: 1}, nil)

	w := setup.get(t, "/dashboard?search=ana&page=2")
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body, `class="employee-row"`)
	assert.Contains(t, body, `id="next-page" disabled`)
	assert.Contains(t, body, `href="/dashboard?search=ana&amp;view=`)
}

func Test_Dashboard__should_render_pagination_controls(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		totalPages   uint
		wantPrev     string
		wantNext     string
		wantDisabled []string
	}{
		{
			name:         "first page",
			target:       "/dashboard?view=tab1",
			totalPages:   3,
			wantNext:     `href="/dashboard?page=2&amp;view=tab1"`,
			wantDisabled: []string{`id="prev-page" disabled`},
		},
		{
			name:       "middle page",
			target:     "/dashboard?search=ana&page=2&view=tab1",
			totalPages: 3,
			wantPrev:   `href="/dashboard?search=ana&amp;view=tab1"`,
			wantNext:   `href="/dashboard?page=3&amp;search=ana&amp;view=tab1"`,
		},
		{
			name:         "last page",
			target:       "/dashboard?page=3&view=tab1",
			totalPages:   3,
			wantPrev:     `href="/dashboard?page=2&amp;view=tab1"`,
			wantDisabled: []string{`id="next-page" disabled`},
		},
		{
			name:         "no pages",
			target:       "/dashboard",
			totalPages:   0,
			wantDisabled: []string{`id="prev-page" disabled`, `id="next-page" disabled`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t, nil)
			setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
				Return(&entities.EmployeePage{Employees: []entities.Employee{testEmployee}, TotalPages: tt.totalPages}, nil)

			body := setup.get(t, tt.target).Body.String()

			if tt.wantPrev != "" {
				assert.Contains(t, body, tt.wantPrev)
			}
			if tt.wantNext != "" {
				assert.Contains(t, body, tt.wantNext)
			}
			for _, disabled := range tt.wantDisabled {
				assert.Contains(t, body, disabled)
			}
		})
	}
}

func Test_Dashboard__should_render_error_state_when_fetch_fails(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
		Return(nil, errors.Wrap(services.ErrUnavailable, "connection refused"))

	w := setup.get(t, "/dashboard")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "could not load employees")
	assert.NotContains(t, w.Body.String(), `class="employee-row"`)
	assert.NotContains(t, w.Body.String(), `id="next-page"`)
}

func Test_Dashboard__should_redirect_to_login_when_API_rejects_token(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).Return(nil, services.ErrUnauthorized)

	w := setup.get(t, "/dashboard")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func Test_Dashboard__should_discard_superseded_response(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, query entities.EmployeeQuery) (*entities.EmployeePage, error) {
			// a newer list request for the same session starts while this one is in flight
			_, newer := setup.router.tracker.Begin(context.Background(), listFetchKey(token, "tab1"))
			defer newer.Done()

			assert.Error(t, ctx.Err())
			return &entities.EmployeePage{Employees: []entities.Employee{testEmployee}, TotalPages: 1}, nil
		})

	w := setup.get(t, "/dashboard?search=an&view=tab1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotContains(t, w.Body.String(), "Ana Tester")
}

func Test_Dashboard__should_not_discard_response_when_another_tab_fetches(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(ctx context.Context, token string, query entities.EmployeeQuery) (*entities.EmployeePage, error) {
			// the same session loads the list in a second tab while this one is in flight
			_, other := setup.router.tracker.Begin(context.Background(), listFetchKey(token, "tab2"))
			defer other.Done()

			assert.NoError(t, ctx.Err())
			return &entities.EmployeePage{Employees: []entities.Employee{testEmployee}, TotalPages: 1}, nil
		})

	w := setup.get(t, "/dashboard?view=tab1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Tester")
}

func Test_Dashboard__should_give_each_fresh_load_its_own_view(t *testing.T) {
	setup := setupTest(t, nil)
	setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, gomock.Any()).
		Return(&entities.EmployeePage{Employees: []entities.Employee{testEmployee}, TotalPages: 1}, nil).Times(2)
	viewPattern := regexp.MustCompile(`name="view" value="([0-9a-f-]+)"`)

	first := viewPattern.FindStringSubmatch(setup.get(t, "/dashboard").Body.String())
	second := viewPattern.FindStringSubmatch(setup.get(t, "/dashboard").Body.String())

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.NotEqual(t, first[1], second[1])
}

func Test_DeleteEmployee(t *testing.T) {
	tests := []struct {
		name         string
		prep         func(*testSetup)
		id           string
		wantResCode  int
		wantLocation string
		wantFlash    bool
	}{
		{
			name:        "should return 404 for malformed id",
			id:          "not-an-id",
			wantResCode: http.StatusNotFound,
		},
		{
			name: "should redirect back to list after delete",
			prep: func(setup *testSetup) {
				setup.mockEService.EXPECT().DeleteEmployeeWithID(gomock.Any(), testToken, testEmployeeID).Return(nil)
			},
			id:           testEmployeeID,
			wantResCode:  http.StatusSeeOther,
			wantLocation: "/dashboard?page=2&search=ana&view=tab1",
			wantFlash:    true,
		},
		{
			name: "should redirect back to list when delete fails",
			prep: func(setup *testSetup) {
				setup.mockEService.EXPECT().DeleteEmployeeWithID(gomock.Any(), testToken, testEmployeeID).Return(services.ErrUnavailable)
			},
			id:           testEmployeeID,
			wantResCode:  http.StatusSeeOther,
			wantLocation: "/dashboard?page=2&search=ana&view=tab1",
			wantFlash:    true,
		},
		{
			name: "should redirect to login when API rejects token",
			prep: func(setup *testSetup) {
				setup.mockEService.EXPECT().DeleteEmployeeWithID(gomock.Any(), testToken, testEmployeeID).Return(services.ErrUnauthorized)
			},
			id:           testEmployeeID,
			wantResCode:  http.StatusSeeOther,
			wantLocation: "/login",
			wantFlash:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t, nil)
			if tt.prep != nil {
				tt.prep(setup)
			}

			w := setup.postForm(t, "/dashboard/delete/"+tt.id, url.Values{"search": {"ana"}, "page": {"2"}, viewParam: {"tab1"}})

			assert.Equal(t, tt.wantResCode, w.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			assert.Equal(t, tt.wantFlash, testutils.CookieFromRecorder(w, flashCookieName) != nil)
		})
	}
}

func Test_DeleteEmployee__failure_should_keep_item_in_list(t *testing.T) {
	setup := setupTest(t, nil)
	gomock.InOrder(
		setup.mockEService.EXPECT().DeleteEmployeeWithID(gomock.Any(), testToken, testEmployeeID).
			Return(errors.Wrap(services.ErrRejected, "employees API responded with status 400")),
		setup.mockEService.EXPECT().GetEmployees(gomock.Any(), testToken, entities.EmployeeQuery{Page: 1, Limit: 10}).
			Return(&entities.EmployeePage{Employees: []entities.Employee{testEmployee}, TotalPages: 1}, nil),
	)

	w := setup.postForm(t, "/dashboard/delete/"+testEmployeeID, url.Values{})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))

	req := setup.authenticated(t, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	testutils.CopyCookies(w, req)
	w = setup.do(req)
	body := w.Body.String()

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "could not delete employee")
	assert.Contains(t, body, "Ana Tester")
	assert.Equal(t, 1, strings.Count(body, `class="employee-row"`))
}

func Test_parsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want uint
	}{
		{raw: "", want: 1},
		{raw: "0", want: 1},
		{raw: "-2", want: 1},
		{raw: "abc", want: 1},
		{raw: "1", want: 1},
		{raw: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parsePage(tt.raw))
		})
	}
}

func Test_dashboardURL(t *testing.T) {
	assert.Equal(t, "/dashboard", dashboardURL("", "", 1))
	assert.Equal(t, "/dashboard?page=2", dashboardURL("", "", 2))
	assert.Equal(t, "/dashboard?page=2&search=ana+b", dashboardURL("", "ana b", 2))
	assert.Equal(t, "/dashboard?search=ana&view=tab1", dashboardURL("tab1", "ana", 1))
}
