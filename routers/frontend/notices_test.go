package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/hs_employees/testutils"
)

func Test_setFlash__should_be_consumed_once_by_useFlash(t *testing.T) {
	w := httptest.NewRecorder()
	testCtx, _ := gin.CreateTestContext(w)
	testCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	setFlash(testCtx, errorNotice("could not delete employee"))

	nextW := httptest.NewRecorder()
	nextCtx, _ := gin.CreateTestContext(nextW)
	nextCtx.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	testutils.CopyCookies(w, nextCtx.Request)

	n := useFlash(nextCtx)
	require.NotNil(t, n)
	assert.Equal(t, severityError, n.Severity)
	assert.Equal(t, "could not delete employee", n.Message)

	expired := testutils.CookieFromRecorder(nextW, flashCookieName)
	require.NotNil(t, expired)
	assert.True(t, expired.MaxAge < 0)
}

func Test_useFlash__should_return_nil(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{
			name: "when no flash is queued",
		},
		{
			name:   "when flash is not base64",
			cookie: &http.Cookie{Name: flashCookieName, Value: "%%%"},
		},
		{
			name:   "when flash is not JSON",
			cookie: &http.Cookie{Name: flashCookieName, Value: "bm90IGpzb24="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
			testCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				testCtx.Request.AddCookie(tt.cookie)
			}

			assert.Nil(t, useFlash(testCtx))
		})
	}
}
