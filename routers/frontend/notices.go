package frontend

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type severity string

const (
	severitySuccess severity = "success"
	severityError   severity = "error"
	severityInfo    severity = "info"
)

// notice is a non-blocking message shown at the top of the next rendered page
type notice struct {
	Severity severity `json:"severity"`
	Message  string   `json:"message"`
}

func successNotice(message string) notice {
	return notice{Severity: severitySuccess, Message: message}
}

func errorNotice(message string) notice {
	return notice{Severity: severityError, Message: message}
}

func infoNotice(message string) notice {
	return notice{Severity: severityInfo, Message: message}
}

// setFlash queues n to be shown by the page rendered after a redirect
func setFlash(ctx *gin.Context, n notice) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	ctx.SetCookie(flashCookieName, base64.URLEncoding.EncodeToString(raw), flashMaxAge, "/", "", false, true)
}

// useFlash returns the queued notice, if any, and removes it so it is shown once
func useFlash(ctx *gin.Context) *notice {
	value, err := ctx.Cookie(flashCookieName)
	if err != nil || value == "" {
		return nil
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	var n notice
	if err := json.Unmarshal(raw, &n); err != nil || n.Message == "" {
		return nil
	}

	return &n
}
