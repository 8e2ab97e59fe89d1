package controllers

import (
	"app/base/core"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var contentTypeCSV = "text/csv"
var contentTypeJSON = "application/json"

func PrepareRequest(method string, url string, body io.Reader) (w *httptest.ResponseRecorder, req *http.Request) {
	req, _ = http.NewRequest(method, url, body)
	return httptest.NewRecorder(), req
}

func CheckHeader(req *http.Request, contentType *string) {
	if contentType != nil {
		req.Header.Add("Accept", *contentType)
	}
}

func CreateRequest(method string, url string, body io.Reader, contentType *string, handler gin.HandlerFunc) (
	w *httptest.ResponseRecorder) {
	w, req := PrepareRequest(method, url, body)
	CheckHeader(req, contentType)
	core.InitRouter(handler).ServeHTTP(w, req)
	return w
}

func CreateRequestRouterWithParams(method string, url string, body io.Reader, contentType *string,
	handler gin.HandlerFunc, routerMethod string, routerPath string) (w *httptest.ResponseRecorder) {
	w, req := PrepareRequest(method, url, body)
	CheckHeader(req, contentType)
	core.InitRouterWithParams(handler, routerMethod, routerPath).ServeHTTP(w, req)
	return w
}

func ParseResponseBody(t *testing.T, bytes []byte, out interface{}) {
	err := json.Unmarshal(bytes, out)
	assert.Nil(t, err, string(bytes))
}

func CheckResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, output interface{}) {
	assert.Equal(t, expectedStatus, w.Code)
	ParseResponseBody(t, w.Body.Bytes(), output)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	assert.Nil(t, err)
	return d
}

func testTimeNow() time.Time {
	return time.Now().Truncate(time.Second)
}
