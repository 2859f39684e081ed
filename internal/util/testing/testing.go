package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RequestOptions struct {
	Method         string
	URL            string
	AuthToken      string
	Body           any
	ExpectedStatus int
}

type Response struct {
	Code int
	Body []byte
}

func MakeRequest(t *testing.T, router *gin.Engine, options RequestOptions) *Response {
	t.Helper()

	var requestBody *bytes.Buffer
	if options.Body != nil {
		bodyJSON, err := json.Marshal(options.Body)
		require.NoError(t, err)
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(options.Method, options.URL, requestBody)
	require.NoError(t, err)

	if options.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if options.AuthToken != "" {
		req.Header.Set("Authorization", options.AuthToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if options.ExpectedStatus != 0 {
		assert.Equal(t, options.ExpectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())
	}

	return &Response{
		Code: w.Code,
		Body: w.Body.Bytes(),
	}
}

func MakeGetRequest(t *testing.T, router *gin.Engine, url, authToken string, expectedStatus int) *Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodGet,
		URL:            url,
		AuthToken:      authToken,
		ExpectedStatus: expectedStatus,
	})
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPost,
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakePutRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *Response {
	t.Helper()

	return MakeRequest(t, router, RequestOptions{
		Method:         http.MethodPut,
		URL:            url,
		AuthToken:      authToken,
		Body:           body,
		ExpectedStatus: expectedStatus,
	})
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	target any,
) {
	t.Helper()

	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, target))
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	target any,
) {
	t.Helper()

	resp := MakePostRequest(t, router, url, authToken, body, expectedStatus)
	require.NoError(t, json.Unmarshal(resp.Body, target))
}
