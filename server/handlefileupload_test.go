package server

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadCSV(t *testing.T, e *echo.Echo, field, filename, content string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/tax/calculations/upload-csv", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandleFileUpload(t *testing.T) {
	rec := uploadCSV(t, newTestServer(), "taxFile", "taxes.csv", "totalIncome\n850000\n1350000\n40000\n")
	require.Equal(t, http.StatusOK, rec.Code)

	want := `{"taxes":[` +
		`{"totalIncome":850000.00,"tax":31200.00,"effectiveRate":3.67},` +
		`{"totalIncome":1350000.00,"tax":98800.00,"effectiveRate":7.32},` +
		`{"totalIncome":40000.00,"tax":0.00,"effectiveRate":0.00}` +
		`]}`
	assert.JSONEq(t, want, rec.Body.String())
}

func TestHandleFileUploadHeaderOnly(t *testing.T) {
	rec := uploadCSV(t, newTestServer(), "taxFile", "taxes.csv", "totalIncome\n")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"taxes":[]}`, rec.Body.String())
}

func TestHandleFileUploadBadRequest(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		filename    string
		content     string
		wantMessage string
	}{
		{name: "Missing field", field: "file", filename: "taxes.csv", content: "totalIncome\n1\n", wantMessage: "taxFile is required"},
		{name: "Not csv", field: "taxFile", filename: "taxes.txt", content: "totalIncome\n1\n", wantMessage: "must end with '.csv'"},
		{name: "Wrong name", field: "taxFile", filename: "income.csv", content: "totalIncome\n1\n", wantMessage: "must be named 'taxes.csv'"},
		{name: "Empty file", field: "taxFile", filename: "taxes.csv", content: "", wantMessage: "file is empty"},
		{name: "Wrong header", field: "taxFile", filename: "taxes.csv", content: "income\n1\n", wantMessage: "header pattern not matched"},
		{name: "Extra column", field: "taxFile", filename: "taxes.csv", content: "totalIncome\n1,2\n", wantMessage: "exactly one entry (data row 1)"},
		{name: "Not a number", field: "taxFile", filename: "taxes.csv", content: "totalIncome\n1\nabc\n", wantMessage: "data row 2"},
		{name: "Negative total income", field: "taxFile", filename: "taxes.csv", content: "totalIncome\n-5\n", wantMessage: "Negative totalIncome at data row 1"},
	}

	e := newTestServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := uploadCSV(t, e, tt.field, tt.filename, tt.content)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}
