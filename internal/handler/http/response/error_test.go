package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hris-console-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_ValidationListsEveryMessage(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add("paid_days", "paid_days must be at most 31")
	errs.Add("paid_days", "paid_days must not exceed working_days")
	errs.Add("month", "month must be at least 1")

	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("failed to save payroll: %w", errs))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, []string{
		"paid_days must be at most 31",
		"paid_days must not exceed working_days",
	}, body.Error.Details["paid_days"])
	assert.Equal(t, []string{"month must be at least 1"}, body.Error.Details["month"])
}

func TestHandleError_ImportInProgressIsConflict(t *testing.T) {
	w := httptest.NewRecorder()
	message := HandleError(w, employee.ErrImportInProgress)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Import is already being submitted", message)
}

func TestHandleError_UnknownIsInternal(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
