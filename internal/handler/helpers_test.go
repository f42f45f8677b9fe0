package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportQueryContext(t *testing.T, query string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/reports/tco?"+query, nil)
	return c, rec
}

func TestParseReportQueryBounds(t *testing.T) {
	c, _ := reportQueryContext(t, "start_date=2026-01-01&end_date=2026-06-30")

	from, to, vehicleID, ok := parseReportQuery(c)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), to)
	assert.Nil(t, vehicleID)
}

// An end date before the start date is a valid, literal window: it simply
// matches nothing, so the handler must not reject it.
func TestParseReportQueryAcceptsReversedBounds(t *testing.T) {
	c, rec := reportQueryContext(t, "start_date=2026-06-30&end_date=2026-01-01")

	from, to, _, ok := parseReportQuery(c)
	require.True(t, ok)
	assert.True(t, to.Before(from))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestParseReportQueryRejectsBadDate(t *testing.T) {
	c, rec := reportQueryContext(t, "start_date=31-08-2026")

	_, _, _, ok := parseReportQuery(c)
	require.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "start_date")
}

func TestParseReportQueryRejectsBadVehicleID(t *testing.T) {
	c, rec := reportQueryContext(t, "vehicle_id=not-a-uuid")

	_, _, _, ok := parseReportQuery(c)
	require.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
