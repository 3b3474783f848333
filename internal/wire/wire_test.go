package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"flight-booking/internal/data/repository"
	"flight-booking/internal/events"
	"flight-booking/internal/session"
	"flight-booking/pkg/utils"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var bookingColumns = []string{
	"id", "first_name", "last_name", "departure_city", "arrival_city",
	"departure_date", "return_date", "passengers", "class", "trip_type",
}

var userColumns = []string{"id", "first_name", "last_name", "email", "password_hash", "contact_id", "created_at"}

type testApp struct {
	router http.Handler
	mock   pgxmock.PgxPoolIface
}

func newTestApp(t *testing.T, mutate func(*utils.Config)) *testApp {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := &utils.Config{
		Session: utils.SessionConfig{CookieName: "flight_session", IdleTimeout: 30 * time.Minute, Lifetime: time.Hour},
		Auth:    utils.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
	if mutate != nil {
		mutate(cfg)
	}

	log := zap.NewNop()
	sessions := session.New(cfg.Session, memstore.New(), log)
	app := Wiring(repository.NewRepository(mock, log), sessions, events.NoopPublisher{}, cfg, log)

	return &testApp{router: app.Router, mock: mock}
}

func (a *testApp) do(t *testing.T, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func formRequest(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestBookingScenario_CreateThenEditSearch(t *testing.T) {
	app := newTestApp(t, nil)

	app.mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs("Ann", "Lee", "NYC", "SFO", "2024-06-01", "2024-06-10", 2, "economy", "round-trip").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	app.mock.ExpectQuery(`FROM bookings\s+WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(bookingColumns).
			AddRow(int64(7), "Ann", "Lee", "NYC", "SFO", "2024-06-01", "2024-06-10", 2, "economy", "round-trip"))

	rec := app.do(t, jsonRequest(http.MethodPost, "/booking",
		`{"firstName":"Ann","lastName":"Lee","departureCity":"NYC","arrivalCity":"SFO","departureDate":"2024-06-01","returnDate":"2024-06-10","passengers":2,"class":"economy","tripType":"round-trip"}`))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/confirmation", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/confirmation", nil), cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"booking_id":7`)

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/editsearch?booking_id=7", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var booking map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, "Ann", booking["FirstName"])

	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestDeleteBooking_NonDigitLeavesStoreUntouched(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, httptest.NewRequest(http.MethodDelete, "/deleteBooking/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestDeleteBooking_NotFound(t *testing.T) {
	app := newTestApp(t, nil)
	app.mock.ExpectExec(`DELETE FROM bookings`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	rec := app.do(t, httptest.NewRequest(http.MethodDelete, "/deleteBooking/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignupScenario_DuplicateEmail(t *testing.T) {
	app := newTestApp(t, nil)
	form := url.Values{"firstName": {"Ann"}, "lastName": {"Lee"}, "email": {"ann@example.com"}, "password": {"pw"}}

	app.mock.ExpectQuery(`FROM registered_users`).
		WithArgs("ann@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))
	app.mock.ExpectQuery(`INSERT INTO registered_users`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	rec := app.do(t, formRequest("/signup", form))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/registered", rec.Header().Get("Location"))

	app.mock.ExpectQuery(`FROM registered_users`).
		WithArgs("ann@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(int64(1), "Ann", "Lee", "ann@example.com", "hash", (*int64)(nil), time.Now()))

	rec = app.do(t, formRequest("/signup", form))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// no second INSERT was issued
	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestLoginScenario_GuardedRoutes(t *testing.T) {
	app := newTestApp(t, nil)
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	userRow := func() *pgxmock.Rows {
		return pgxmock.NewRows(userColumns).AddRow(int64(1), "Ann", "Lee", "ann@example.com", string(hash), (*int64)(nil), time.Now())
	}

	app.mock.ExpectQuery(`FROM registered_users`).WithArgs("ann@example.com").WillReturnRows(userRow())
	rec = app.do(t, formRequest("/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())

	app.mock.ExpectQuery(`FROM registered_users`).WithArgs("ann@example.com").WillReturnRows(userRow())
	rec = app.do(t, formRequest("/login", url.Values{"email": {"ann@example.com"}, "password": {"pw"}}))
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/protected", nil), cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is a protected route", rec.Body.String())

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/profile", nil), cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ann@example.com")

	rec = app.do(t, httptest.NewRequest(http.MethodPost, "/logout", nil), cookies...)
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/profile", nil), cookies...)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestLogin_UnknownEmail(t *testing.T) {
	app := newTestApp(t, nil)
	app.mock.ExpectQuery(`FROM registered_users`).
		WithArgs("ghost@example.com").
		WillReturnRows(pgxmock.NewRows(userColumns))

	rec := app.do(t, formRequest("/login", url.Values{"email": {"ghost@example.com"}, "password": {"pw"}}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBookingRequireAuth(t *testing.T) {
	app := newTestApp(t, func(cfg *utils.Config) { cfg.Booking.RequireAuth = true })

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/search?lastName=Lee", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = app.do(t, httptest.NewRequest(http.MethodDelete, "/deleteBooking/7", nil))
	assert.Equal(t, http.StatusFound, rec.Code)

	assert.NoError(t, app.mock.ExpectationsWereMet())
}

func TestContactsListIsGuarded(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/contacts", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t, nil)

	rec := app.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = app.do(t, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}
