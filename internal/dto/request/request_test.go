package request

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_JSON(t *testing.T) {
	body := `{"firstName":"Ann","lastName":"Lee","departureCity":"NYC","arrivalCity":"SFO",
		"departureDate":"2024-06-01","returnDate":"2024-06-10","passengers":2,"class":"economy","tripType":"round-trip"}`
	r := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json; charset=utf-8")

	var req CreateBookingRequest
	require.NoError(t, Bind(r, &req))
	assert.Empty(t, utils.ValidateStruct(req))

	b := req.ToEntity()
	assert.Equal(t, "Ann", b.FirstName)
	assert.Equal(t, 2, b.Passengers)
	assert.Equal(t, entity.CabinEconomy, b.Class)
	assert.Equal(t, entity.TripRoundTrip, b.TripType)
}

func TestBind_Form(t *testing.T) {
	form := url.Values{
		"firstName": {" Ann "}, "lastName": {"Lee"}, "departureCity": {"NYC"}, "arrivalCity": {"SFO"},
		"departureDate": {"2024-06-01"}, "returnDate": {"2024-06-10"}, "passengers": {"2"},
		"class": {"business"}, "tripType": {"one-way"},
	}
	r := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var req CreateBookingRequest
	require.NoError(t, Bind(r, &req))
	assert.Equal(t, "Ann", req.FirstName)
	assert.Equal(t, 2, req.Passengers)
	assert.Empty(t, utils.ValidateStruct(req))
}

func TestBind_FormBadPassengers(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader("passengers=two"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var req CreateBookingRequest
	assert.EqualError(t, Bind(r, &req), "passengers must be a whole number")
}

func TestBind_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{"))
	r.Header.Set("Content-Type", "application/json")

	var req SignupRequest
	assert.Error(t, Bind(r, &req))
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	req := CreateBookingRequest{
		FirstName: "Ann", LastName: "Lee", DepartureCity: "NYC", ArrivalCity: "SFO",
		DepartureDate: "06/01/2024", ReturnDate: "2024-06-10", Passengers: 0,
		Class: "cargo", TripType: "round-trip",
	}

	errs := utils.ValidateStruct(req)
	assert.Equal(t, "Must be a date in 2006-01-02 format", errs["DepartureDate"])
	assert.Equal(t, "This field is required", errs["Passengers"])
	assert.Equal(t, "Must be one of: economy, premium-economy, business, first", errs["Class"])
	assert.Len(t, errs, 3)
}

func TestFlexibleID(t *testing.T) {
	var req UpdateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bookingId": 42}`), &req))
	assert.Equal(t, FlexibleID("42"), req.BookingID)

	require.NoError(t, json.Unmarshal([]byte(`{"bookingId": "17"}`), &req))
	assert.Equal(t, FlexibleID("17"), req.BookingID)

	assert.Error(t, json.Unmarshal([]byte(`{"bookingId": true}`), &req))
}

func TestUpdateBookingRequest_ToPatch(t *testing.T) {
	blank := "  "
	lastName := "X"
	flightClass := "first"
	req := UpdateBookingRequest{
		BookingID:   "7",
		FirstName:   &blank,
		LastName:    &lastName,
		FlightClass: &flightClass,
	}

	patch := req.ToPatch()
	assert.Nil(t, patch.FirstName)
	require.NotNil(t, patch.LastName)
	assert.Equal(t, "X", *patch.LastName)
	require.NotNil(t, patch.Class)
	assert.Equal(t, entity.CabinFirst, *patch.Class)
	assert.Nil(t, patch.TripType)
	assert.False(t, patch.Empty())
}

func TestUpdateBookingRequest_ClassWinsOverFlightClass(t *testing.T) {
	class := "business"
	flightClass := "first"
	req := UpdateBookingRequest{BookingID: "7", Class: &class, FlightClass: &flightClass}

	patch := req.ToPatch()
	require.NotNil(t, patch.Class)
	assert.Equal(t, entity.CabinBusiness, *patch.Class)
}

func TestUpdateBookingRequest_FormOnlyID(t *testing.T) {
	var req UpdateBookingRequest
	require.NoError(t, req.BindForm(url.Values{"bookingId": {"7"}, "lastName": {""}}))

	assert.Equal(t, FlexibleID("7"), req.BookingID)
	assert.True(t, req.ToPatch().Empty())
}

func TestPaginatedRequest(t *testing.T) {
	var p PaginatedRequest
	require.NoError(t, p.BindForm(url.Values{"page": {"3"}, "per_page": {"500"}}))

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit())
	assert.Equal(t, 200, p.Offset())

	require.NoError(t, p.BindForm(url.Values{"page": {"x"}}))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit())
	assert.Equal(t, 0, p.Offset())
}

func TestUpdateBookingRequest_NormalizeJSONBlanks(t *testing.T) {
	var req UpdateBookingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"bookingId":" 1 ","departureDate":"","class":"  ","tripType":"one-way"}`), &req))

	req.Normalize()
	assert.Equal(t, FlexibleID("1"), req.BookingID)
	assert.Nil(t, req.DepartureDate)
	assert.Nil(t, req.Class)
	require.NotNil(t, req.TripType)
	assert.Empty(t, utils.ValidateStruct(req))
}
