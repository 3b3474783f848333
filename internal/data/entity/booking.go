package entity

type CabinClass string

const (
	CabinEconomy        CabinClass = "economy"
	CabinPremiumEconomy CabinClass = "premium-economy"
	CabinBusiness       CabinClass = "business"
	CabinFirst          CabinClass = "first"
)

type TripType string

const (
	TripOneWay    TripType = "one-way"
	TripRoundTrip TripType = "round-trip"
)

// Booking keeps the column names of the legacy booked table in its JSON form,
// clients of /editsearch read FirstName, DepartureCity and so on.
type Booking struct {
	ID            int64      `db:"id" json:"booking_id"`
	FirstName     string     `db:"first_name" json:"FirstName"`
	LastName      string     `db:"last_name" json:"LastName"`
	DepartureCity string     `db:"departure_city" json:"DepartureCity"`
	ArrivalCity   string     `db:"arrival_city" json:"ArrivalCity"`
	DepartureDate string     `db:"departure_date" json:"DepartureDate"`
	ReturnDate    string     `db:"return_date" json:"ReturnDate"`
	Passengers    int        `db:"passengers" json:"Passengers"`
	Class         CabinClass `db:"class" json:"Class"`
	TripType      TripType   `db:"trip_type" json:"TripType"`
}

// BookingPatch is a partial update, nil fields keep their stored value
type BookingPatch struct {
	FirstName     *string
	LastName      *string
	DepartureCity *string
	ArrivalCity   *string
	DepartureDate *string
	ReturnDate    *string
	Passengers    *int
	Class         *CabinClass
	TripType      *TripType
}

// Empty reports whether the patch would change nothing
func (p BookingPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil &&
		p.DepartureCity == nil && p.ArrivalCity == nil &&
		p.DepartureDate == nil && p.ReturnDate == nil &&
		p.Passengers == nil && p.Class == nil && p.TripType == nil
}

// BookingFilter combines its set fields with AND
type BookingFilter struct {
	FirstName string
	LastName  string
	BookingID *int64
}

func (f BookingFilter) Empty() bool {
	return f.FirstName == "" && f.LastName == "" && f.BookingID == nil
}
