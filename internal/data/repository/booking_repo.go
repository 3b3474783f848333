package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flight-booking/internal/data/entity"
	"flight-booking/pkg/database"
	"flight-booking/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) (int64, error)
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	Update(ctx context.Context, id int64, patch entity.BookingPatch) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, first_name, last_name, departure_city, arrival_city,
		       to_char(departure_date, 'YYYY-MM-DD'), to_char(return_date, 'YYYY-MM-DD'),
		       passengers, class, trip_type`

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (first_name, last_name, departure_city, arrival_city,
		                      departure_date, return_date, passengers, class, trip_type)
		VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		booking.FirstName,
		booking.LastName,
		booking.DepartureCity,
		booking.ArrivalCity,
		booking.DepartureDate,
		booking.ReturnDate,
		booking.Passengers,
		string(booking.Class),
		string(booking.TripType),
	).Scan(&id)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("last_name", booking.LastName),
		)
		return 0, utils.NewStoreError("create booking", err)
	}

	booking.ID = id
	return id, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, utils.NewStoreError(fmt.Sprintf("find booking %d", id), err)
	}

	return booking, nil
}

// Update is a single statement, so each call is atomic on its own. Concurrent
// updates of the same booking are not serialised, the last write wins.
func (r *bookingRepository) Update(ctx context.Context, id int64, patch entity.BookingPatch) error {
	query := `
		UPDATE bookings
		SET first_name     = COALESCE($1, first_name),
		    last_name      = COALESCE($2, last_name),
		    departure_city = COALESCE($3, departure_city),
		    arrival_city   = COALESCE($4, arrival_city),
		    departure_date = COALESCE($5::date, departure_date),
		    return_date    = COALESCE($6::date, return_date),
		    passengers     = COALESCE($7, passengers),
		    class          = COALESCE($8, class),
		    trip_type      = COALESCE($9, trip_type)
		WHERE id = $10
	`

	result, err := r.db.Exec(ctx, query,
		patch.FirstName,
		patch.LastName,
		patch.DepartureCity,
		patch.ArrivalCity,
		patch.DepartureDate,
		patch.ReturnDate,
		patch.Passengers,
		(*string)(patch.Class),
		(*string)(patch.TripType),
		id,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return utils.NewStoreError(fmt.Sprintf("update booking %d", id), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return utils.NewStoreError(fmt.Sprintf("delete booking %d", id), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", id, utils.ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

// Search builds its WHERE clause from bound placeholders only, never from values.
func (r *bookingRepository) Search(ctx context.Context, filter entity.BookingFilter) ([]*entity.Booking, error) {
	var (
		conditions []string
		args       []any
	)

	if filter.FirstName != "" {
		args = append(args, filter.FirstName)
		conditions = append(conditions, fmt.Sprintf("first_name = $%d", len(args)))
	}
	if filter.LastName != "" {
		args = append(args, filter.LastName)
		conditions = append(conditions, fmt.Sprintf("last_name = $%d", len(args)))
	}
	if filter.BookingID != nil {
		args = append(args, *filter.BookingID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}

	query := `
		SELECT ` + bookingColumns + `
		FROM bookings`
	if len(conditions) > 0 {
		query += `
		WHERE ` + strings.Join(conditions, " AND ")
	}
	query += `
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to search bookings", zap.Error(err))
		return nil, utils.NewStoreError("search bookings", err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, utils.NewStoreError("scan booking row", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, utils.NewStoreError("iterate booking rows", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking  entity.Booking
		class    string
		tripType string
	)

	err := row.Scan(
		&booking.ID,
		&booking.FirstName,
		&booking.LastName,
		&booking.DepartureCity,
		&booking.ArrivalCity,
		&booking.DepartureDate,
		&booking.ReturnDate,
		&booking.Passengers,
		&class,
		&tripType,
	)
	if err != nil {
		return nil, err
	}

	booking.Class = entity.CabinClass(class)
	booking.TripType = entity.TripType(tripType)
	return &booking, nil
}
