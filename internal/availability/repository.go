package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Edonabdullahu1/city-sub002/internal/catalog"
	"github.com/Edonabdullahu1/city-sub002/internal/daterange"
)

// Repository stores per-(room, day) availability rows. All range
// parameters are half-open day ranges. Absent rows mean "untouched",
// so reads return only the rows that exist; the service layer fills
// the gaps with room defaults.
type Repository interface {
	// GetRange returns the stored rows inside the range, ordered by day.
	GetRange(ctx context.Context, roomID string, rng daterange.Range) ([]*Day, error)

	// GetDay returns the stored row for one day, or (nil, nil) when the
	// day has never been touched.
	GetDay(ctx context.Context, roomID string, day time.Time) (*Day, error)

	// Initialize creates or updates every day in the range with the given
	// capacity. Re-running with the same total is a no-op; lowering the
	// total below a day's recorded BookedRooms fails with
	// ErrCapacityConflict and leaves the range untouched.
	Initialize(ctx context.Context, roomID string, rng daterange.Range, totalRooms int) error

	// SetOverride sets (or clears, when nil) the nightly price override
	// for every day in the range, creating untouched days with
	// defaultTotal capacity.
	SetOverride(ctx context.Context, roomID string, rng daterange.Range, override *int64, defaultTotal int) error

	// SetBlocked flips the block flag for every day in the range, creating
	// untouched days with defaultTotal capacity.
	SetBlocked(ctx context.Context, roomID string, rng daterange.Range, blocked bool, defaultTotal int) error

	// Book atomically takes one room on every day of the range. If any day
	// has no free, unblocked room the whole range is left unchanged and
	// ErrConcurrencyConflict is returned.
	Book(ctx context.Context, roomID string, rng daterange.Range, defaultTotal int) error

	// Release atomically gives back one room on every day of the range.
	// Fails with ErrReleaseConflict if any day has nothing booked.
	Release(ctx context.Context, roomID string, rng daterange.Range) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// mapFKViolation turns a room_id foreign-key violation into the catalog's
// not-found error so callers see a 404 instead of a raw constraint failure.
func mapFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return catalog.ErrRoomNotFound
	}
	return err
}

func (r *pgxRepository) GetRange(ctx context.Context, roomID string, rng daterange.Range) ([]*Day, error) {
	const query = `
		SELECT room_id, day, total_rooms, booked_rooms, price_override, is_blocked
		FROM public.room_availability
		WHERE room_id = $1 AND day >= $2 AND day < $3
		ORDER BY day ASC
	`
	rows, err := r.pool.Query(ctx, query, roomID, rng.Start(), rng.End())
	if err != nil {
		return nil, fmt.Errorf("get availability range failed: %w", err)
	}
	defer rows.Close()

	var days []*Day
	for rows.Next() {
		var d Day
		if err := rows.Scan(&d.RoomID, &d.Date, &d.TotalRooms, &d.BookedRooms, &d.PriceOverride, &d.IsBlocked); err != nil {
			return nil, fmt.Errorf("scan availability day failed: %w", err)
		}
		d.Date = daterange.Truncate(d.Date)
		days = append(days, &d)
	}
	return days, nil
}

func (r *pgxRepository) GetDay(ctx context.Context, roomID string, day time.Time) (*Day, error) {
	const query = `
		SELECT room_id, day, total_rooms, booked_rooms, price_override, is_blocked
		FROM public.room_availability
		WHERE room_id = $1 AND day = $2
	`
	var d Day
	err := r.pool.QueryRow(ctx, query, roomID, daterange.Truncate(day)).
		Scan(&d.RoomID, &d.Date, &d.TotalRooms, &d.BookedRooms, &d.PriceOverride, &d.IsBlocked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability day failed: %w", err)
	}
	d.Date = daterange.Truncate(d.Date)
	return &d, nil
}

func (r *pgxRepository) Initialize(ctx context.Context, roomID string, rng daterange.Range, totalRooms int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin initialize tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Never lose recorded bookings: refuse a capacity that some day in the
	// range has already sold past. This pre-check gives a cheap early exit,
	// but under READ COMMITTED a racing Book can commit after it, so the
	// upsert below re-checks under the row locks it takes.
	const checkQuery = `
		SELECT EXISTS (
			SELECT 1 FROM public.room_availability
			WHERE room_id = $1 AND day >= $2 AND day < $3 AND booked_rooms > $4
		)
	`
	var conflict bool
	if err := tx.QueryRow(ctx, checkQuery, roomID, rng.Start(), rng.End(), totalRooms).Scan(&conflict); err != nil {
		return fmt.Errorf("check booked rooms failed: %w", err)
	}
	if conflict {
		return ErrCapacityConflict
	}

	// The conflict branch only applies when the new capacity still covers
	// the row's booked count; a day skipped by that condition does not show
	// up in RowsAffected, so a shortfall means some day sold past the new
	// total in the meantime and the whole range rolls back.
	const upsertQuery = `
		INSERT INTO public.room_availability (room_id, day, total_rooms, booked_rooms, is_blocked)
		SELECT $1, d::date, $2, 0, false
		FROM generate_series($3::date, $4::date - 1, '1 day') AS d
		ON CONFLICT (room_id, day)
		DO UPDATE SET total_rooms = EXCLUDED.total_rooms
		WHERE room_availability.booked_rooms <= EXCLUDED.total_rooms
	`
	ct, err := tx.Exec(ctx, upsertQuery, roomID, totalRooms, rng.Start(), rng.End())
	if err != nil {
		return mapFKViolation(fmt.Errorf("initialize availability failed: %w", err))
	}
	if int(ct.RowsAffected()) != rng.Nights() {
		return ErrCapacityConflict
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) SetOverride(ctx context.Context, roomID string, rng daterange.Range, override *int64, defaultTotal int) error {
	const query = `
		INSERT INTO public.room_availability (room_id, day, total_rooms, booked_rooms, price_override, is_blocked)
		SELECT $1, d::date, $2, 0, $3, false
		FROM generate_series($4::date, $5::date - 1, '1 day') AS d
		ON CONFLICT (room_id, day)
		DO UPDATE SET price_override = EXCLUDED.price_override
	`
	if _, err := r.pool.Exec(ctx, query, roomID, defaultTotal, override, rng.Start(), rng.End()); err != nil {
		return mapFKViolation(fmt.Errorf("set price override failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) SetBlocked(ctx context.Context, roomID string, rng daterange.Range, blocked bool, defaultTotal int) error {
	const query = `
		INSERT INTO public.room_availability (room_id, day, total_rooms, booked_rooms, is_blocked)
		SELECT $1, d::date, $2, 0, $3
		FROM generate_series($4::date, $5::date - 1, '1 day') AS d
		ON CONFLICT (room_id, day)
		DO UPDATE SET is_blocked = EXCLUDED.is_blocked
	`
	if _, err := r.pool.Exec(ctx, query, roomID, defaultTotal, blocked, rng.Start(), rng.End()); err != nil {
		return mapFKViolation(fmt.Errorf("set blocked status failed: %w", err))
	}
	return nil
}

func (r *pgxRepository) Book(ctx context.Context, roomID string, rng daterange.Range, defaultTotal int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Materialize untouched days first so the conditional update below sees
	// the whole range.
	const ensureQuery = `
		INSERT INTO public.room_availability (room_id, day, total_rooms, booked_rooms, is_blocked)
		SELECT $1, d::date, $2, 0, false
		FROM generate_series($3::date, $4::date - 1, '1 day') AS d
		ON CONFLICT (room_id, day) DO NOTHING
	`
	if _, err := tx.Exec(ctx, ensureQuery, roomID, defaultTotal, rng.Start(), rng.End()); err != nil {
		return mapFKViolation(fmt.Errorf("ensure availability rows failed: %w", err))
	}

	// The guard in the WHERE clause is the overselling protection: two
	// racing bookings both run this update, but the row lock serializes
	// them and the loser matches zero rows on the contested day.
	const bookQuery = `
		UPDATE public.room_availability
		SET booked_rooms = booked_rooms + 1
		WHERE room_id = $1 AND day >= $2 AND day < $3
		  AND booked_rooms < total_rooms AND NOT is_blocked
	`
	ct, err := tx.Exec(ctx, bookQuery, roomID, rng.Start(), rng.End())
	if err != nil {
		return fmt.Errorf("book rooms failed: %w", err)
	}
	if int(ct.RowsAffected()) != rng.Nights() {
		return ErrConcurrencyConflict
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Release(ctx context.Context, roomID string, rng daterange.Range) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin release tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const releaseQuery = `
		UPDATE public.room_availability
		SET booked_rooms = booked_rooms - 1
		WHERE room_id = $1 AND day >= $2 AND day < $3
		  AND booked_rooms > 0
	`
	ct, err := tx.Exec(ctx, releaseQuery, roomID, rng.Start(), rng.End())
	if err != nil {
		return fmt.Errorf("release rooms failed: %w", err)
	}
	if int(ct.RowsAffected()) != rng.Nights() {
		return ErrReleaseConflict
	}

	return tx.Commit(ctx)
}
