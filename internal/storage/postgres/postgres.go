package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventRegistry/internal/config"
	"eventRegistry/internal/models"
	"eventRegistry/internal/registration"
	"eventRegistry/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id           BIGSERIAL PRIMARY KEY,
		name         TEXT NOT NULL,
		location     TEXT NOT NULL,
		start_time   TIMESTAMPTZ NOT NULL,
		end_time     TIMESTAMPTZ NOT NULL,
		max_capacity INT NOT NULL CHECK (max_capacity > 0),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS attendees (
		id         BIGSERIAL PRIMARY KEY,
		event_id   BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS attendees_event_email_idx
		ON attendees (event_id, lower(email));

	CREATE TABLE IF NOT EXISTS users (
		id             BIGSERIAL PRIMARY KEY,
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		email          TEXT NOT NULL UNIQUE,
		password_hash  TEXT NOT NULL,
		is_verified    BOOLEAN NOT NULL DEFAULT FALSE,
		otp            TEXT,
		otp_expires_at TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	_, err := s.DB.Exec(schema)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (s *Storage) CreateEvent(name, location string, start, end time.Time, maxCapacity int) (*models.Event, error) {
	query := `
		INSERT INTO events (name, location, start_time, end_time, max_capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	event := models.Event{
		Name:        name,
		Location:    location,
		StartTime:   start,
		EndTime:     end,
		MaxCapacity: maxCapacity,
	}

	err := s.DB.QueryRow(query, name, location, start, end, maxCapacity).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetEvent(id int64) (*models.Event, error) {
	query := `
		SELECT id, name, location, start_time, end_time, max_capacity, created_at, updated_at
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Location,
		&event.StartTime,
		&event.EndTime,
		&event.MaxCapacity,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

// UpcomingEvents returns events that have not started yet, soonest first.
func (s *Storage) UpcomingEvents() ([]models.Event, error) {
	query := `
		SELECT id, name, location, start_time, end_time, max_capacity, created_at, updated_at
		FROM events
		WHERE start_time >= NOW()
		ORDER BY start_time ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Location,
			&event.StartTime,
			&event.EndTime,
			&event.MaxCapacity,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(event *models.Event) error {
	query := `
		UPDATE events
		SET name = $2, location = $3, start_time = $4, end_time = $5, max_capacity = $6, updated_at = NOW()
		WHERE id = $1`

	result, err := s.DB.Exec(query,
		event.ID,
		event.Name,
		event.Location,
		event.StartTime,
		event.EndTime,
		event.MaxCapacity,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event together with its attendees (the foreign key
// cascades).
func (s *Storage) DeleteEvent(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// RegisterAttendee runs the registration workflow in one transaction.
//
// The event row is locked FOR UPDATE so concurrent registrations for the
// same event serialize on the capacity check; the unique index on
// (event_id, lower(email)) backs the duplicate check in case two emails
// race past the snapshot read.
func (s *Storage) RegisterAttendee(eventID int64, name, email string) (*models.Attendee, error) {
	email = registration.NormalizeEmail(email)

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `
		SELECT id, name, location, start_time, end_time, max_capacity, created_at, updated_at
		FROM events
		WHERE id = $1
		FOR UPDATE`

	var event models.Event
	err = tx.QueryRow(eventQuery, eventID).Scan(
		&event.ID,
		&event.Name,
		&event.Location,
		&event.StartTime,
		&event.EndTime,
		&event.MaxCapacity,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	snapshotQuery := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE lower(email) = $2) > 0
		FROM attendees
		WHERE event_id = $1`

	var count int
	var emailTaken bool
	err = tx.QueryRow(snapshotQuery, eventID, email).Scan(&count, &emailTaken)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendees: %w", err)
	}

	if err = registration.Decide(&event, count, emailTaken); err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO attendees (event_id, name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	attendee := models.Attendee{
		EventID: eventID,
		Name:    name,
		Email:   email,
	}

	err = tx.QueryRow(insertQuery, eventID, name, email).
		Scan(&attendee.ID, &attendee.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create attendee: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &attendee, nil
}

// ListAttendees returns one page of an event's attendees in registration
// order, along with the total count.
func (s *Storage) ListAttendees(eventID int64, page, perPage int) ([]models.Attendee, int, error) {
	var total int
	err := s.DB.QueryRow(`SELECT COUNT(*) FROM attendees WHERE event_id = $1`, eventID).
		Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendees: %w", err)
	}

	query := `
		SELECT id, event_id, name, email, created_at
		FROM attendees
		WHERE event_id = $1
		ORDER BY id ASC
		LIMIT $2 OFFSET $3`

	rows, err := s.DB.Query(query, eventID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get attendees: %w", err)
	}
	defer rows.Close()

	var attendees []models.Attendee
	for rows.Next() {
		var attendee models.Attendee
		err = rows.Scan(
			&attendee.ID,
			&attendee.EventID,
			&attendee.Name,
			&attendee.Email,
			&attendee.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendee: %w", err)
		}

		attendees = append(attendees, attendee)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating attendees: %w", err)
	}

	return attendees, total, nil
}

func (s *Storage) GetAttendee(eventID, attendeeID int64) (*models.Attendee, error) {
	query := `
		SELECT id, event_id, name, email, created_at
		FROM attendees
		WHERE id = $1 AND event_id = $2`

	var attendee models.Attendee
	err := s.DB.QueryRow(query, attendeeID, eventID).Scan(
		&attendee.ID,
		&attendee.EventID,
		&attendee.Name,
		&attendee.Email,
		&attendee.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to get attendee: %w", err)
	}

	return &attendee, nil
}

// UpdateAttendee saves an edited attendee. The unique index rejects an email
// that another attendee of the same event already uses.
func (s *Storage) UpdateAttendee(attendee *models.Attendee) error {
	query := `
		UPDATE attendees
		SET name = $3, email = $4
		WHERE id = $1 AND event_id = $2`

	result, err := s.DB.Exec(query,
		attendee.ID,
		attendee.EventID,
		attendee.Name,
		registration.NormalizeEmail(attendee.Email),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update attendee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update attendee: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttendeeNotFound
	}

	return nil
}

func (s *Storage) DeleteAttendee(eventID, attendeeID int64) error {
	result, err := s.DB.Exec(
		`DELETE FROM attendees WHERE id = $1 AND event_id = $2`,
		attendeeID, eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete attendee: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete attendee: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttendeeNotFound
	}

	return nil
}

func (s *Storage) CreateUser(firstName, lastName, email, passwordHash, otp string, otpExpiresAt time.Time) (*models.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password_hash, otp, otp_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	user := models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		OTP:          otp,
		OTPExpiresAt: &otpExpiresAt,
	}

	err := s.DB.QueryRow(query, firstName, lastName, email, passwordHash, otp, otpExpiresAt).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, is_verified, otp, otp_expires_at, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user models.User
	var otp sql.NullString
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&otp,
		&user.OTPExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.OTP = otp.String

	return &user, nil
}

// VerifyOTP checks the code for the user with the given email and, when it
// matches and has not expired, marks the user verified and clears the code.
func (s *Storage) VerifyOTP(email, code string) (*models.User, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, first_name, last_name, email, is_verified, otp, otp_expires_at
		FROM users
		WHERE email = $1
		FOR UPDATE`

	var user models.User
	var otp sql.NullString
	err = tx.QueryRow(query, email).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.IsVerified,
		&otp,
		&user.OTPExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !otp.Valid || otp.String != code {
		return nil, storage.ErrInvalidOTP
	}

	if user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(time.Now()) {
		return nil, storage.ErrOTPExpired
	}

	updateQuery := `
		UPDATE users
		SET is_verified = TRUE, otp = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`

	if _, err = tx.Exec(updateQuery, user.ID); err != nil {
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	user.IsVerified = true
	user.OTP = ""
	user.OTPExpiresAt = nil

	return &user, nil
}

func (s *Storage) CreateSession(userID int64, token string, expiresAt time.Time) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)`

	if _, err := s.DB.Exec(query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// UserByToken resolves a non-expired session token to its user.
func (s *Storage) UserByToken(token string) (*models.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash, u.is_verified, u.created_at, u.updated_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()`

	var user models.User
	err := s.DB.QueryRow(query, token).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &user, nil
}

func (s *Storage) DeleteSession(token string) error {
	result, err := s.DB.Exec(`DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if affected == 0 {
		return storage.ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions is called periodically from main.
func (s *Storage) DeleteExpiredSessions() (int64, error) {
	result, err := s.DB.Exec(`DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return affected, nil
}
