package workoutstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workout/remote"
)

var (
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrSetNotFound       = errors.New("set not found")
	ErrCardioLogNotFound = errors.New("cardio log not found")
	ErrEmptyName         = errors.New("name is empty")
)

const (
	DefaultHistoryLimit       = 50
	defaultSessionTitlePrefix = "Session-"
)

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS muscle_groups
(
    id   SERIAL PRIMARY KEY,
    name VARCHAR NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS variations
(
    id              SERIAL PRIMARY KEY,
    muscle_group_id INTEGER NOT NULL REFERENCES muscle_groups (id),
    name            VARCHAR NOT NULL,
    description     VARCHAR NOT NULL DEFAULT '',
    UNIQUE (muscle_group_id, name)
);

CREATE TABLE IF NOT EXISTS cardio_exercises
(
    id   SERIAL PRIMARY KEY,
    name VARCHAR NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS workout_sessions
(
    id         SERIAL PRIMARY KEY,
    title      VARCHAR NOT NULL,
    notes      TEXT    NOT NULL DEFAULT '',
    date       DATE    NOT NULL,
    start_time TIMESTAMP WITHOUT TIME ZONE,
    end_time   TIMESTAMP WITHOUT TIME ZONE
);
CREATE INDEX IF NOT EXISTS ix_workout_sessions_date ON workout_sessions (date);

CREATE TABLE IF NOT EXISTS sets
(
    id                 SERIAL PRIMARY KEY,
    workout_session_id INTEGER NOT NULL REFERENCES workout_sessions (id) ON DELETE CASCADE,
    muscle_group_id    INTEGER NOT NULL REFERENCES muscle_groups (id),
    variation_id       INTEGER NOT NULL REFERENCES variations (id),
    weight             DOUBLE PRECISION NOT NULL,
    reps               INTEGER NOT NULL,
    performed_on       DATE
);
CREATE INDEX IF NOT EXISTS ix_sets_session ON sets (workout_session_id);

CREATE TABLE IF NOT EXISTS cardio_logs
(
    id                 SERIAL PRIMARY KEY,
    workout_session_id INTEGER NOT NULL REFERENCES workout_sessions (id) ON DELETE CASCADE,
    cardio_exercise_id INTEGER NOT NULL REFERENCES cardio_exercises (id),
    duration_minutes   INTEGER NOT NULL,
    performed_on       DATE
);
CREATE INDEX IF NOT EXISTS ix_cardio_logs_session ON cardio_logs (workout_session_id);
`

type HistoryParams struct {
	Limit     int
	StartDate time.Time
	EndDate   time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreateTables(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTablesSQL); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// DefaultSessionTitle is given to sessions saved without a title.
func DefaultSessionTitle(date time.Time) string {
	return defaultSessionTitlePrefix + date.Format(remote.DateLayout)
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func (r *Repo) CreateSession(ctx context.Context, req remote.SessionRequest) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	date := req.Date.Time
	if date.IsZero() {
		date = time.Now().UTC()
	}
	title := req.Title
	if title == "" {
		title = DefaultSessionTitle(date)
	}

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_sessions (title, notes, date, start_time, end_time)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		title, req.Notes, date, nullableTime(req.StartTime.Time), nullableTime(req.EndTime.Time),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int64("session.id", id))
	return id, nil
}

func (r *Repo) UpdateSession(ctx context.Context, id int64, req remote.SessionRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.session.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	date := req.Date.Time
	title := req.Title
	if title == "" && !date.IsZero() {
		title = DefaultSessionTitle(date)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_sessions SET
				title = COALESCE(NULLIF($1, ''), title),
				notes = $2,
				date = COALESCE($3, date),
				start_time = $4,
				end_time = $5
			WHERE id = $6;`,
		title, req.Notes, nullableTime(date), nullableTime(req.StartTime.Time), nullableTime(req.EndTime.Time), id,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteSession removes the session together with its sets and cardio logs.
func (r *Repo) DeleteSession(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM sets WHERE workout_session_id = $1`, id); err != nil {
			return fmt.Errorf("delete session sets: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM cardio_logs WHERE workout_session_id = $1`, id); err != nil {
			return fmt.Errorf("delete session cardio logs: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM workout_sessions WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
}

func scanSession(row pgx.Row) (remote.SessionRecord, error) {
	var (
		s         remote.SessionRecord
		date      time.Time
		startTime *time.Time
		endTime   *time.Time
	)
	if err := row.Scan(&s.ID, &s.Title, &s.Notes, &date, &startTime, &endTime); err != nil {
		return remote.SessionRecord{}, err
	}
	s.Date = remote.NewDate(date)
	s.StartTime = remote.NewDateTime(derefTime(startTime))
	s.EndTime = remote.NewDateTime(derefTime(endTime))
	return s, nil
}

// GetSession returns the session with its sets and cardio logs, each ordered by
// id.
func (r *Repo) GetSession(ctx context.Context, id int64) (_ *remote.SessionDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", id))

	session, err := scanSession(r.db.QueryRow(
		ctx,
		`SELECT id, title, notes, date, start_time, end_time FROM workout_sessions WHERE id = $1;`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	details := &remote.SessionDetails{
		Session:    session,
		Sets:       make([]remote.SetRecord, 0),
		CardioLogs: make([]remote.CardioLogRecord, 0),
	}

	setRows, err := r.db.Query(
		ctx,
		`SELECT id, workout_session_id, muscle_group_id, variation_id, weight, reps, performed_on
			FROM sets WHERE workout_session_id = $1 ORDER BY id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get session sets: %w", err)
	}
	defer setRows.Close()
	for setRows.Next() {
		var (
			s           remote.SetRecord
			performedOn *time.Time
		)
		if err := setRows.Scan(&s.ID, &s.WorkoutSessionID, &s.MuscleGroupID, &s.VariationID, &s.Weight, &s.Reps, &performedOn); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.PerformedOn = remote.NewDate(derefTime(performedOn))
		details.Sets = append(details.Sets, s)
	}
	if err := setRows.Err(); err != nil {
		return nil, err
	}

	cardioRows, err := r.db.Query(
		ctx,
		`SELECT id, workout_session_id, cardio_exercise_id, duration_minutes, performed_on
			FROM cardio_logs WHERE workout_session_id = $1 ORDER BY id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get session cardio logs: %w", err)
	}
	defer cardioRows.Close()
	for cardioRows.Next() {
		var (
			c           remote.CardioLogRecord
			performedOn *time.Time
		)
		if err := cardioRows.Scan(&c.ID, &c.WorkoutSessionID, &c.CardioExerciseID, &c.DurationMinutes, &performedOn); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		c.PerformedOn = remote.NewDate(derefTime(performedOn))
		details.CardioLogs = append(details.CardioLogs, c)
	}
	if err := cardioRows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

// History lists sessions, most recent first.
func (r *Repo) History(ctx context.Context, params HistoryParams) (_ []remote.SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.session.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, notes, date, start_time, end_time
			FROM workout_sessions
			WHERE ($1::DATE IS NULL OR date >= $1) AND ($2::DATE IS NULL OR date <= $2)
			ORDER BY date DESC, id DESC
			LIMIT $3;`,
		nullableTime(params.StartDate), nullableTime(params.EndDate), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]remote.SessionRecord, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}

func (r *Repo) CreateSet(ctx context.Context, req remote.CreateSetRequest) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.set.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", req.WorkoutSessionID))

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO sets (workout_session_id, muscle_group_id, variation_id, weight, reps, performed_on)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		req.WorkoutSessionID, req.MuscleGroupID, req.VariationID, req.Weight, req.Reps, nullableTime(req.PerformedOn.Time),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert set: %w", err)
	}
	return id, nil
}

// UpdateSet changes weight and reps; nil fields are kept.
func (r *Repo) UpdateSet(ctx context.Context, id int64, req remote.UpdateSetRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.set.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE sets SET weight = COALESCE($1, weight), reps = COALESCE($2, reps) WHERE id = $3;`,
		req.Weight, req.Reps, id,
	)
	if err != nil {
		return fmt.Errorf("update set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) DeleteSet(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.set.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("set.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM sets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}
	return nil
}

func (r *Repo) CreateCardioLog(ctx context.Context, req remote.CreateCardioRequest) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.cardio.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("session.id", req.WorkoutSessionID))

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_logs (workout_session_id, cardio_exercise_id, duration_minutes, performed_on)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		req.WorkoutSessionID, req.CardioExerciseID, req.Duration, nullableTime(req.PerformedOn.Time),
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cardio log: %w", err)
	}
	return id, nil
}

func (r *Repo) UpdateCardioLog(ctx context.Context, id int64, req remote.UpdateCardioRequest) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("cardio.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE cardio_logs SET duration_minutes = COALESCE($1, duration_minutes) WHERE id = $2;`,
		req.Duration, id,
	)
	if err != nil {
		return fmt.Errorf("update cardio log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCardioLogNotFound
	}
	return nil
}

func (r *Repo) DeleteCardioLog(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutstore.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("cardio.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM cardio_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cardio log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCardioLogNotFound
	}
	return nil
}

func (r *Repo) MuscleGroups(ctx context.Context) ([]remote.MuscleGroup, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM muscle_groups ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list muscle groups: %w", err)
	}
	defer rows.Close()

	groups := make([]remote.MuscleGroup, 0)
	for rows.Next() {
		var g remote.MuscleGroup
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *Repo) Variations(ctx context.Context) ([]remote.Variation, error) {
	rows, err := r.db.Query(ctx, `SELECT id, muscle_group_id, name, description FROM variations ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()

	variations := make([]remote.Variation, 0)
	for rows.Next() {
		var v remote.Variation
		if err := rows.Scan(&v.ID, &v.MuscleGroupID, &v.Name, &v.Description); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

func (r *Repo) CardioExercises(ctx context.Context) ([]remote.CardioExercise, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM cardio_exercises ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list cardio exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]remote.CardioExercise, 0)
	for rows.Next() {
		var ce remote.CardioExercise
		if err := rows.Scan(&ce.ID, &ce.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, ce)
	}
	return exercises, rows.Err()
}

func (r *Repo) CreateMuscleGroup(ctx context.Context, req remote.CreateMuscleGroupRequest) (int64, error) {
	if req.Name == "" {
		return 0, ErrEmptyName
	}
	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO muscle_groups (name) VALUES ($1) RETURNING id;`,
		req.Name,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert muscle group: %w", err)
	}
	return id, nil
}

func (r *Repo) CreateVariation(ctx context.Context, req remote.CreateVariationRequest) (int64, error) {
	if req.Name == "" {
		return 0, ErrEmptyName
	}
	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO variations (muscle_group_id, name, description) VALUES ($1, $2, $3) RETURNING id;`,
		req.MuscleGroupID, req.Name, req.Description,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert variation: %w", err)
	}
	return id, nil
}

func (r *Repo) CreateCardioExercise(ctx context.Context, req remote.CreateCardioExerciseRequest) (int64, error) {
	if req.Name == "" {
		return 0, ErrEmptyName
	}
	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_exercises (name) VALUES ($1) RETURNING id;`,
		req.Name,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert cardio exercise: %w", err)
	}
	return id, nil
}
