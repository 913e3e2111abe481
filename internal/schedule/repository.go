package schedule

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrScheduleNotFound = errors.New("schedule not found")

const scheduleColumns = `id, court_id, date, start_time, hours, number_of_courts, court_price, racket_price, water_price, status, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateParams) (*Schedule, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO schedules (court_id, date, start_time, hours, number_of_courts, court_price, racket_price, water_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + scheduleColumns

	var s Schedule
	err = tx.GetContext(ctx, &s, query,
		params.CourtID, params.Date, params.StartTime, params.Hours,
		params.NumberOfCourts, params.CourtPrice, params.RacketPrice, params.WaterPrice,
	)
	if err != nil {
		return nil, err
	}

	if err := insertParticipants(ctx, tx, s.ID, params.Participants); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.Participants = dedupe(params.Participants)
	return &s, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	err := r.db.SelectContext(ctx, &schedules,
		`SELECT `+scheduleColumns+` FROM schedules ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}

	if len(schedules) == 0 {
		return schedules, nil
	}

	type participantRow struct {
		ScheduleID int `db:"schedule_id"`
		MemberID   int `db:"member_id"`
	}
	var rows []participantRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT schedule_id, member_id FROM schedule_participants ORDER BY schedule_id, position`)
	if err != nil {
		return nil, err
	}

	bySchedule := make(map[int][]int, len(schedules))
	for _, row := range rows {
		bySchedule[row.ScheduleID] = append(bySchedule[row.ScheduleID], row.MemberID)
	}
	for i := range schedules {
		schedules[i].Participants = bySchedule[schedules[i].ID]
	}

	return schedules, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Schedule, error) {
	var s Schedule
	err := r.db.GetContext(ctx, &s,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	err = r.db.SelectContext(ctx, &s.Participants,
		`SELECT member_id FROM schedule_participants WHERE schedule_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) Update(ctx context.Context, id int, params CreateParams) (*Schedule, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		UPDATE schedules
		SET court_id = $1, date = $2, start_time = $3, hours = $4, number_of_courts = $5,
		    court_price = $6, racket_price = $7, water_price = $8
		WHERE id = $9
		RETURNING ` + scheduleColumns

	var s Schedule
	err = tx.GetContext(ctx, &s, query,
		params.CourtID, params.Date, params.StartTime, params.Hours,
		params.NumberOfCourts, params.CourtPrice, params.RacketPrice, params.WaterPrice, id,
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM schedule_participants WHERE schedule_id = $1`, id)
	if err != nil {
		return nil, err
	}

	if err := insertParticipants(ctx, tx, id, params.Participants); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.Participants = dedupe(params.Participants)
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

func insertParticipants(ctx context.Context, tx *sqlx.Tx, scheduleID int, memberIDs []int) error {
	for i, memberID := range dedupe(memberIDs) {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedule_participants (schedule_id, member_id, position) VALUES ($1, $2, $3)`,
			scheduleID, memberID, i,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// dedupe keeps first occurrences in order; the participant list is a set.
func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
