package sql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyhunko/treko-inventory/internal/model"
)

const defaultEventBatch = 100

// EventRepository implements repository.EventRepository on Postgres.
type EventRepository struct {
	db  *sql.DB
	txn *sql.Tx
}

// NewEventRepository creates a new EventRepository instance.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// getExecutor returns the active executor (transaction if exists, otherwise db)
func (r *EventRepository) getExecutor() dbExecutor {
	if r.txn != nil {
		return r.txn
	}
	return r.db
}

// Create inserts a new event into the outbox.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	event.InitMeta()

	query := `INSERT INTO events (id, event_type, event_data, status, created_at, processed_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, event.ID, event.EventType, []byte(event.EventData), string(event.Status), event.CreatedAt, event.ProcessedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return event, nil
}

// ListPending returns up to limit pending events, oldest first.
func (r *EventRepository) ListPending(ctx context.Context, limit int) ([]*model.Event, error) {
	sqlQuery := `SELECT id, event_type, event_data, status, created_at, processed_at
	             FROM events
	             WHERE status = $1
	             ORDER BY created_at ASC
	             LIMIT $2`

	stmt, err := r.getExecutor().PrepareContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	if limit <= 0 {
		limit = defaultEventBatch
	}

	rows, err := stmt.QueryContext(ctx, string(model.EventStatusPending), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		var event model.Event
		var data []byte
		var status string
		var processedAt sql.NullTime
		if err := rows.Scan(&event.ID, &event.EventType, &data, &status, &event.CreatedAt, &processedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		event.EventData = json.RawMessage(data)
		event.Status = model.EventStatus(status)
		if processedAt.Valid {
			event.ProcessedAt = &processedAt.Time
		}
		events = append(events, &event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// UpdateStatus updates the status and processed_at time of an event
func (r *EventRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status model.EventStatus) error {
	query := `UPDATE events SET status = $1, processed_at = CURRENT_TIMESTAMP WHERE id = $2`

	stmt, err := r.getExecutor().PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.ExecContext(ctx, string(status), eventID); err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	return nil
}

// NewEvent is a helper function to create an event with proper JSON marshaling
func NewEvent(eventType string, eventData interface{}) (*model.Event, error) {
	data, err := json.Marshal(eventData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}

	return &model.Event{
		EventType: eventType,
		EventData: data,
		Status:    model.EventStatusPending,
	}, nil
}
