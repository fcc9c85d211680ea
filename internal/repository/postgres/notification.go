package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"hostellink-backend/internal/domain"
	"hostellink-backend/internal/repository"

	"github.com/google/uuid"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, note *domain.Notification) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	attrs, err := json.Marshal(note.Attributes)
	if err != nil {
		return err
	}
	query := `INSERT INTO notifications (id, user_id, title, message, is_read, attributes, created_at)
	          VALUES ($1, $2, $3, $4, false, $5, NOW())`
	_, err = r.db.ExecContext(ctx, query, note.ID, note.UserID, note.Title, note.Message, attrs)
	return err
}

func (r *notificationRepository) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notifications WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, title, message, is_read, attributes, created_at
	          FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		var attrs []byte
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &attrs, &createdAt); err != nil {
			return nil, 0, err
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
				return nil, 0, err
			}
		}
		n.CreatedAt = createdAt.Format(time.RFC3339)
		notes = append(notes, n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
