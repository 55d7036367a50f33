// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/plutus/internal/entities"
	"github.com/Decentr-net/plutus/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")
var errBeginCalledWithinTx = errors.New("can not run WithLockedHeight in tx")

const checkViolation = "23514"

type pg struct {
	ext sqlx.ExtContext
}

type messageDTO struct {
	ID        uint64       `db:"id"`
	Sender    string       `db:"sender"`
	Recipient string       `db:"recipient"`
	Body      string       `db:"body"`
	CreatedAt time.Time    `db:"created_at"`
	ReadAt    sql.NullTime `db:"read_at"`
}

type conversationDTO struct {
	messageDTO
	Peer   string `db:"peer"`
	Unread uint32 `db:"unread"`
}

type uploadDTO struct {
	CID       string    `db:"cid"`
	Uploader  string    `db:"uploader"`
	Name      string    `db:"name"`
	Size      int64     `db:"size"`
	MIME      string    `db:"mime"`
	CreatedAt time.Time `db:"created_at"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) WithLockedHeight(ctx context.Context, from, to uint64, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := func(s storage.Storage) error {
		// WithLockedHeight should be blocking method
		if _, err := tx.ExecContext(ctx, `LOCK TABLE height IN ACCESS EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("failed to lock height table: %w", err)
		}

		h, err := s.GetHeight(ctx)
		if err != nil {
			return fmt.Errorf("failed to get height: %w", err)
		}

		if from > h+1 {
			return fmt.Errorf("%w expected_height=%d", storage.ErrRequestedHeightIsTooHigh, h+1)
		}

		if from < h+1 {
			return fmt.Errorf("%w expected_height=%d", storage.ErrRequestedHeightIsTooLow, h+1)
		}

		if err := f(s); err != nil {
			return err
		}

		return s.SetHeight(ctx, to)
	}(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetHeight(ctx context.Context) (uint64, error) {
	var h uint64
	if err := sqlx.GetContext(ctx, s.ext, &h, `SELECT height FROM height FOR KEY SHARE`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return h, nil
}

func (s pg) SetHeight(ctx context.Context, h uint64) error {
	if _, err := s.ext.ExecContext(ctx, `UPDATE height SET height=$1`, h); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) CreateMessage(ctx context.Context, msg *entities.Message) (uint64, error) {
	var id uint64

	if err := sqlx.GetContext(ctx, s.ext, &id, `
			INSERT INTO message(sender, recipient, body, created_at) VALUES($1, $2, $3, $4)
			RETURNING id
		`,
		msg.From, msg.To, msg.Body, msg.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == checkViolation {
			return 0, fmt.Errorf("%w: %s", storage.ErrConstraintViolation, err.Constraint)
		}

		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return id, nil
}

func (s pg) ListMessages(ctx context.Context, p storage.ListMessagesParams) ([]*entities.Message, error) {
	var m []*messageDTO

	if err := sqlx.SelectContext(ctx, s.ext, &m, `
			SELECT id, sender, recipient, body, created_at, read_at
			FROM message
			WHERE ((sender = $1 AND recipient = $2) OR (sender = $2 AND recipient = $1))
				AND ($3::BIGINT = 0 OR id < $3::BIGINT)
			ORDER BY id DESC
			LIMIT $4
		`,
		p.A, p.B, p.Before, p.Limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Message, len(m))
	for i, v := range m {
		out[i] = toMessage(v)
	}

	return out, nil
}

func (s pg) ListConversations(ctx context.Context, address string) ([]*entities.Conversation, error) {
	var c []*conversationDTO

	if err := sqlx.SelectContext(ctx, s.ext, &c, `
			SELECT * FROM (
				SELECT DISTINCT ON (peer) peer, id, sender, recipient, body, created_at, read_at, unread
				FROM (
					SELECT
						CASE WHEN sender = $1 THEN recipient ELSE sender END AS peer,
						id, sender, recipient, body, created_at, read_at,
						COUNT(*) FILTER (WHERE recipient = $1 AND read_at IS NULL)
							OVER (PARTITION BY CASE WHEN sender = $1 THEN recipient ELSE sender END) AS unread
					FROM message
					WHERE sender = $1 OR recipient = $1
				) m
				ORDER BY peer, id DESC
			) c
			ORDER BY id DESC
		`,
		address,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Conversation, len(c))
	for i, v := range c {
		out[i] = &entities.Conversation{
			Peer:        v.Peer,
			LastMessage: *toMessage(&v.messageDTO),
			Unread:      v.Unread,
		}
	}

	return out, nil
}

func (s pg) MarkRead(ctx context.Context, reader, peer string) (uint32, error) {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE message SET read_at=now() WHERE recipient=$1 AND sender=$2 AND read_at IS NULL`,
		reader, peer,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	c, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return uint32(c), nil
}

func (s pg) CreateUpload(ctx context.Context, u *entities.Upload) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO upload(cid, uploader, name, size, mime, created_at) VALUES($1, $2, $3, $4, $5, $6)
			ON CONFLICT(uploader, cid) DO NOTHING
		`,
		u.CID, u.Uploader, u.Name, u.Size, u.MIME, u.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) ListUploads(ctx context.Context, uploader string, limit uint16) ([]*entities.Upload, error) {
	var u []*uploadDTO

	if err := sqlx.SelectContext(ctx, s.ext, &u, `
			SELECT cid, uploader, name, size, mime, created_at
			FROM upload
			WHERE uploader = $1
			ORDER BY created_at DESC, cid
			LIMIT $2
		`,
		uploader, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Upload, len(u))
	for i, v := range u {
		out[i] = &entities.Upload{
			CID:       v.CID,
			Name:      v.Name,
			Size:      v.Size,
			MIME:      v.MIME,
			Uploader:  v.Uploader,
			CreatedAt: v.CreatedAt,
		}
	}

	return out, nil
}

func toMessage(v *messageDTO) *entities.Message {
	m := entities.Message{
		ID:        v.ID,
		From:      v.Sender,
		To:        v.Recipient,
		Body:      v.Body,
		CreatedAt: v.CreatedAt,
	}

	if v.ReadAt.Valid {
		t := v.ReadAt.Time
		m.ReadAt = &t
	}

	return &m
}
