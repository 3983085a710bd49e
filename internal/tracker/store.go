package tracker

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UserSchema represents the users table schema in PostgreSQL. The exercise
// log is embedded in the row as JSONB, mirroring a document store: one user
// document owning its ordered exercise list, no secondary tables.
type UserSchema struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Username  string     `bun:"username,notnull" json:"username"`
	Log       []Exercise `bun:"log,type:jsonb,notnull,default:'[]'" json:"log"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// PostgresUserStore implements the UserStore interface on bun
type PostgresUserStore struct {
	db *bun.DB
}

// NewPostgresUserStore creates a new user store instance
func NewPostgresUserStore(db *bun.DB) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// InsertUser persists a new user with an empty log
func (s *PostgresUserStore) InsertUser(ctx context.Context, user *User) error {
	schema := userToSchema(user)

	_, err := s.db.NewInsert().
		Model(&schema).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return NewStorageError("insert user", err)
	}

	*user = *schemaToUser(schema)
	return nil
}

// ListUsers returns all users projected to username and id
func (s *PostgresUserStore) ListUsers(ctx context.Context) ([]User, error) {
	var schemas []UserSchema
	err := s.db.NewSelect().
		Model(&schemas).
		Column("id", "username").
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, NewStorageError("list users", err)
	}

	users := make([]User, len(schemas))
	for i, schema := range schemas {
		users[i] = *schemaToUser(schema)
	}
	return users, nil
}

// GetUser loads a user and its full exercise log
func (s *PostgresUserStore) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var schema UserSchema
	err := s.db.NewSelect().
		Model(&schema).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewUserNotFoundError(id.String())
		}
		return nil, NewStorageError("get user", err)
	}

	return schemaToUser(schema), nil
}

// SaveLog replaces a user's stored log after an append
func (s *PostgresUserStore) SaveLog(ctx context.Context, id uuid.UUID, log []Exercise) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return NewStorageError("encode log", err)
	}

	res, err := s.db.NewUpdate().
		Model((*UserSchema)(nil)).
		Where("id = ?", id).
		Set("log = ?::jsonb", string(payload)).
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return NewStorageError("save log", err)
	}

	rows, err := res.RowsAffected()
	if err == nil && rows == 0 {
		return NewUserNotFoundError(id.String())
	}
	return nil
}

// Helper conversion functions
func schemaToUser(schema UserSchema) *User {
	log := schema.Log
	if log == nil {
		log = []Exercise{}
	}
	return &User{
		ID:        schema.ID,
		Username:  schema.Username,
		Log:       log,
		CreatedAt: schema.CreatedAt,
		UpdatedAt: schema.UpdatedAt,
	}
}

func userToSchema(user *User) UserSchema {
	return UserSchema{
		ID:        user.ID,
		Username:  user.Username,
		Log:       user.Log,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
