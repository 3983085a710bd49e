package tracker

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Service implements the tracker operations on top of a UserStore. The clock
// is injected so the lenient date fallback is deterministic in tests.
type Service struct {
	store UserStore
	clock clockwork.Clock
}

// NewService creates a new tracker service instance
func NewService(store UserStore, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		store: store,
		clock: clock,
	}
}

// CreateUser validates the username and persists a new user with an empty log
func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	username, err := ValidateUsername(req.Username)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		Log:       []Exercise{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	return &UserResponse{Username: user.Username, ID: user.ID.String()}, nil
}

// ListUsers returns every user projected to username and id
func (s *Service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{Username: u.Username, ID: u.ID.String()}
	}
	return out, nil
}

// AddExercise validates and coerces the raw input, appends the exercise to
// the user's log, and persists the updated log. Appends are plain
// read-modify-write; two concurrent appends to the same user race with
// last-write-wins at the store.
func (s *Service) AddExercise(ctx context.Context, userID string, in *ExerciseInput) (*ExerciseResponse, error) {
	if in.Description == "" {
		return nil, NewMissingFieldError("description")
	}
	duration, err := CoerceDuration(in.Duration)
	if err != nil {
		return nil, err
	}
	date := CoerceDate(in.Date, s.clock.Now())

	id, err := uuid.Parse(userID)
	if err != nil {
		// A malformed id cannot name any stored user.
		return nil, NewUserNotFoundError(userID)
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	exercise := Exercise{
		Description: in.Description,
		Duration:    duration,
		Date:        date,
	}
	log := append(user.Log, exercise)

	if err := s.store.SaveLog(ctx, id, log); err != nil {
		return nil, err
	}

	return &ExerciseResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.Format(DateLayout),
	}, nil
}

// GetLog loads a user and runs its log through the query pipeline
func (s *Service) GetLog(ctx context.Context, userID string, q LogQuery) (*LogResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, NewUserNotFoundError(userID)
	}

	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	log := QueryLog(user.Log, q)

	return &LogResponse{
		Username: user.Username,
		Count:    len(log),
		ID:       user.ID.String(),
		Log:      log,
	}, nil
}
