package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"bonsai/config"
	"bonsai/internal/domain/entity"
	domainerrors "bonsai/internal/domain/errors"
	"bonsai/internal/domain/repository"
	"bonsai/internal/domain/service"
	"bonsai/internal/usecase"

	"github.com/google/uuid"
)

const (
	testSessionTTL    = 30 * 24 * time.Hour
	testActivationTTL = 15 * time.Minute
	testOrigin        = "http://localhost:3000"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:    4,
			SessionTTL:    testSessionTTL,
			ActivationTTL: testActivationTTL,
		},
		WebServer: &config.WebServerConfig{Origin: testOrigin},
		Mail:      &config.MailConfig{From: "Contato <contato@meubonsai.app>"},
	}
}

// fakeClock is a controllable service.Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// memDB is an in-memory store whose conditional updates run under one lock,
// giving the same compare-and-swap semantics as the SQL statements.
type memDB struct {
	mu       sync.Mutex
	clock    *fakeClock
	users    map[uuid.UUID]*entity.User
	sessions map[uuid.UUID]*entity.Session
	tokens   map[uuid.UUID]*entity.ActivationToken
}

func newMemDB(clock *fakeClock) *memDB {
	return &memDB{
		clock:    clock,
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[uuid.UUID]*entity.Session),
		tokens:   make(map[uuid.UUID]*entity.ActivationToken),
	}
}

func (db *memDB) UserRepo() repository.UserRepository { return &memUserRepo{db: db} }

func (db *memDB) SessionRepo() repository.SessionRepository { return &memSessionRepo{db: db} }

func (db *memDB) ActivationTokenRepo() repository.ActivationTokenRepository {
	return &memTokenRepo{db: db}
}

// Execute runs fn directly; the store has no rollback.
func (db *memDB) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(db)
}

type memUserRepo struct{ db *memDB }

func copyUser(u *entity.User) *entity.User {
	c := *u
	c.Features = append(entity.Features{}, u.Features...)

	return &c
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	user.ID = uuid.New()
	user.CreatedAt = r.db.clock.Now()
	user.UpdatedAt = user.CreatedAt
	r.db.users[user.ID] = copyUser(user)

	return nil
}

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if match(u) {
			return copyUser(u), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.users[user.ID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	stored.Username, stored.Email, stored.Password = user.Username, user.Email, user.Password
	stored.UpdatedAt = r.db.clock.Now()

	return copyUser(stored), nil
}

func (r *memUserRepo) SetFeatures(_ context.Context, id uuid.UUID, features entity.Features) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	stored.Features = append(entity.Features{}, features...)
	stored.UpdatedAt = r.db.clock.Now()

	return copyUser(stored), nil
}

type memSessionRepo struct{ db *memDB }

func (r *memSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[session.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	session.ID = uuid.New()
	session.CreatedAt = r.db.clock.Now()
	session.UpdatedAt = session.CreatedAt
	stored := *session
	r.db.sessions[session.ID] = &stored

	return nil
}

func (r *memSessionRepo) FindValidByToken(_ context.Context, token string, now time.Time) (*entity.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, s := range r.db.sessions {
		if s.Token == token && s.IsValidAt(now) {
			c := *s

			return &c, nil
		}
	}

	return nil, repository.ErrSessionNotFound
}

func (r *memSessionRepo) Renew(_ context.Context, id uuid.UUID, expiresAt, now time.Time) (*entity.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[id]
	if !ok || !s.IsValidAt(now) {
		return nil, repository.ErrSessionNotFound
	}
	if expiresAt.After(s.ExpiresAt) {
		s.ExpiresAt = expiresAt
	} else {
		s.ExpiresAt = s.ExpiresAt.Add(time.Microsecond)
	}
	s.UpdatedAt = now
	c := *s

	return &c, nil
}

func (r *memSessionRepo) Expire(_ context.Context, id uuid.UUID, expiredAt time.Time) (*entity.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	s.ExpiresAt = expiredAt
	c := *s

	return &c, nil
}

type memTokenRepo struct{ db *memDB }

func (r *memTokenRepo) Create(_ context.Context, token *entity.ActivationToken) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[token.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	token.ID = uuid.New()
	token.CreatedAt = r.db.clock.Now()
	token.UpdatedAt = token.CreatedAt
	stored := *token
	r.db.tokens[token.ID] = &stored

	return nil
}

func (r *memTokenRepo) FindValidByID(_ context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tokens[id]
	if !ok || !t.IsValidAt(now) {
		return nil, repository.ErrActivationTokenNotFound
	}
	c := *t

	return &c, nil
}

func (r *memTokenRepo) MarkUsed(_ context.Context, id uuid.UUID, now time.Time) (*entity.ActivationToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tokens[id]
	if !ok || !t.IsValidAt(now) {
		return nil, repository.ErrActivationTokenNotFound
	}
	usedAt := now
	t.UsedAt = &usedAt
	t.UpdatedAt = now
	c := *t

	return &c, nil
}

// plainHasher stands in for bcrypt where the hash format is irrelevant. It
// keeps bcrypt's 72 byte input limit.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	if len(password) > 72 {
		return "", domainerrors.ErrValidationFailed.WithMessage(`"password" must be at most 72 bytes long.`)
	}

	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) (bool, error) {
	return hash == "hashed:"+password, nil
}

// recordingMailer records what it was asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []*service.Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, email *service.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, email)

	return m.err
}

func (m *recordingMailer) last() *service.Email {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return nil
	}

	return m.sent[len(m.sent)-1]
}

// testServices wires every usecase over one memDB.
type testServices struct {
	clock          *fakeClock
	db             *memDB
	mailer         *recordingMailer
	authentication usecase.AuthenticationUsecase
	activation     usecase.ActivationUsecase
	session        usecase.SessionUsecase
	user           usecase.UserUsecase
}

func newTestServices() *testServices {
	clock := newFakeClock()
	db := newMemDB(clock)
	mailer := &recordingMailer{}
	cfg := newTestConfig()
	logger := newDiscardLogger()

	authentication := NewAuthenticationService(db.UserRepo(), plainHasher{}, logger)
	activation := NewActivationService(ActivationServiceParams{
		TxManager: db,
		TokenRepo: db.ActivationTokenRepo(),
		UserRepo:  db.UserRepo(),
		Mailer:    mailer,
		Clock:     clock.Now,
		Config:    cfg,
		Logger:    logger,
	})
	session := NewSessionService(SessionServiceParams{
		SessionRepo:    db.SessionRepo(),
		UserRepo:       db.UserRepo(),
		Authentication: authentication,
		Clock:          clock.Now,
		Config:         cfg,
		Logger:         logger,
	})
	user := NewUserService(UserServiceParams{
		TxManager:  db,
		UserRepo:   db.UserRepo(),
		Hasher:     plainHasher{},
		Activation: activation,
		Clock:      clock.Now,
		Config:     cfg,
		Logger:     logger,
	})

	return &testServices{
		clock:          clock,
		db:             db,
		mailer:         mailer,
		authentication: authentication,
		activation:     activation,
		session:        session,
		user:           user,
	}
}

// seedUser stores a user with the given features directly.
func (s *testServices) seedUser(username, email, password string, features entity.Features) *entity.User {
	user := &entity.User{
		Username: username,
		Email:    email,
		Password: "hashed:" + password,
		Features: features,
	}
	_ = s.db.UserRepo().Create(context.Background(), user)

	return user
}
