package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/token"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	created []*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Exists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.Username] = user
	r.created = append(r.created, user)
	return nil
}

func (r *stubUserRepo) seed(t *testing.T, username, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	r.users[username] = &domain.User{Username: username, PasswordHash: string(hash), Role: role}
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
	err      error
}

func (l *stubLimiter) TooMany(_ context.Context, _ string) (bool, error) {
	return l.blocked, l.err
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

type stubRecorder struct {
	activities []string
	err        error
}

func (r *stubRecorder) Append(_ context.Context, _, activity string) error {
	if r.err != nil {
		return r.err
	}
	r.activities = append(r.activities, activity)
	return nil
}

func (r *stubRecorder) List(_ context.Context, _ string) ([]domain.ActivityRecord, error) {
	return nil, nil
}

func newTestAuthService(t *testing.T, users, admins *stubUserRepo, limiter *stubLimiter, recorder *stubRecorder) *AuthService {
	t.Helper()
	codec, err := token.NewCodec("test-secret")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return NewAuthService(users, admins, codec, limiter, recorder, zerolog.Nop())
}

func TestAuthService_Register(t *testing.T) {
	users := newStubUserRepo()
	recorder := &stubRecorder{}
	svc := newTestAuthService(t, users, newStubUserRepo(), &stubLimiter{}, recorder)

	user, err := svc.Register(context.Background(), "alice", "hunter22")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")) != nil {
		t.Error("stored hash does not verify against original password")
	}
	if len(recorder.activities) != 1 || recorder.activities[0] != "register" {
		t.Errorf("activities = %v, want [register]", recorder.activities)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	svc := newTestAuthService(t, users, newStubUserRepo(), &stubLimiter{}, &stubRecorder{})

	_, err := svc.Register(context.Background(), "alice", "other")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
	if len(users.created) != 0 {
		t.Error("duplicate register must not create a record")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	limiter := &stubLimiter{}
	recorder := &stubRecorder{}
	svc := newTestAuthService(t, users, newStubUserRepo(), limiter, recorder)

	res, err := svc.Login(context.Background(), "alice", "hunter22", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Error("empty token")
	}
	if res.User.Username != "alice" {
		t.Errorf("username = %q, want alice", res.User.Username)
	}
	if limiter.resets != 1 {
		t.Errorf("limiter resets = %d, want 1", limiter.resets)
	}
	if len(recorder.activities) != 1 || recorder.activities[0] != "login" {
		t.Errorf("activities = %v, want [login]", recorder.activities)
	}
}

func TestAuthService_Login_IssuedTokenVerifies(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	svc := newTestAuthService(t, users, newStubUserRepo(), &stubLimiter{}, &stubRecorder{})

	res, err := svc.Login(context.Background(), "alice", "hunter22", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	codec, _ := token.NewCodec("test-secret")
	claims, err := codec.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Errorf("claims = %q/%q, want alice/%s", claims.Username, claims.Role, domain.RoleUser)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	limiter := &stubLimiter{}
	svc := newTestAuthService(t, users, newStubUserRepo(), limiter, &stubRecorder{})

	_, err := svc.Login(context.Background(), "alice", "wrong", false)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if limiter.failures != 1 {
		t.Errorf("limiter failures = %d, want 1", limiter.failures)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	limiter := &stubLimiter{}
	svc := newTestAuthService(t, newStubUserRepo(), newStubUserRepo(), limiter, &stubRecorder{})

	_, err := svc.Login(context.Background(), "nobody", "whatever", false)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials (usernames must not be probeable)", err)
	}
	if limiter.failures != 1 {
		t.Errorf("limiter failures = %d, want 1", limiter.failures)
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	svc := newTestAuthService(t, users, newStubUserRepo(), &stubLimiter{blocked: true}, &stubRecorder{})

	_, err := svc.Login(context.Background(), "alice", "hunter22", false)
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("err = %v, want ErrTooManyAttempts", err)
	}
}

func TestAuthService_Login_LimiterDownProceeds(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	limiter := &stubLimiter{err: errors.New("redis down")}
	svc := newTestAuthService(t, users, newStubUserRepo(), limiter, &stubRecorder{})

	if _, err := svc.Login(context.Background(), "alice", "hunter22", false); err != nil {
		t.Fatalf("login must proceed when the limiter is unreachable, got %v", err)
	}
}

func TestAuthService_AdminLogin_UsesAdminStore(t *testing.T) {
	admins := newStubUserRepo()
	admins.seed(t, "root", "changeme1", domain.RoleAdmin)
	svc := newTestAuthService(t, newStubUserRepo(), admins, &stubLimiter{}, &stubRecorder{})

	res, err := svc.AdminLogin(context.Background(), "root", "changeme1", false)
	if err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}

	codec, _ := token.NewCodec("test-secret")
	claims, err := codec.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, domain.RoleAdmin)
	}

	// The same account must not authenticate through the user path.
	if _, err := svc.Login(context.Background(), "root", "changeme1", false); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("user login against admin account: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_ActivityFailureIsNonFatal(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "hunter22", domain.RoleUser)
	recorder := &stubRecorder{err: errors.New("mongo down")}
	svc := newTestAuthService(t, users, newStubUserRepo(), &stubLimiter{}, recorder)

	if _, err := svc.Login(context.Background(), "alice", "hunter22", false); err != nil {
		t.Fatalf("login must succeed when the activity sink is down, got %v", err)
	}
}

func TestAuthService_Logout_RecordsActivity(t *testing.T) {
	recorder := &stubRecorder{}
	svc := newTestAuthService(t, newStubUserRepo(), newStubUserRepo(), &stubLimiter{}, recorder)

	svc.Logout(context.Background(), "alice")
	if len(recorder.activities) != 1 || recorder.activities[0] != "logout" {
		t.Errorf("activities = %v, want [logout]", recorder.activities)
	}
}
