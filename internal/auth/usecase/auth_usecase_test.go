package usecase

import (
	"testing"
	"time"

	authdomain "activityhub-backend/internal/auth/domain"
	authdto "activityhub-backend/internal/auth/dto"
	"activityhub-backend/pkg/config"

	"github.com/google/uuid"
)

type stubUserRepo struct {
	usersByEmail  map[string]*authdomain.User
	refreshTokens map[string]*authdomain.RefreshToken
	preferences   map[string]*authdomain.UserPreference
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		usersByEmail:  make(map[string]*authdomain.User),
		refreshTokens: make(map[string]*authdomain.RefreshToken),
		preferences:   make(map[string]*authdomain.UserPreference),
	}
}

func (r *stubUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.usersByEmail[email], nil
}

func (r *stubUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range r.usersByEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) ListAll() ([]*authdomain.User, error) {
	var users []*authdomain.User
	for _, u := range r.usersByEmail {
		users = append(users, u)
	}
	return users, nil
}

func (r *stubUserRepo) Update(user *authdomain.User) error { return nil }

func (r *stubUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	r.refreshTokens[token.Token] = token
	return nil
}

func (r *stubUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return r.refreshTokens[token], nil
}

func (r *stubUserRepo) DeleteRefreshToken(token string) error {
	delete(r.refreshTokens, token)
	return nil
}

func (r *stubUserRepo) GetPreference(userID string) (*authdomain.UserPreference, error) {
	return r.preferences[userID], nil
}

func (r *stubUserRepo) SavePreference(pref *authdomain.UserPreference) error {
	r.preferences[pref.UserID] = pref
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestRegister_NewUser(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret123",
		Name:     "Ana",
		Position: "Backend",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("Expected both tokens to be issued")
	}
	if resp.User.Role != authdomain.RoleMember {
		t.Errorf("Expected member role by default, got %s", resp.User.Role)
	}
	if resp.User.Password == "secret123" {
		t.Error("Password must be hashed before storage")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	req := &authdto.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}
	if _, err := uc.Register(req); err != nil {
		t.Fatalf("First register failed: %v", err)
	}
	if _, err := uc.Register(req); err == nil || err.Error() != "email already registered" {
		t.Fatalf("Expected duplicate email error, got %v", err)
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	if _, err := uc.Register(&authdto.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// The issued access token must validate back to the same user
	user, err := uc.ValidateToken(resp.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Errorf("Expected the registered user, got %s", user.Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	if _, err := uc.Register(&authdto.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := uc.Login(&authdto.LoginRequest{Email: "ana@example.com", Password: "wrong"}); err == nil {
		t.Fatal("Expected login with wrong password to fail")
	}
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	registered, err := uc.Register(&authdto.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	refreshed, err := uc.RefreshToken(registered.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("Expected a new access token")
	}
}

func TestRefreshToken_AfterLogout(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	registered, err := uc.Register(&authdto.RegisterRequest{Email: "ana@example.com", Password: "secret123", Name: "Ana"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := uc.Logout(registered.RefreshToken); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := uc.RefreshToken(registered.RefreshToken); err == nil {
		t.Fatal("Expected refresh to fail after logout")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	uc := NewAuthUsecase(newStubUserRepo(), testConfig())

	if _, err := uc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("Expected error for malformed token")
	}
}

func TestTheme_DefaultAndUpdate(t *testing.T) {
	repo := newStubUserRepo()
	uc := NewAuthUsecase(repo, testConfig())

	theme, err := uc.GetTheme("u1")
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme != "light" {
		t.Errorf("Expected light default, got %s", theme)
	}

	if err := uc.SetTheme("u1", "dark"); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	theme, _ = uc.GetTheme("u1")
	if theme != "dark" {
		t.Errorf("Expected dark after update, got %s", theme)
	}

	if err := uc.SetTheme("u1", "solarized"); err == nil {
		t.Fatal("Expected invalid theme to be rejected")
	}
}
