package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	customErrors "github.com/ananev/todoauth/auth/errors"
	"github.com/ananev/todoauth/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:  "unit-access-secret",
		JWTRefreshSecret: "unit-refresh-secret",
		AccessTokenTTL:   time.Minute,
		RefreshTokenTTL:  time.Hour,
		Issuer:           "test",
	}
}

func TestJWTUtil_GenerateValidate(t *testing.T) {
	util, err := NewJWTUtil(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	uid := uuid.New()
	token, exp, err := util.GenerateAccessToken(uid)
	if err != nil || exp.IsZero() {
		t.Fatalf("bad generate: %v", err)
	}
	claims, err := util.ValidateAccessToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != uid.String() {
		t.Fatalf("want %s got %s", uid, claims.Subject)
	}
	if claims.ID != "" {
		t.Fatalf("access token must not carry a jti, got %q", claims.ID)
	}
}

func TestJWTUtil_RefreshCycle(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	uid := uuid.New()
	rTok, exp, jti, err := util.GenerateRefreshToken(uid)
	if err != nil || exp.IsZero() || jti == "" {
		t.Fatalf("bad generate: %v", err)
	}
	cl, err := util.ValidateRefreshToken(rTok)
	if err != nil || cl.Subject != uid.String() {
		t.Fatalf("validate error: %v", err)
	}
	if cl.ID != jti {
		t.Fatalf("jti mismatch: want %s got %s", jti, cl.ID)
	}
}

func TestJWTUtil_UniqueJti(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	uid := uuid.New()
	_, _, jti1, _ := util.GenerateRefreshToken(uid)
	_, _, jti2, _ := util.GenerateRefreshToken(uid)
	if jti1 == jti2 {
		t.Fatal("refresh tokens must get unique jti values")
	}
}

func TestJWTUtil_ValidateErrors(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	// invalid token string
	if _, err := util.ValidateAccessToken("bad"); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	// token signed with other secrets
	otherCfg := testConfig()
	otherCfg.JWTAccessSecret = "other-access-secret"
	otherCfg.JWTRefreshSecret = "other-refresh-secret"
	other, _ := NewJWTUtil(otherCfg)
	tok, _, _ := other.GenerateAccessToken(uuid.New())
	if _, err := util.ValidateAccessToken(tok); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected signature error, got %v", err)
	}
}

func TestJWTUtil_CrossKindRejected(t *testing.T) {
	util, _ := NewJWTUtil(testConfig())
	uid := uuid.New()

	aTok, _, _ := util.GenerateAccessToken(uid)
	if _, err := util.ValidateRefreshToken(aTok); !customErrors.IsInvalidToken(err) {
		t.Fatalf("access token must not validate as refresh, got %v", err)
	}

	rTok, _, _, _ := util.GenerateRefreshToken(uid)
	if _, err := util.ValidateAccessToken(rTok); !customErrors.IsInvalidToken(err) {
		t.Fatalf("refresh token must not validate as access, got %v", err)
	}
}

func TestJWTUtil_Expired(t *testing.T) {
	cfg := testConfig()
	util, _ := NewJWTUtil(cfg)

	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTAccessSecret))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := util.ValidateAccessToken(tok); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected expired token to be invalid, got %v", err)
	}
}

func TestJWTUtil_InvalidAlg(t *testing.T) {
	cfg := testConfig()
	util, _ := NewJWTUtil(cfg)
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.JWTAccessSecret))
	if _, err := util.ValidateAccessToken(token); !customErrors.IsInvalidToken(err) {
		t.Fatalf("expected invalid alg, got %v", err)
	}
}

func TestJWTUtil_RefreshWithoutJti(t *testing.T) {
	cfg := testConfig()
	util, _ := NewJWTUtil(cfg)
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTRefreshSecret))
	if _, err := util.ValidateRefreshToken(tok); !customErrors.IsInvalidToken(err) {
		t.Fatalf("refresh token without jti must be rejected, got %v", err)
	}
}

func TestNewJWTUtil_ConfigErrors(t *testing.T) {
	cases := map[string]func(*config.Config){
		"empty access secret":  func(c *config.Config) { c.JWTAccessSecret = "" },
		"empty refresh secret": func(c *config.Config) { c.JWTRefreshSecret = "" },
		"equal secrets":        func(c *config.Config) { c.JWTRefreshSecret = c.JWTAccessSecret },
		"zero access ttl":      func(c *config.Config) { c.AccessTokenTTL = 0 },
		"access ttl too long":  func(c *config.Config) { c.AccessTokenTTL = 2 * c.RefreshTokenTTL },
	}
	for name, mutate := range cases {
		cfg := testConfig()
		mutate(cfg)
		if _, err := NewJWTUtil(cfg); err == nil {
			t.Fatalf("%s: expected constructor error", name)
		}
	}
}
