package auth_test

import (
	"context"
	"testing"

	"github.com/IgorKammerGrahl/MoodTrack/internal/adapters/storage/memory"
	"github.com/IgorKammerGrahl/MoodTrack/internal/app/auth"
	"github.com/IgorKammerGrahl/MoodTrack/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserStore(), testSecret)

	creds, err := svc.Register(ctx, "Igor", "igor@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if creds.Token == "" {
		t.Fatal("expected a token on register")
	}
	if creds.User.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}

	logged, err := svc.Login(ctx, "igor@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.User.ID != creds.User.ID {
		t.Fatalf("expected user %s, got %s", creds.User.ID, logged.User.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserStore(), testSecret)

	if _, err := svc.Register(ctx, "Igor", "igor@example.com", "right"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.Login(ctx, "igor@example.com", "wrong"); err != auth.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "whatever"); err != auth.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserStore(), testSecret)

	if _, err := svc.Register(ctx, "Igor", "igor@example.com", "pass"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "igor@example.com", "pass2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestVerifyToken(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(memory.NewUserStore(), testSecret)

	creds, err := svc.Register(ctx, "Igor", "igor@example.com", "pass")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	id, err := svc.VerifyToken(creds.Token)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if id != creds.User.ID {
		t.Fatalf("expected user id %s, got %s", creds.User.ID, id)
	}

	if _, err := svc.VerifyToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}

	other := auth.NewService(memory.NewUserStore(), "another-secret-another-secret-xx")
	if _, err := other.VerifyToken(creds.Token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}
