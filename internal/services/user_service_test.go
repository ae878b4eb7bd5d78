package services

import (
	"testing"

	"keuanganku/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	t.Run("creates_user_with_hashed_password", func(t *testing.T) {
		user, err := service.CreateUser("Budi@Example.com", "password123", "Budi", "Santoso")
		testutil.AssertNoError(t, err)

		if user.Email != "budi@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}
		if !service.VerifyPassword(user, "password123") {
			t.Error("expected password to verify")
		}
		if service.VerifyPassword(user, "wrong") {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("rejects_duplicate_email", func(t *testing.T) {
		_, err := service.CreateUser("dup@example.com", "password123", "", "")
		testutil.AssertNoError(t, err)

		_, err = service.CreateUser("DUP@example.com", "password456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("rejects_missing_credentials", func(t *testing.T) {
		_, err := service.CreateUser("", "password123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = service.CreateUser("nobody@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	created, err := service.CreateUser("find@example.com", "password123", "", "")
	testutil.AssertNoError(t, err)

	t.Run("finds_existing_user", func(t *testing.T) {
		user, err := service.GetUserByEmail("FIND@example.com")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("rejects_unknown_email", func(t *testing.T) {
		_, err := service.GetUserByEmail("missing@example.com")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
