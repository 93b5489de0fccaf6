package passwordhasher

import (
	"testing"

	"github.com/Sommysab/auth-service/internal/core/domain/user"

	"github.com/stretchr/testify/require"
)

const PEPPER = "test-pepper"

func TestHashedPasswordValidates(t *testing.T) {
	cases := []struct {
		id       string
		pepper   string
		cost     int
		password string
	}{
		{id: "simple", pepper: PEPPER, cost: 5, password: "test-password"},
		{id: "empty password", pepper: PEPPER, cost: 5, password: ""},
		{id: "empty pepper", pepper: "", cost: 5, password: "test-password"},
		{id: "whitespace kept", pepper: PEPPER, cost: 5, password: "   test   "},
		{id: "unicode", pepper: PEPPER, cost: 5, password: "пароль-password"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			hasher := NewBcrypt(testcase.pepper, testcase.cost)

			// Exercise ---
			hash, err := hasher.HashPassword(user.RawPassword(testcase.password))

			// Verify ---
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.NotEqual(t, testcase.password, string(hash))
			require.True(t, hasher.ValidatePassword(user.RawPassword(testcase.password), hash))
		})
	}
}

func TestValidationRejectsWrongInput(t *testing.T) {
	cases := []struct {
		id              string
		passwordToHash  string
		passwordToCheck string
		pepperToCheck   string
	}{
		{
			id:              "wrong password",
			passwordToHash:  "test-password",
			passwordToCheck: "other-password",
			pepperToCheck:   PEPPER,
		},
		{
			id:              "trailing space",
			passwordToHash:  "test-password",
			passwordToCheck: "test-password ",
			pepperToCheck:   PEPPER,
		},
		{
			id:              "wrong pepper",
			passwordToHash:  "test-password",
			passwordToCheck: "test-password",
			pepperToCheck:   "other-pepper",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			hash, err := NewBcrypt(PEPPER, 5).HashPassword(user.RawPassword(testcase.passwordToHash))
			require.NoError(t, err)

			// Exercise ---
			hasher := NewBcrypt(testcase.pepperToCheck, 5)
			ok := hasher.ValidatePassword(user.RawPassword(testcase.passwordToCheck), hash)

			// Verify ---
			require.False(t, ok)
		})
	}
}

func TestHashesAreSalted(t *testing.T) {
	// Setup ---
	hasher := NewBcrypt(PEPPER, 5)

	// Exercise ---
	first, err := hasher.HashPassword(user.RawPassword("test-password"))
	require.NoError(t, err)
	second, err := hasher.HashPassword(user.RawPassword("test-password"))
	require.NoError(t, err)

	// Verify ---
	require.NotEqual(t, first, second)
	require.True(t, hasher.ValidatePassword(user.RawPassword("test-password"), first))
	require.True(t, hasher.ValidatePassword(user.RawPassword("test-password"), second))
}

func TestOutOfRangeCostFallsBackToDefault(t *testing.T) {
	cases := []struct {
		id   string
		cost int
	}{
		{id: "zero", cost: 0},
		{id: "negative", cost: -1},
		{id: "too large", cost: 100},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			// Setup ---
			hasher := NewBcrypt(PEPPER, testcase.cost)

			// Exercise ---
			hash, err := hasher.HashPassword(user.RawPassword("test-password"))

			// Verify ---
			require.NoError(t, err)
			require.True(t, hasher.ValidatePassword(user.RawPassword("test-password"), hash))
		})
	}
}
