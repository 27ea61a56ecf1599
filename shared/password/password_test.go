package password_test

import (
	"encoding/base64"
	"testing"
	"todoapi/config"
	"todoapi/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestHash(t *testing.T) {
	hasher := password.NewWithSalt("unit-test-salt")

	tests := []struct {
		name          string
		password      *string
		expectedError error
	}{
		{
			name:     "valid password",
			password: ptr("validPassword123"),
		},
		{
			name:     "short password",
			password: ptr("abc"),
		},
		{
			name:     "unicode password",
			password: ptr("пароль-密码"),
		},
		{
			name:     "empty password",
			password: ptr(""),
		},
		{
			name:          "absent password",
			password:      nil,
			expectedError: password.ErrMissingPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := hasher.Hash(tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, digest)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, *tt.password, digest)

			raw, err := base64.RawStdEncoding.DecodeString(digest)
			require.NoError(t, err)
			assert.Len(t, raw, password.KeyLen)
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	hasher := password.NewWithSalt("unit-test-salt")

	first, err := hasher.Hash(ptr("correct horse"))
	require.NoError(t, err)

	second, err := hasher.Hash(ptr("correct horse"))
	require.NoError(t, err)

	other, err := hasher.Hash(ptr("correct horse!"))
	require.NoError(t, err)

	empty, err := hasher.Hash(ptr(""))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.NotEqual(t, first, empty)
}

func TestHash_SaltSeparatesDeployments(t *testing.T) {
	a, err := password.NewWithSalt("deployment-a").Hash(ptr("secret"))
	require.NoError(t, err)

	b, err := password.NewWithSalt("deployment-b").Hash(ptr("secret"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNew_DefaultSalt(t *testing.T) {
	cfg := &config.Config{}

	a, err := password.New(cfg).Hash(ptr("secret"))
	require.NoError(t, err)

	b, err := password.New(cfg).Hash(ptr("secret"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
