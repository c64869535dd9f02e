package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"admin-gate/app/domain"
	"admin-gate/app/mocks"
)

func TestSHA1Hex(t *testing.T) {
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", SHA1Hex(""))
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", SHA1Hex("abc"))
}

func TestCredentialVerifier_PasswordMode(t *testing.T) {
	nonce := "nonce-123"
	stored := SHA1Hex("hunter2")
	identity := &domain.Identity{PasswordHash: stored}
	admin := &domain.Admin{LoginName: "alice"}

	verifier := NewCredentialVerifier(nil, testLogger(t))

	t.Run("correct hash accepted", func(t *testing.T) {
		assert.NoError(t, verifier.Verify(admin, identity, nonce, SHA1Hex(stored+nonce)))
	})

	t.Run("wrong hash rejected as invalid password", func(t *testing.T) {
		err := verifier.Verify(admin, identity, nonce, SHA1Hex(stored+"other-nonce"))
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidPassword, domain.ErrorCode(err))
		assert.True(t, errors.Is(err, domain.ErrInvalidPassword))
	})

	t.Run("empty stored hash rejected", func(t *testing.T) {
		err := verifier.Verify(admin, &domain.Identity{}, nonce, SHA1Hex(nonce))
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidPassword, domain.ErrorCode(err))
	})
}

func TestCredentialVerifier_OtpMode(t *testing.T) {
	nonce := "nonce-123"
	admin := &domain.Admin{LoginName: "alice", UseOtp: true, OtpSeed: "SEED234567"}
	identity := &domain.Identity{PasswordHash: SHA1Hex("hunter2")}

	t.Run("correct otp-derived hash accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otp := mocks.NewMockOTPProvider(ctrl)
		otp.EXPECT().CurrentValue("SEED234567").Return("123456", nil)
		verifier := NewCredentialVerifier(otp, testLogger(t))

		secret := SHA1Hex("123456")
		assert.NoError(t, verifier.Verify(admin, identity, nonce, SHA1Hex(secret+nonce)))
	})

	t.Run("wrong otp rejected as invalid otp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otp := mocks.NewMockOTPProvider(ctrl)
		otp.EXPECT().CurrentValue("SEED234567").Return("123456", nil)
		verifier := NewCredentialVerifier(otp, testLogger(t))

		secret := SHA1Hex("654321")
		err := verifier.Verify(admin, identity, nonce, SHA1Hex(secret+nonce))
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidOtpPassword, domain.ErrorCode(err))
		assert.True(t, errors.Is(err, domain.ErrInvalidOtp))
	})

	t.Run("password is no fallback for otp accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otp := mocks.NewMockOTPProvider(ctrl)
		otp.EXPECT().CurrentValue("SEED234567").Return("123456", nil)
		verifier := NewCredentialVerifier(otp, testLogger(t))

		err := verifier.Verify(admin, identity, nonce, SHA1Hex(identity.PasswordHash+nonce))
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidOtpPassword, domain.ErrorCode(err))
	})

	t.Run("missing provider fails with generic invalid password", func(t *testing.T) {
		verifier := NewCredentialVerifier(nil, testLogger(t))

		err := verifier.Verify(admin, identity, nonce, "anything")
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidPassword, domain.ErrorCode(err))
	})

	t.Run("provider failure rejected as invalid otp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		otp := mocks.NewMockOTPProvider(ctrl)
		otp.EXPECT().CurrentValue("SEED234567").Return("", errors.New("bad seed"))
		verifier := NewCredentialVerifier(otp, testLogger(t))

		err := verifier.Verify(admin, identity, nonce, "anything")
		require.Error(t, err)
		assert.Equal(t, domain.CodeInvalidOtpPassword, domain.ErrorCode(err))
	})
}

func TestCredentialVerifier_WithHashFunc(t *testing.T) {
	identity := &domain.Identity{PasswordHash: "stored"}
	admin := &domain.Admin{}

	reverse := func(s string) string {
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return string(b)
	}
	verifier := NewCredentialVerifier(nil, testLogger(t), WithHashFunc(reverse))

	assert.NoError(t, verifier.Verify(admin, identity, "n", reverse("storedn")))
}
