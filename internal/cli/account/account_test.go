package account

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/teetime/internal/api"
	"github.com/julianstephens/teetime/internal/cli"
	"github.com/julianstephens/teetime/internal/cli/clitest"
	"github.com/julianstephens/teetime/internal/constants"
	apperrors "github.com/julianstephens/teetime/internal/errors"
	"github.com/julianstephens/teetime/internal/keyring"
)

func TestRegisterCmd(t *testing.T) {
	ctx, b, out := clitest.Setup(t)

	cmd := &RegisterCmd{Email: "  " + clitest.Email + " "}
	require.NoError(t, cmd.Run(ctx))
	assert.True(t, b.IsRegistered(clitest.Email))
	assert.Contains(t, out.String(), constants.MsgRegistered)

	err := cmd.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindServerRejection, apperrors.KindOf(err))
}

func TestRegisterCmd_InvalidEmail(t *testing.T) {
	ctx, b, _ := clitest.Setup(t)

	for _, email := range []string{"", "golfer", "golfer@example", "a b@example.com"} {
		err := (&RegisterCmd{Email: email}).Run(ctx)
		require.Error(t, err, email)
		assert.Equal(t, apperrors.KindValidationFailure, apperrors.KindOf(err))
	}
	assert.Zero(t, b.CallCount(api.PathRegister))
}

func TestRegisterCmd_Remember(t *testing.T) {
	ctx, _, _ := clitest.Setup(t)
	t.Cleanup(func() { _ = keyring.DeleteEmail() })

	require.NoError(t, (&RegisterCmd{Email: clitest.Email, Remember: true}).Run(ctx))
	email, err := keyring.GetEmail()
	require.NoError(t, err)
	assert.Equal(t, clitest.Email, email)
}

func TestLinkRequestCmd(t *testing.T) {
	ctx, b, out := clitest.Setup(t)

	require.NoError(t, (&LinkRequestCmd{Email: clitest.Email}).Run(ctx))
	assert.Equal(t, []string{clitest.Email}, b.LinkRequests())
	assert.Contains(t, out.String(), constants.MsgLinkSent)
}

func TestLinkRequestCmd_UsesRememberedIdentity(t *testing.T) {
	ctx, b, _ := clitest.Setup(t)
	t.Cleanup(func() { _ = keyring.DeleteEmail() })

	err := (&LinkRequestCmd{}).Run(ctx)
	assert.ErrorIs(t, err, cli.ErrNoIdentity)

	require.NoError(t, keyring.SetEmail(clitest.Email))
	require.NoError(t, (&LinkRequestCmd{}).Run(ctx))
	assert.Equal(t, []string{clitest.Email}, b.LinkRequests())
}

func TestLinkValidateCmd(t *testing.T) {
	ctx, b, out := clitest.Setup(t)
	t.Cleanup(func() { _ = keyring.DeleteEmail() })

	guid := uuid.NewString()
	b.AddLink(guid, clitest.Email)

	cmd := &LinkValidateCmd{Link: "https://bethpage-black-bot.com/settings/" + guid, Remember: true}
	require.NoError(t, cmd.Run(ctx))
	assert.Contains(t, out.String(), "Link is valid for "+clitest.Email)

	email, err := keyring.GetEmail()
	require.NoError(t, err)
	assert.Equal(t, clitest.Email, email)
}

func TestLinkValidateCmd_Invalid(t *testing.T) {
	ctx, b, _ := clitest.Setup(t)
	t.Cleanup(func() { _ = keyring.DeleteEmail() })

	err := (&LinkValidateCmd{Link: "not-a-token", Remember: true}).Run(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidLink, apperrors.KindOf(err))
	assert.Zero(t, b.CallCount(api.PathValidateOneTimeLink))

	err = (&LinkValidateCmd{Link: uuid.NewString()}).Run(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidLink, apperrors.KindOf(err))

	_, err = keyring.GetEmail()
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}
