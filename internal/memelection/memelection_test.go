package memelection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElectAlwaysGrants(t *testing.T) {
	e := New()
	require.True(t, e.Elect())
	require.True(t, e.Elect())
}

func TestRenewDefaultsToTrue(t *testing.T) {
	e := New()
	require.True(t, e.Renew())
}

func TestSetRenewsOKControlsRenew(t *testing.T) {
	e := New()
	e.SetRenewsOK(false)
	require.False(t, e.Renew())

	e.SetRenewsOK(true)
	require.True(t, e.Renew())
}
