package delta

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersionHappyPath(t *testing.T) {
	got, err := ParseVersion("1.2.3", '-')
	require.NoError(t, err)
	require.Equal(t, Version{Major: 1, Minor: 2, Patch: 3}, got)
	require.False(t, got.HasPreRelease())
	require.Equal(t, "1.2.3", got.String())
}

func TestParseVersionWithPreRelease(t *testing.T) {
	got, err := ParseVersion("1.1.0-rc1", '-')
	require.NoError(t, err)
	require.Equal(t, 1, got.Major)
	require.Equal(t, 1, got.Minor)
	require.Equal(t, 0, got.Patch)
	require.True(t, got.HasPreRelease())
	require.Equal(t, "rc1", got.PreRelease)
	require.Equal(t, "1.1.0-rc1", got.String())
}

func TestParseVersionRejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"1.2", "1.2.3.4", "a.b.c", "-1.0.0"} {
		_, err := ParseVersion(s, '-')
		require.ErrorIs(t, err, ErrInvalidArgument, "input %q", s)
	}
}

func TestIsDevelopmentTracksMajorZero(t *testing.T) {
	dev, err := ParseVersion("0.9.0", '-')
	require.NoError(t, err)
	require.True(t, dev.IsDevelopment())

	stable, err := ParseVersion("1.0.0", '-')
	require.NoError(t, err)
	require.False(t, stable.IsDevelopment())
}

func TestCompareOrdersByMajorMinorPatch(t *testing.T) {
	a := Version{Major: 1, Minor: 2, Patch: 3}
	b := Version{Major: 1, Minor: 2, Patch: 4}
	c := Version{Major: 1, Minor: 3, Patch: 0}
	d := Version{Major: 2, Minor: 0, Patch: 0}

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.True(t, c.Less(d))
	require.False(t, d.Less(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestCompareOrdersPreReleaseBeforeRelease(t *testing.T) {
	rc, err := ParseVersion("1.1.0-rc1", '-')
	require.NoError(t, err)
	release, err := ParseVersion("1.1.0", '-')
	require.NoError(t, err)

	require.True(t, rc.Less(release))
	require.False(t, release.Less(rc))
}

func TestCompareOrdersPreReleaseTagsLexicographically(t *testing.T) {
	rc1, err := ParseVersion("1.1.0-rc1", '-')
	require.NoError(t, err)
	rc2, err := ParseVersion("1.1.0-rc2", '-')
	require.NoError(t, err)

	require.True(t, rc1.Less(rc2))
	require.False(t, rc2.Less(rc1))
}

func TestNextZeroesLowerOrderElements(t *testing.T) {
	base := Version{Major: 1, Minor: 2, Patch: 3}

	require.Equal(t, Version{Major: 2}, base.Next(Major))
	require.Equal(t, Version{Major: 1, Minor: 3}, base.Next(Minor))
	require.Equal(t, Version{Major: 1, Minor: 2, Patch: 4}, base.Next(Patch))
}

func TestStringRoundTripsThroughParse(t *testing.T) {
	for _, s := range []string{"0.0.1", "2.10.3", "1.1.0-rc1"} {
		v, err := ParseVersion(s, '-')
		require.NoError(t, err)
		require.Equal(t, s, v.String())
	}
}
