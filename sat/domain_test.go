package sat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainBasics(t *testing.T) {
	require.True(t, DomainUniversal.Contains(true))
	require.True(t, DomainUniversal.Contains(false))
	require.False(t, DomainUniversal.IsSingleton())

	require.True(t, DomainTrue.IsSingleton())
	val, ok := DomainTrue.Value()
	require.True(t, ok)
	require.True(t, val)

	val, ok = DomainFalse.Value()
	require.True(t, ok)
	require.False(t, val)

	_, ok = DomainUniversal.Value()
	require.False(t, ok)

	require.True(t, DomainEmpty.IsEmpty())
	require.False(t, DomainUniversal.IsEmpty())
}

func TestDomainRemoveAndRestrict(t *testing.T) {
	require.Equal(t, DomainFalse, DomainUniversal.Remove(true))
	require.Equal(t, DomainTrue, DomainUniversal.Remove(false))
	require.Equal(t, DomainEmpty, DomainFalse.Remove(false))

	require.Equal(t, DomainTrue, Restrict(true))
	require.Equal(t, DomainFalse, Restrict(false))
}

func TestDomainMinMax(t *testing.T) {
	require.False(t, DomainUniversal.Min())
	require.True(t, DomainUniversal.Max())
	require.True(t, DomainTrue.Min())
	require.False(t, DomainFalse.Max())
}
