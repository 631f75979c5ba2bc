package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockPort(t *testing.T) {
	port := LockPort("meetingkeeper")
	assert.Equal(t, port, LockPort("meetingkeeper"))
	assert.GreaterOrEqual(t, port, minLockPort)
	assert.LessOrEqual(t, port, maxLockPort)
}

func TestAcquireSingleInstance(t *testing.T) {
	name := "meetingkeeper-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestInstanceGuard_Nil(t *testing.T) {
	var guard *InstanceGuard
	assert.NoError(t, guard.Release())
	assert.Equal(t, "", guard.Address())
}
