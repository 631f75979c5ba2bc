package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another meetingkeeper window already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard holds the single-instance lock for the desktop host.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance binds a localhost port derived from appName.
// A second desktop host for the same app name fails with ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", LockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release frees the lock. It is safe to call on a nil guard and more than once.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// LockPort returns the deterministic lock port for appName.
func LockPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
