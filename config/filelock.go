package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock serializes writes to the config directory across processes.
// It locks a separate file so readers of config.json never block.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock returns an unlocked lock for the given config directory.
func NewFileLock(dir string) *FileLock {
	return &FileLock{path: filepath.Join(dir, lockFileName)}
}

// withLock runs fn while holding the lock.
func (l *FileLock) withLock(fn func() error) error {
	if err := l.Lock(); err != nil {
		return err
	}
	defer func() {
		_ = l.Unlock()
	}()
	return fn()
}
