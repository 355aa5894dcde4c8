package instance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLockAndRelease(t *testing.T) {
	dir := t.TempDir()

	// First lock should succeed
	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	if fl == nil {
		t.Fatal("Lock() returned nil flock")
	}

	// Second lock should fail
	if _, err := Lock(dir); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second Lock() error = %v, want ErrAlreadyRunning", err)
	}

	// Unlock must refuse while the lock is held
	if err := Unlock(dir); err == nil {
		t.Fatal("Unlock() should fail while a run holds the lock")
	}

	Release(fl)

	if _, err := os.Stat(LockPath(dir)); !os.IsNotExist(err) {
		t.Fatal("lock file should have been removed after Release")
	}

	// Lock should be available again
	fl2, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() after Release should succeed: %v", err)
	}
	Release(fl2)
}

func TestLock_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	defer Release(fl)

	if _, err := os.Stat(LockPath(dir)); err != nil {
		t.Errorf("lock file missing: %v", err)
	}
}

func TestUnlock_StaleLockFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(LockPath(dir), nil, 0600); err != nil {
		t.Fatal(err)
	}

	if err := Unlock(dir); err != nil {
		t.Fatalf("Unlock() failed: %v", err)
	}
	if _, err := os.Stat(LockPath(dir)); !os.IsNotExist(err) {
		t.Error("stale lock file should be removed")
	}
}

func TestRelease_Nil(t *testing.T) {
	// Should not panic
	Release(nil)
}
