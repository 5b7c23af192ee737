// Package update wraps self-update checks against GitHub releases.
package update

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

const repoSlug = "mkrogh/annodoc"

// InstallMethod describes how the running binary was installed.
type InstallMethod int

const (
	// InstallBinary is a direct binary install (curl, release download).
	InstallBinary InstallMethod = iota
	// InstallHomebrew means the binary lives in a Homebrew cellar.
	InstallHomebrew
)

// Release describes an available release.
type Release struct {
	Version string
}

// DetectInstallMethod inspects the executable path to guess the install
// method. Homebrew installs must be upgraded through brew, not in place.
func DetectInstallMethod() InstallMethod {
	exe, err := os.Executable()
	if err != nil {
		return InstallBinary
	}
	if strings.Contains(exe, "/Cellar/") || strings.Contains(exe, "/homebrew/") {
		return InstallHomebrew
	}
	return InstallBinary
}

// CheckForUpdate returns the latest release if it is newer than current.
func CheckForUpdate(current string) (*Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(context.Background(), selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return nil, false, fmt.Errorf("detect latest release: %w", err)
	}
	if !found || latest.LessOrEqual(current) {
		return nil, false, nil
	}
	return &Release{Version: latest.Version()}, true, nil
}

// Update replaces the running binary with the latest release.
func Update(current string) error {
	if _, err := selfupdate.UpdateSelf(context.Background(), current, selfupdate.ParseSlug(repoSlug)); err != nil {
		return fmt.Errorf("self update: %w", err)
	}
	return nil
}
