// Package upgrade provides self-update functionality using GitHub releases.
package upgrade

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/creativeprojects/go-selfupdate"

	"github.com/openroads/launcher/internal/variant"
)

const (
	repoOwner = "openroads"
	repoName  = "launcher"
)

// UpdateInfo holds information about an available update.
type UpdateInfo struct {
	Version string
	Notes   string
	release *selfupdate.Release
}

// newUpdater builds an updater that only considers release assets for this
// binary's edition, e.g. "launcher-xmas_windows_amd64.zip".
func newUpdater(v variant.Variant) (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:  source,
		Filters: []string{AssetFilter(v)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}
	return updater, nil
}

// AssetFilter returns the release asset name pattern for variant v.
func AssetFilter(v variant.Variant) string {
	return fmt.Sprintf("^%s-%s_", repoName, v)
}

// CheckUpdate checks GitHub releases for a version newer than currentVersion.
// Returns nil (no error) if already up to date. Returns UpdateInfo if an update is available.
func CheckUpdate(ctx context.Context, currentVersion string, v variant.Variant) (*UpdateInfo, error) {
	updater, err := newUpdater(v)
	if err != nil {
		return nil, err
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repoOwner+"/"+repoName))
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return nil, nil
	}

	// "dev" is always considered outdated so updates are always offered during development.
	if currentVersion != "dev" && !latest.GreaterThan(currentVersion) {
		return nil, nil
	}

	return &UpdateInfo{
		Version: latest.Version(),
		Notes:   latest.ReleaseNotes,
		release: latest,
	}, nil
}

// PerformUpdate downloads and applies the update described by info.
func PerformUpdate(ctx context.Context, info *UpdateInfo, v variant.Variant) error {
	if info == nil || info.release == nil {
		return fmt.Errorf("no update information available")
	}

	updater, err := newUpdater(v)
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}

	if err := updater.UpdateTo(ctx, info.release, exe); err != nil {
		return fmt.Errorf("failed to apply update: %w", err)
	}

	return nil
}

// VersionString returns a formatted version string with optional build metadata.
func VersionString(version, commit, date string, v variant.Variant) string {
	s := "openroads-launcher " + version + " [" + v.String() + "]"
	if commit != "" {
		short := commit
		if len(short) > 7 {
			short = short[:7]
		}
		s += " (" + short + ")"
	}
	if date != "" {
		s += " built " + date
	}
	s += " " + runtime.GOOS + "/" + runtime.GOARCH
	return s
}
