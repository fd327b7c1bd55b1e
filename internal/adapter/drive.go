// Package adapter contains the infrastructure adapters for the blocks engine:
// TestDrive provisioning, result persistence and run configuration.
package adapter

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"

	m "github.com/mouse-blink/blocks/internal/model"
)

var log = commonlog.GetLogger("blocks.adapter")

const drivePrefix = "testdrive-"

// DriveProvisioner manages the ephemeral storage roots handed to blocks.
// It hides direct filesystem access so the engine can be tested against an
// in-memory filesystem.
type DriveProvisioner interface {
	// Provision returns a storage root. With an empty existing path a fresh,
	// unique root is created; otherwise the existing root is recreated in place
	// and returned unchanged.
	Provision(existing m.Path) (m.Path, error)

	// Release removes the root and everything below it. An empty root is a no-op.
	Release(root m.Path) error

	// Fs exposes the filesystem the roots live on.
	Fs() afero.Fs
}

// AferoDriveProvisioner provisions drives as directories on an afero filesystem.
type AferoDriveProvisioner struct {
	fs   afero.Fs
	base m.Path
}

// NewDriveProvisioner creates drives below base on fs. An empty base uses the
// system temp directory.
func NewDriveProvisioner(fs afero.Fs, base m.Path) *AferoDriveProvisioner {
	if base == "" {
		base = m.Path(os.TempDir())
	}

	return &AferoDriveProvisioner{fs: fs, base: base}
}

// NewLocalDriveProvisioner creates drives on the local disk.
func NewLocalDriveProvisioner(base m.Path) *AferoDriveProvisioner {
	return NewDriveProvisioner(afero.NewOsFs(), base)
}

// NewMemDriveProvisioner creates drives in memory; nothing touches the disk.
func NewMemDriveProvisioner() *AferoDriveProvisioner {
	return NewDriveProvisioner(afero.NewMemMapFs(), "/testdrive")
}

// Provision creates or recreates a drive root.
func (p *AferoDriveProvisioner) Provision(existing m.Path) (m.Path, error) {
	if existing != "" {
		if err := p.fs.MkdirAll(string(existing), 0o755); err != nil {
			return "", fmt.Errorf("failed to restore test drive %s: %w", existing, err)
		}

		log.Debugf("restored test drive %s", existing)

		return existing, nil
	}

	if err := p.fs.MkdirAll(string(p.base), 0o755); err != nil {
		return "", fmt.Errorf("failed to create test drive base %s: %w", p.base, err)
	}

	dir, err := afero.TempDir(p.fs, string(p.base), drivePrefix)
	if err != nil {
		return "", fmt.Errorf("failed to create test drive: %w", err)
	}

	log.Debugf("provisioned test drive %s", dir)

	return m.Path(dir), nil
}

// Release removes a drive root.
func (p *AferoDriveProvisioner) Release(root m.Path) error {
	if root == "" {
		return nil
	}

	if err := p.fs.RemoveAll(string(root)); err != nil {
		return fmt.Errorf("failed to remove test drive %s: %w", root, err)
	}

	log.Debugf("released test drive %s", root)

	return nil
}

// Fs returns the underlying filesystem.
func (p *AferoDriveProvisioner) Fs() afero.Fs {
	return p.fs
}
