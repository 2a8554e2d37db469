package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/hashicorp/go-version"
)

const (
	// ContractName identifies the price feed state layout.
	ContractName = "ojo-price-feeds"
	// ContractVersion is the layout version written by this release.
	ContractVersion = "0.1.2"
)

// ContractInfo names the state layout and its semantic version.
type ContractInfo struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

func NewContractInfo(contract, version string) ContractInfo {
	return ContractInfo{Contract: contract, Version: version}
}

// DefaultContractInfo returns the info of the current release.
func DefaultContractInfo() ContractInfo {
	return NewContractInfo(ContractName, ContractVersion)
}

func (ci ContractInfo) Validate() error {
	if strings.TrimSpace(ci.Contract) == "" {
		return errorsmod.Wrap(ErrVersionConflict, "contract name cannot be empty")
	}
	if _, err := version.NewVersion(ci.Version); err != nil {
		return errorsmod.Wrapf(ErrVersionConflict, "invalid version %q: %s", ci.Version, err)
	}
	return nil
}

// CanMigrateTo reports whether state stamped with ci may be migrated to target.
// The contract name must match and the stored version must not be newer.
func (ci ContractInfo) CanMigrateTo(target ContractInfo) error {
	if ci.Contract != target.Contract {
		return errorsmod.Wrapf(ErrVersionConflict, "cannot migrate from %s to %s", ci.Contract, target.Contract)
	}
	stored, err := version.NewVersion(ci.Version)
	if err != nil {
		return errorsmod.Wrapf(ErrVersionConflict, "invalid stored version %q: %s", ci.Version, err)
	}
	next, err := version.NewVersion(target.Version)
	if err != nil {
		return errorsmod.Wrapf(ErrVersionConflict, "invalid target version %q: %s", target.Version, err)
	}
	if stored.GreaterThan(next) {
		return errorsmod.Wrapf(ErrVersionConflict, "cannot migrate from newer version %s to %s", stored, next)
	}
	return nil
}
