package service

import (
	"fmt"
	"strings"

	"brit-matcher/internal/core/domain"
	"brit-matcher/pkg/apperror"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// NetworkParams maps a configured network name to its chain parameters.
func NetworkParams(network string) (*chaincfg.Params, error) {
	switch network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unknown bitcoin network %q", network)
	}
}

// AddressValidator checks pool addresses against one Bitcoin network.
type AddressValidator struct {
	params *chaincfg.Params
}

// NewAddressValidator creates a validator for the named network.
func NewAddressValidator(network string) (*AddressValidator, error) {
	params, err := NetworkParams(network)
	if err != nil {
		return nil, err
	}
	return &AddressValidator{params: params}, nil
}

// Network returns the chain name the validator accepts.
func (v *AddressValidator) Network() string {
	return v.params.Name
}

// Validate decodes raw and returns its canonical encoding.
func (v *AddressValidator) Validate(raw string) (domain.Address, error) {
	raw = strings.TrimSpace(raw)
	addr, err := btcutil.DecodeAddress(raw, v.params)
	if err != nil {
		return "", apperror.ErrInvalidAddress(raw, err)
	}
	if !addr.IsForNet(v.params) {
		return "", apperror.ErrInvalidAddress(raw, fmt.Errorf("address is not for %s", v.params.Name))
	}
	return domain.Address(addr.EncodeAddress()), nil
}
