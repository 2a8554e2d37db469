package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SymbolRefData is a stored scalar record keyed by symbol.
type SymbolRefData struct {
	Symbol  string  `json:"symbol"`
	RefData RefData `json:"ref_data"`
}

// SymbolMedianData is a stored median record keyed by symbol.
type SymbolMedianData struct {
	Symbol     string        `json:"symbol"`
	MedianData RefMedianData `json:"median_data"`
}

// RelayerPing is the last ping of a relayer.
type RelayerPing struct {
	Relayer  string `json:"relayer"`
	LastPing uint64 `json:"last_ping"`
}

// GenesisState defines the pricefeed module's genesis state.
type GenesisState struct {
	Params        Params             `json:"params"`
	Admin         string             `json:"admin"`
	Relayers      []string           `json:"relayers"`
	Pings         []RelayerPing      `json:"pings"`
	LastRelayer   string             `json:"last_relayer"`
	ContractInfo  ContractInfo       `json:"contract_info"`
	TotalRequests uint64             `json:"total_requests"`
	RefData       []SymbolRefData    `json:"ref_data"`
	MedianRefData []SymbolMedianData `json:"median_ref_data"`
	DeviationData []SymbolRefData    `json:"deviation_data"`
}

func NewGenesisState(params Params, admin string, relayers []string) *GenesisState {
	return &GenesisState{
		Params:       params,
		Admin:        admin,
		Relayers:     relayers,
		ContractInfo: DefaultContractInfo(),
	}
}

// DefaultGenesisState returns the default genesis state. The admin is left
// empty and must be set by the chain deployer.
func DefaultGenesisState() *GenesisState {
	return NewGenesisState(DefaultParams(), "", []string{})
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.ContractInfo.Validate(); err != nil {
		return err
	}
	if gs.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Admin); err != nil {
			return fmt.Errorf("invalid admin address: %w", err)
		}
	}

	seen := make(map[string]bool)
	for _, relayer := range gs.Relayers {
		if _, err := sdk.AccAddressFromBech32(relayer); err != nil {
			return fmt.Errorf("invalid relayer address %s: %w", relayer, err)
		}
		if seen[relayer] {
			return fmt.Errorf("duplicate relayer %s", relayer)
		}
		seen[relayer] = true
	}
	for _, ping := range gs.Pings {
		if _, err := sdk.AccAddressFromBech32(ping.Relayer); err != nil {
			return fmt.Errorf("invalid ping address %s: %w", ping.Relayer, err)
		}
	}
	if gs.LastRelayer != "" {
		if _, err := sdk.AccAddressFromBech32(gs.LastRelayer); err != nil {
			return fmt.Errorf("invalid last relayer address: %w", err)
		}
	}

	if err := validateSymbolRecords("ref data", symbolsOf(gs.RefData)); err != nil {
		return err
	}
	medianSymbols := make([]string, 0, len(gs.MedianRefData))
	for _, d := range gs.MedianRefData {
		medianSymbols = append(medianSymbols, d.Symbol)
	}
	if err := validateSymbolRecords("median ref data", medianSymbols); err != nil {
		return err
	}
	return validateSymbolRecords("deviation data", symbolsOf(gs.DeviationData))
}

func symbolsOf(records []SymbolRefData) []string {
	symbols := make([]string, 0, len(records))
	for _, r := range records {
		symbols = append(symbols, r.Symbol)
	}
	return symbols
}

func validateSymbolRecords(name string, symbols []string) error {
	seen := make(map[string]bool)
	for _, symbol := range symbols {
		if err := ValidateSymbol(symbol); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if symbol == USD {
			return fmt.Errorf("%s: %s is virtual and cannot be stored", name, USD)
		}
		if seen[symbol] {
			return fmt.Errorf("%s: duplicate symbol %s", name, symbol)
		}
		seen[symbol] = true
	}
	return nil
}
