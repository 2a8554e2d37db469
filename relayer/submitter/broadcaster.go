package submitter

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
	pricequerytypes "github.com/GPTx-global/pricefeed/x/pricequery/types"
)

// Msg is implemented by the messages of both price modules.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
}

// Broadcaster delivers relayer messages to the chain. Signing happens
// behind this interface.
type Broadcaster interface {
	Broadcast(ctx context.Context, msgs ...Msg) error
}

// UnsignedTx is the document handed to an external signer.
type UnsignedTx struct {
	ChainID string `json:"chain_id"`
	Msgs    []Msg  `json:"msgs"`
}

// GenerateOnly writes every batch as one line of amino JSON, leaving signing
// and submission to an external tool.
type GenerateOnly struct {
	mu      sync.Mutex
	w       io.Writer
	chainID string
	cdc     *codec.LegacyAmino
}

var _ Broadcaster = &GenerateOnly{}

func NewGenerateOnly(w io.Writer, chainID string) *GenerateOnly {
	return &GenerateOnly{
		w:       w,
		chainID: chainID,
		cdc:     NewCodec(),
	}
}

// NewCodec registers the messages of both price modules behind Msg.
func NewCodec() *codec.LegacyAmino {
	cdc := codec.NewLegacyAmino()
	cdc.RegisterInterface((*Msg)(nil), nil)
	pricefeedtypes.RegisterLegacyAminoCodec(cdc)
	pricequerytypes.RegisterLegacyAminoCodec(cdc)
	cdc.Seal()
	return cdc
}

func (g *GenerateOnly) Broadcast(ctx context.Context, msgs ...Msg) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	bz, err := g.cdc.MarshalJSON(UnsignedTx{ChainID: g.chainID, Msgs: msgs})
	if err != nil {
		return fmt.Errorf("failed to encode unsigned tx: %w", err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.w.Write(append(bz, '\n')); err != nil {
		return fmt.Errorf("failed to write unsigned tx: %w", err)
	}
	return nil
}
