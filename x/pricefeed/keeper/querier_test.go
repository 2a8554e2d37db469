package keeper

import (
	"encoding/json"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

func (suite *KeeperTestSuite) query(path string, params interface{}) ([]byte, error) {
	req := abci.RequestQuery{}
	if params != nil {
		req.Data = types.ModuleCdc.MustMarshalJSON(params)
	}
	querier := NewQuerier(*suite.keeper, types.ModuleCdc)
	return querier(suite.ctx, []string{path}, req)
}

func (suite *KeeperTestSuite) TestQuerier() {
	suite.addRelayers(relayerA, relayerB)
	_, err := suite.keeper.RelayRates(suite.ctx, relayerA, []types.SymbolRate{{Symbol: "BTC", Rate: 19343340000000}}, 10, 1, false)
	suite.Require().NoError(err)

	bz, err := suite.query(types.QueryAdmin, nil)
	suite.Require().NoError(err)
	suite.Require().Contains(string(bz), adminAddr.String())

	bz, err = suite.query(types.QueryIsRelayer, types.QueryAddressParams{Address: relayerB.String()})
	suite.Require().NoError(err)
	var isRelayer types.QueryIsRelayerResponse
	suite.Require().NoError(json.Unmarshal(bz, &isRelayer))
	suite.Require().True(isRelayer.IsRelayer)

	bz, err = suite.query(types.QueryRelayers, nil)
	suite.Require().NoError(err)
	var relayers types.QueryRelayersResponse
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &relayers))
	suite.Require().Equal([]string{relayerA.String(), relayerB.String()}, relayers.Relayers)

	bz, err = suite.query(types.QueryRef, types.QuerySymbolParams{Symbol: "BTC"})
	suite.Require().NoError(err)
	var ref types.RefData
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &ref))
	suite.Require().Equal(types.NewRefData(19343340000000, 10, 1), ref)

	bz, err = suite.query(types.QueryReferenceData, types.QueryPairParams{Base: "BTC", Quote: types.USD})
	suite.Require().NoError(err)
	var reference types.ReferenceData
	suite.Require().NoError(types.ModuleCdc.UnmarshalJSON(bz, &reference))
	suite.Require().Equal("19343340000000000000000", reference.Rate.String())

	_, err = suite.query(types.QueryReferenceDataBulk, types.QueryPairsParams{Pairs: []types.SymbolPair{{Base: "ETH", Quote: types.USD}}})
	suite.Require().ErrorIs(err, types.ErrRefDataNotFound)

	_, err = suite.query(types.QueryMedianRef, types.QuerySymbolParams{Symbol: "BTC"})
	suite.Require().ErrorIs(err, types.ErrRefDataNotFound)

	bz, err = suite.query(types.QueryContractInfo, nil)
	suite.Require().NoError(err)
	suite.Require().Contains(string(bz), types.ContractName)

	_, err = suite.query("unknown", nil)
	suite.Require().ErrorIs(err, sdkerrors.ErrUnknownRequest)
}
