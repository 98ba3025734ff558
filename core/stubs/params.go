// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package stubs

import (
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
)

// ParamsStub is an in-memory risk parameter registry settable from tests.
type ParamsStub struct {
	assets      map[string]types.AssetParams
	vaults      map[string]types.VaultConfig
	closeFactor num.Decimal
}

func NewParamsStub() *ParamsStub {
	return &ParamsStub{
		assets:      map[string]types.AssetParams{},
		vaults:      map[string]types.VaultConfig{},
		closeFactor: num.MustDecimalFromString("0.5"),
	}
}

// SetCloseFactor pins the registry-wide close factor.
func (p *ParamsStub) SetCloseFactor(cf string) {
	p.closeFactor = num.MustDecimalFromString(cf)
}

func (p *ParamsStub) CloseFactor() num.Decimal {
	return p.closeFactor
}

// SetAssetParams registers or replaces the risk parameters of a denom.
func (p *ParamsStub) SetAssetParams(params types.AssetParams) {
	p.assets[params.Denom] = params
}

// SetWhitelisted flips the whitelist flag of an already registered denom.
func (p *ParamsStub) SetWhitelisted(denom string, whitelisted bool) {
	params := p.assets[denom]
	params.Whitelisted = whitelisted
	p.assets[denom] = params
}

// SetVaultConfig registers or replaces the risk configuration of a vault.
func (p *ParamsStub) SetVaultConfig(conf types.VaultConfig) {
	p.vaults[conf.Vault] = conf
}

func (p *ParamsStub) AssetParams(denom string) (types.AssetParams, error) {
	params, ok := p.assets[denom]
	if !ok {
		return types.AssetParams{}, types.NotWhitelistedError{Ref: denom}
	}
	return params, nil
}

func (p *ParamsStub) VaultConfig(vault string) (types.VaultConfig, error) {
	conf, ok := p.vaults[vault]
	if !ok {
		return types.VaultConfig{}, types.NotWhitelistedError{Ref: vault}
	}
	return conf, nil
}

// AllAssetParams lists every registered denom's parameters.
func (p *ParamsStub) AllAssetParams() []types.AssetParams {
	out := make([]types.AssetParams, 0, len(p.assets))
	for _, params := range p.assets {
		out = append(out, params)
	}
	return out
}
