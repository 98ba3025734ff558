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

package credit

import (
	"github.com/pkg/errors"

	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
)

// enterVault exchanges a deposited base token amount for vault shares. With
// a lockup vault the shares land in the locked bucket and only leave it
// through an unlock request.
func (e *Engine) enterVault(accountID, vault string, ac types.ActionCoin) error {
	vc, err := e.params.VaultConfig(vault)
	if err != nil {
		return err
	}
	if !vc.Whitelisted {
		return types.NotWhitelistedError{Ref: vault}
	}
	info, err := e.vaults.Info(vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if ac.Denom != info.BaseTokenDenom {
		return types.ErrWrongDenomForVault
	}
	amount, err := e.resolveAmount(accountID, ac)
	if err != nil {
		return err
	}
	if err := e.assertUnderVaultCap(vault, info, vc, amount); err != nil {
		return err
	}

	coin := types.NewCoin(ac.Denom, amount)
	if err := e.accounts.DecrementDeposit(accountID, coin); err != nil {
		return err
	}
	shares, err := e.vaults.Deposit(vault, amount)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if shares.IsZero() {
		return types.ErrNoVaultCoinsReceived
	}

	bucket := types.VaultBucketUnlocked
	if info.HasLockup() {
		bucket = types.VaultBucketLocked
	}
	if err := e.accounts.IncrementVaultShares(accountID, vault, bucket, shares); err != nil {
		return err
	}

	if e.log.IsDebug() {
		e.log.Debug("vault entered",
			logging.AccountID(accountID),
			logging.String("vault", vault),
			logging.String("coin", coin.String()),
			logging.String("shares", shares.String()),
		)
	}
	return nil
}

// assertUnderVaultCap values the vault's holdings after the prospective
// deposit against the registry cap. Both sides are priced through the oracle
// since the cap may be denominated in a different asset.
func (e *Engine) assertUnderVaultCap(vault string, info types.VaultInfo, vc types.VaultConfig, amount *num.Uint) error {
	supply := e.accounts.VaultSupply(vault)
	held, err := e.vaults.PreviewRedeem(vault, supply)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	basePrice, err := e.oracle.Price(info.BaseTokenDenom)
	if err != nil {
		return err
	}
	newValue, err := num.MulDecimal(num.Sum(held, amount), basePrice)
	if err != nil {
		return err
	}
	capPrice, err := e.oracle.Price(vc.DepositCap.Denom)
	if err != nil {
		return err
	}
	capValue, err := num.MulDecimal(vc.DepositCap.Amount, capPrice)
	if err != nil {
		return err
	}
	if newValue.GT(capValue) {
		return types.AboveVaultDepositCapError{Vault: vault, New: newValue, Maximum: capValue}
	}
	return nil
}

// exitVault redeems unlocked shares back into the base token. Lockup vaults
// must go through the unlock flow instead.
func (e *Engine) exitVault(accountID, vault string, amount *num.Uint, force bool) error {
	info, err := e.vaults.Info(vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if amount == nil || amount.IsZero() {
		return types.ErrNoAmount
	}
	if info.HasLockup() && !force {
		return types.ErrUnlockRequired
	}
	if force && !e.inLiquidation() {
		return types.ErrForceWithdrawOutsideLiquidation
	}

	if err := e.takeVaultShares(accountID, vault, amount, force); err != nil {
		return err
	}
	base, err := e.vaults.Redeem(vault, amount)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	e.accounts.IncrementDeposit(accountID, types.NewCoin(info.BaseTokenDenom, base))

	if e.log.IsDebug() {
		e.log.Debug("vault exited",
			logging.AccountID(accountID),
			logging.String("vault", vault),
			logging.String("shares", amount.String()),
			logging.String("base", base.String()),
		)
	}
	return nil
}

// takeVaultShares removes shares from the position, unlocked bucket first.
// Forced removal may dip into the locked bucket as well.
func (e *Engine) takeVaultShares(accountID, vault string, amount *num.Uint, force bool) error {
	if !force {
		return e.accounts.DecrementVaultShares(accountID, vault, types.VaultBucketUnlocked, amount)
	}
	pos := e.accounts.VaultPosition(accountID, vault)
	fromUnlocked := num.Min(amount, pos.Unlocked)
	if !fromUnlocked.IsZero() {
		if err := e.accounts.DecrementVaultShares(accountID, vault, types.VaultBucketUnlocked, fromUnlocked); err != nil {
			return err
		}
	}
	rest := num.UintZero().Sub(amount, fromUnlocked)
	if rest.IsZero() {
		return nil
	}
	return e.accounts.DecrementVaultShares(accountID, vault, types.VaultBucketLocked, rest)
}

// requestVaultUnlock moves locked shares into an unlocking ticket. The vault
// assigns the ticket id and release time.
func (e *Engine) requestVaultUnlock(accountID, vault string, amount *num.Uint) error {
	info, err := e.vaults.Info(vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if !info.HasLockup() {
		return types.ErrNoLockup
	}
	if amount == nil || amount.IsZero() {
		return types.ErrNoAmount
	}

	ticketID, releaseAt, err := e.vaults.RequestUnlock(vault, amount)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	if err := e.accounts.BeginUnlock(accountID, vault, ticketID, amount, releaseAt); err != nil {
		return err
	}

	if e.log.IsDebug() {
		e.log.Debug("vault unlock requested",
			logging.AccountID(accountID),
			logging.String("vault", vault),
			logging.Uint64("ticket", ticketID),
			logging.Time("release-at", releaseAt),
		)
	}
	return nil
}

// withdrawUnlocked redeems a matured unlocking ticket into the base token.
func (e *Engine) withdrawUnlocked(accountID, vault string, ticketID uint64) error {
	info, err := e.vaults.Info(vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	shares, err := e.accounts.TakeUnlocked(accountID, vault, ticketID, e.timeSvc.GetTimeNow())
	if err != nil {
		return err
	}
	base, err := e.vaults.Redeem(vault, shares)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	e.accounts.IncrementDeposit(accountID, types.NewCoin(info.BaseTokenDenom, base))

	if e.log.IsDebug() {
		e.log.Debug("unlocked vault shares withdrawn",
			logging.AccountID(accountID),
			logging.String("vault", vault),
			logging.Uint64("ticket", ticketID),
			logging.String("base", base.String()),
		)
	}
	return nil
}

// refreshVaultCoinBalance reconciles the books with the engine's actual
// vault token balance, crediting any surplus the vault sent outside an
// action, airdropped rewards for instance, to the account.
func (e *Engine) refreshVaultCoinBalance(accountID, vault string) error {
	info, err := e.vaults.Info(vault)
	if err != nil {
		return errors.Wrap(err, "vault")
	}
	current, err := e.bank.Balance(info.VaultTokenDenom)
	if err != nil {
		return errors.Wrap(err, "bank")
	}
	recorded := e.accounts.VaultSupply(vault)
	if current.LTE(recorded) {
		return types.ErrNoVaultCoinsReceived
	}
	diff := num.UintZero().Sub(current, recorded)

	bucket := types.VaultBucketUnlocked
	if info.HasLockup() {
		bucket = types.VaultBucketLocked
	}
	if err := e.accounts.IncrementVaultShares(accountID, vault, bucket, diff); err != nil {
		return err
	}

	e.log.Info("vault coin balance refreshed",
		logging.AccountID(accountID),
		logging.String("vault", vault),
		logging.String("credited", diff.String()),
	)
	return nil
}
