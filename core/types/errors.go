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

package types

import (
	"errors"
	"fmt"

	"code.vegaprotocol.io/credit/libs/num"
)

var (
	// ErrAboveMaxLTV is raised by the terminal health assertion when the
	// batch leaves the account above the maximum allowed loan-to-value.
	ErrAboveMaxLTV = errors.New("actions resulted in exceeding maximum allowed loan-to-value")
	// ErrReentrancy is raised when a batch enters while the guard is active.
	ErrReentrancy = errors.New("reentrancy guard is active")
	// ErrInvalidGuardTransition is raised on an illegal guard state change.
	ErrInvalidGuardTransition = errors.New("invalid reentrancy guard state transition")
	// ErrExternalInvocation is raised when a callback is invoked by anyone
	// but the engine itself.
	ErrExternalInvocation = errors.New("callbacks cannot be invoked externally")
	// ErrNoAmount is raised on a zero-amount action.
	ErrNoAmount = errors.New("no coin amount set for action")
	// ErrNoDebt is raised when repaying a denom the account does not owe.
	ErrNoDebt = errors.New("no debt to repay")
	// ErrNoneLent is raised when reclaiming a denom the account has not lent.
	ErrNoneLent = errors.New("no lent amount to reclaim")
	// ErrLiquidationNotProfitable protects liquidators from dust trades where
	// rounding makes the seized collateral worth less than the repaid debt.
	ErrLiquidationNotProfitable = errors.New("liquidation is not profitable")
	// ErrHealthNotImproved is raised when a liquidation would leave the
	// liquidatee with a lower liquidation health factor than before.
	ErrHealthNotImproved = errors.New("liquidation did not improve health factor")
	// ErrExceedsMaxLiquidationLimit is raised when a batch carries more than
	// one liquidation action.
	ErrExceedsMaxLiquidationLimit = errors.New("more than one liquidation action in batch")
	// ErrUnlockNotReady is raised when withdrawing an unlocking ticket before
	// its release time.
	ErrUnlockNotReady = errors.New("there is more time left on the lock period for this unlocking position")
	// ErrExceedsMaxUnlockingPositions bounds the per-account unlocking ticket
	// count.
	ErrExceedsMaxUnlockingPositions = errors.New("exceeds maximum amount of unlocking positions")
	// ErrNoVaultCoinsReceived is raised when a vault deposit produced no
	// share balance change.
	ErrNoVaultCoinsReceived = errors.New("no vault coins received from deposit")
	// ErrCallbackAfterHealthCheck is raised when something tries to append a
	// callback behind the terminal health assertion.
	ErrCallbackAfterHealthCheck = errors.New("cannot enqueue callbacks after the health assertion")
	// ErrForceWithdrawOutsideLiquidation restricts vault force-exits to
	// liquidation batches.
	ErrForceWithdrawOutsideLiquidation = errors.New("force withdraw only allowed during liquidation")
	// ErrUnlockRequired is raised when exiting a lockup vault directly instead
	// of through an unlock request.
	ErrUnlockRequired = errors.New("vault has a lockup period, withdraw through an unlock request")
	// ErrNoLockup is raised when requesting an unlock from a vault without a
	// lockup period.
	ErrNoLockup = errors.New("vault does not have a lockup period")
	// ErrWrongDenomForVault is raised when the coin entering a vault is not
	// the vault's base token.
	ErrWrongDenomForVault = errors.New("coin denom does not match vault base token")
	// ErrUnknownVault is raised for a vault address the registry does not know.
	ErrUnknownVault = errors.New("unknown vault")
	// ErrAccountNotFound is raised for an account id the registry does not know.
	ErrAccountNotFound = errors.New("account does not exist")
)

// NotTokenOwnerError is raised when the batch caller does not own the account.
type NotTokenOwnerError struct {
	User      string
	AccountID string
}

func (e NotTokenOwnerError) Error() string {
	return fmt.Sprintf("%s is not the owner of account %s", e.User, e.AccountID)
}

// NotWhitelistedError is raised for a denom or vault the risk registry has
// not whitelisted.
type NotWhitelistedError struct {
	Ref string
}

func (e NotWhitelistedError) Error() string {
	return fmt.Sprintf("%s is not whitelisted", e.Ref)
}

// FundsMismatchError is raised when a deposit action does not match the
// attached funds.
type FundsMismatchError struct {
	Expected *num.Uint
	Received *num.Uint
}

func (e FundsMismatchError) Error() string {
	return fmt.Sprintf("sent fund mismatch, expected %s received %s", e.Expected, e.Received)
}

// ExtraFundsReceivedError is raised when attached funds exceed the batch's
// deposits. Without it the surplus would be stranded in the engine.
type ExtraFundsReceivedError struct {
	Coins *Coins
}

func (e ExtraFundsReceivedError) Error() string {
	return fmt.Sprintf("extra funds received: %s", e.Coins)
}

// NotLiquidatableError is raised when liquidating a healthy account.
type NotLiquidatableError struct {
	AccountID    string
	HealthFactor *num.Decimal
}

func (e NotLiquidatableError) Error() string {
	hf := "n/a"
	if e.HealthFactor != nil {
		hf = e.HealthFactor.String()
	}
	return fmt.Sprintf("account %s is not liquidatable, liquidation health factor: %s", e.AccountID, hf)
}

// AboveAssetDepositCapError is raised when a deposit would push the
// engine-wide holdings of a denom over its registry cap.
type AboveAssetDepositCapError struct {
	Denom   string
	New     *num.Uint
	Maximum *num.Uint
}

func (e AboveAssetDepositCapError) Error() string {
	return fmt.Sprintf("exceeds deposit cap for %s, new amount %s maximum %s", e.Denom, e.New, e.Maximum)
}

// AboveVaultDepositCapError is raised when a vault entry would push the
// vault's held value over its registry cap.
type AboveVaultDepositCapError struct {
	Vault   string
	New     *num.Uint
	Maximum *num.Uint
}

func (e AboveVaultDepositCapError) Error() string {
	return fmt.Sprintf("exceeds deposit cap for vault %s, new value %s maximum %s", e.Vault, e.New, e.Maximum)
}

// UnknownActionError is raised for an action variant the pipeline does not
// recognise.
type UnknownActionError struct {
	Action Action
}

func (e UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %T", e.Action)
}

// NoPositionError is raised when an account holds no position in the
// referenced vault, or no ticket with the referenced id.
type NoPositionError struct {
	AccountID string
	Ref       string
}

func (e NoPositionError) Error() string {
	return fmt.Sprintf("account %s has no position matching %s", e.AccountID, e.Ref)
}
