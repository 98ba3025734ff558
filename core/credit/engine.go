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
	"time"

	"code.vegaprotocol.io/credit/core/accounts"
	"code.vegaprotocol.io/credit/core/liquidation"
	"code.vegaprotocol.io/credit/core/types"
	"code.vegaprotocol.io/credit/libs/num"
	"code.vegaprotocol.io/credit/logging"
	"code.vegaprotocol.io/credit/metrics"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks code.vegaprotocol.io/credit/core/credit AccountRegistry,MoneyMarket,Oracle,ParamsSource,VaultAdapter,Swapper,Zapper,Bank,TimeService

// AccountRegistry tracks credit account ownership.
type AccountRegistry interface {
	Mint(owner string) (string, error)
	OwnerOf(accountID string) (string, error)
}

// MoneyMarket is the lending market the engine borrows from, repays to, and
// lends into. Debt and lent totals are the engine's own, interest included,
// and also serve as the share conversion pools.
type MoneyMarket interface {
	TotalDebt(denom string) (*num.Uint, error)
	TotalLent(denom string) (*num.Uint, error)
	Borrow(coin types.Coin) error
	Repay(coin types.Coin) error
	Lend(coin types.Coin) error
	Reclaim(coin types.Coin) error
}

// Oracle resolves current prices.
type Oracle interface {
	Price(denom string) (num.Decimal, error)
}

// ParamsSource is the risk parameter registry.
type ParamsSource interface {
	AssetParams(denom string) (types.AssetParams, error)
	VaultConfig(vault string) (types.VaultConfig, error)
	CloseFactor() num.Decimal
}

// VaultAdapter wraps the external vault contracts.
type VaultAdapter interface {
	Info(vault string) (types.VaultInfo, error)
	PreviewRedeem(vault string, shares *num.Uint) (*num.Uint, error)
	PreviewDeposit(vault string, baseAmount *num.Uint) (*num.Uint, error)
	Deposit(vault string, baseAmount *num.Uint) (*num.Uint, error)
	Redeem(vault string, shares *num.Uint) (*num.Uint, error)
	RequestUnlock(vault string, shares *num.Uint) (uint64, time.Time, error)
}

// Swapper executes exact-in swaps on behalf of the engine.
type Swapper interface {
	SwapExactIn(coinIn types.Coin, denomOut string, slippage num.Decimal) (*num.Uint, error)
}

// Zapper turns coins into LP tokens and back.
type Zapper interface {
	ProvideLiquidity(coinsIn []types.Coin, lpTokenOut string, minimumReceive *num.Uint) (*num.Uint, error)
	WithdrawLiquidity(lpToken types.Coin) ([]types.Coin, error)
	EstimateProvideLiquidity(lpTokenOut string, coinsIn []types.Coin) (*num.Uint, error)
	EstimateWithdrawLiquidity(lpToken types.Coin) ([]types.Coin, error)
}

// Bank moves coins out of the engine's custody and reports what it holds.
type Bank interface {
	Send(recipient string, coins []types.Coin) error
	Balance(denom string) (*num.Uint, error)
}

// TimeService provides the current network time.
type TimeService interface {
	GetTimeNow() time.Time
}

// Transactional is implemented by collaborators whose state the host
// runtime reverts when a batch fails. On-chain every external call shares
// the transaction that carries the batch; in-process collaborators opt in
// here so a failed batch leaves them exactly as it found them.
type Transactional interface {
	Begin()
	Commit()
	Rollback()
}

// HealthComputer prices an account's positions and derives its health.
type HealthComputer interface {
	Compute(state types.AccountState) (types.Health, error)
	MaxWithdraw(state types.AccountState, denom string) (*num.Uint, error)
	MaxBorrow(state types.AccountState, denom string, target types.BorrowTarget) (*num.Uint, error)
	MaxSwap(state types.AccountState, denomIn, denomOut string, kind types.SwapKind) (*num.Uint, error)
}

// LiquidationCalculator sizes liquidations.
type LiquidationCalculator interface {
	Calculate(req liquidation.Request) (types.Coin, types.Coin, error)
}

// Callback is one deferred unit of work within a batch.
type Callback struct {
	Name string
	Fn   func() error
}

// Dispatcher runs a callback. The engine drains its queue through one, so a
// host runtime can interpose accounting or tracing around every hop.
type Dispatcher interface {
	Dispatch(cb Callback) error
}

// SyncDispatcher runs callbacks inline.
type SyncDispatcher struct{}

func (SyncDispatcher) Dispatch(cb Callback) error {
	return cb.Fn()
}

// Engine is the credit account manager. It owns no coins and no prices: it
// keeps the books in the accounts engine and orchestrates the money market,
// vaults, swapper and zapper around them, one atomic action batch at a time.
type Engine struct {
	Config
	log *logging.Logger

	accounts *accounts.Engine
	health   HealthComputer
	liqCalc  LiquidationCalculator

	registry   AccountRegistry
	market     MoneyMarket
	oracle     Oracle
	params     ParamsSource
	vaults     VaultAdapter
	swapper    Swapper
	zapper     Zapper
	bank       Bank
	timeSvc    TimeService
	dispatcher Dispatcher

	guard guard

	// per batch state, reset on entry
	queue           []Callback
	pending         []Callback
	draining        bool
	healthCheckDone bool
	liquidations    int
}

// New instantiates the credit engine.
func New(
	log *logging.Logger,
	conf Config,
	accts *accounts.Engine,
	healthComp HealthComputer,
	liqCalc LiquidationCalculator,
	registry AccountRegistry,
	market MoneyMarket,
	oracle Oracle,
	params ParamsSource,
	vaults VaultAdapter,
	swapper Swapper,
	zapper Zapper,
	bank Bank,
	timeSvc TimeService,
	dispatcher Dispatcher,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:     conf,
		log:        log,
		accounts:   accts,
		health:     healthComp,
		liqCalc:    liqCalc,
		registry:   registry,
		market:     market,
		oracle:     oracle,
		params:     params,
		vaults:     vaults,
		swapper:    swapper,
		zapper:     zapper,
		bank:       bank,
		timeSvc:    timeSvc,
		dispatcher: dispatcher,
	}
}

// ReloadConf updates the internal configuration of the engine.
func (e *Engine) ReloadConf(cfg Config) {
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// CreateAccount mints a fresh credit account for the user and returns its id.
func (e *Engine) CreateAccount(owner string, kind types.AccountKind) (string, error) {
	accountID, err := e.registry.Mint(owner)
	if err != nil {
		return "", err
	}
	e.accounts.SetKind(accountID, kind)
	e.log.Info("credit account created",
		logging.AccountID(accountID),
		logging.String("owner", owner),
		logging.String("kind", kind.String()),
	)
	return accountID, nil
}

// UpdateCreditAccount executes one action batch against the account. The
// batch is atomic: every action and every deferred callback succeeds, the
// attached funds are fully consumed, and the terminal health assertion
// passes, or no state change survives at all.
func (e *Engine) UpdateCreditAccount(caller, accountID string, actionBatch []types.Action, receivedFunds []types.Coin) error {
	if err := e.guard.activate(); err != nil {
		return err
	}
	defer func() {
		// the transition back is legal by construction
		_ = e.guard.deactivate()
	}()

	checkpoint := e.accounts.Checkpoint()
	tx := e.beginExternal()
	err := e.executeBatch(caller, accountID, actionBatch, receivedFunds)
	if err != nil {
		e.accounts.Restore(checkpoint)
		for _, p := range tx {
			p.Rollback()
		}
		metrics.BatchesFailed.Inc()
		e.log.Error("action batch rolled back",
			logging.AccountID(accountID),
			logging.Error(err),
		)
		return err
	}
	for _, p := range tx {
		p.Commit()
	}
	metrics.BatchesExecuted.Inc()
	return nil
}

// beginExternal opens a transaction on every collaborator that carries
// revertible state, so the batch rollback covers them alongside the books.
func (e *Engine) beginExternal() []Transactional {
	candidates := []interface{}{e.market, e.vaults, e.swapper, e.zapper, e.bank}
	tx := make([]Transactional, 0, len(candidates))
	for _, c := range candidates {
		if p, ok := c.(Transactional); ok {
			p.Begin()
			tx = append(tx, p)
		}
	}
	return tx
}

func (e *Engine) executeBatch(caller, accountID string, actionBatch []types.Action, receivedFunds []types.Coin) error {
	owner, err := e.registry.OwnerOf(accountID)
	if err != nil {
		return err
	}
	if owner != caller {
		return types.NotTokenOwnerError{User: caller, AccountID: accountID}
	}

	e.queue = e.queue[:0]
	e.healthCheckDone = false
	e.liquidations = 0

	received := types.NewCoins(receivedFunds...)

	for _, action := range actionBatch {
		if types.IsLiquidation(action) {
			e.liquidations++
			if e.liquidations > 1 {
				return types.ErrExceedsMaxLiquidationLimit
			}
		}
		if err := e.handleAction(accountID, owner, action, received); err != nil {
			return err
		}
	}

	// every attached coin must be consumed by a deposit, otherwise it would
	// be stranded in the engine's custody
	if !received.IsEmpty() {
		return types.ExtraFundsReceivedError{Coins: received}
	}

	if err := e.enqueue("assert-healthy", func() error {
		return e.assertHealthy(accountID)
	}); err != nil {
		return err
	}
	return e.drain()
}

func (e *Engine) handleAction(accountID, owner string, action types.Action, received *types.Coins) error {
	switch a := action.(type) {
	case types.Deposit:
		// deposits are settled up front, everything else is deferred
		return e.deposit(accountID, a.Coin, received)
	case types.Withdraw:
		return e.enqueue("withdraw", func() error { return e.withdraw(accountID, owner, a.Coin) })
	case types.Borrow:
		return e.enqueue("borrow", func() error { return e.borrow(accountID, a.Coin) })
	case types.Repay:
		return e.enqueue("repay", func() error { return e.repay(accountID, a.Coin) })
	case types.Lend:
		return e.enqueue("lend", func() error { return e.lend(accountID, a.Coin) })
	case types.Reclaim:
		return e.enqueue("reclaim", func() error { return e.reclaim(accountID, a.Coin) })
	case types.EnterVault:
		return e.enqueue("enter-vault", func() error { return e.enterVault(accountID, a.Vault, a.Coin) })
	case types.ExitVault:
		return e.enqueue("exit-vault", func() error { return e.exitVault(accountID, a.Vault, a.Amount, false) })
	case types.RequestVaultUnlock:
		return e.enqueue("request-vault-unlock", func() error { return e.requestVaultUnlock(accountID, a.Vault, a.Amount) })
	case types.WithdrawUnlocked:
		return e.enqueue("withdraw-unlocked", func() error { return e.withdrawUnlocked(accountID, a.Vault, a.TicketID) })
	case types.UpdateLockupID:
		// renumbering is bookkeeping only, it runs right away
		return e.accounts.RenumberTicket(accountID, a.Vault, a.OldID, a.NewID)
	case types.RefreshVaultCoinBalance:
		return e.enqueue("refresh-vault-balance", func() error { return e.refreshVaultCoinBalance(accountID, a.Vault) })
	case types.SwapExactIn:
		return e.enqueue("swap-exact-in", func() error { return e.swapExactIn(accountID, a.CoinIn, a.DenomOut, a.Slippage) })
	case types.ProvideLiquidity:
		return e.enqueue("provide-liquidity", func() error { return e.provideLiquidity(accountID, a.CoinsIn, a.LPTokenOut, a.MinimumReceive) })
	case types.WithdrawLiquidity:
		return e.enqueue("withdraw-liquidity", func() error { return e.withdrawLiquidity(accountID, a.LPToken) })
	case types.RefundAllBalances:
		return e.enqueue("refund-all-balances", func() error { return e.refundAllBalances(accountID, owner) })
	case types.LiquidateCoin:
		return e.enqueue("liquidate-coin", func() error { return e.liquidateCoin(accountID, a.LiquidateeID, a.DebtCoin, a.RequestDenom) })
	case types.LiquidateLend:
		return e.enqueue("liquidate-lend", func() error { return e.liquidateLend(accountID, a.LiquidateeID, a.DebtCoin, a.RequestDenom) })
	case types.LiquidateVault:
		return e.enqueue("liquidate-vault", func() error { return e.liquidateVault(accountID, a.LiquidateeID, a.DebtCoin, a.RequestVault, a.Bucket) })
	default:
		return types.UnknownActionError{Action: action}
	}
}

// enqueue defers work to run after the current action or callback, before
// anything queued later. Once the terminal health assertion has run nothing
// more may be added.
func (e *Engine) enqueue(name string, fn func() error) error {
	if e.healthCheckDone {
		return types.ErrCallbackAfterHealthCheck
	}
	cb := Callback{Name: name, Fn: fn}
	if e.draining {
		e.pending = append(e.pending, cb)
	} else {
		e.queue = append(e.queue, cb)
	}
	return nil
}

// drain runs the callback queue to completion through the dispatcher.
// Callbacks enqueued by a running callback are spliced in right behind it,
// ahead of the rest of the queue, so a chain of deferred work completes
// before the terminal health assertion.
func (e *Engine) drain() error {
	e.draining = true
	defer func() { e.draining = false }()

	for len(e.queue) > 0 {
		cb := e.queue[0]
		e.queue = e.queue[1:]
		e.pending = nil
		metrics.CallbacksExecuted.Inc()
		if err := e.dispatcher.Dispatch(cb); err != nil {
			return err
		}
		if len(e.pending) > 0 {
			e.queue = append(e.pending, e.queue...)
		}
	}
	return nil
}

// RunCallback executes a pipeline callback on behalf of an asynchronous
// dispatcher. Callbacks only exist while a batch drains its queue, any
// invocation outside that window is rejected.
func (e *Engine) RunCallback(cb Callback) error {
	if !e.guard.active() || !e.draining {
		return types.ErrExternalInvocation
	}
	return cb.Fn()
}

// assertHealthy is the terminal callback of every batch: the account must
// not be left above its max LTV.
func (e *Engine) assertHealthy(accountID string) error {
	h, err := e.computeHealth(accountID)
	if err != nil {
		return err
	}
	e.healthCheckDone = true
	if h.IsAboveMaxLTV() {
		return types.ErrAboveMaxLTV
	}
	if e.log.IsDebug() {
		e.log.Debug("batch left account healthy",
			logging.AccountID(accountID),
			logging.String("health", h.String()),
		)
	}
	return nil
}

func (e *Engine) computeHealth(accountID string) (types.Health, error) {
	state, err := e.accounts.State(accountID, e.market)
	if err != nil {
		return types.Health{}, err
	}
	return e.health.Compute(state)
}

func (e *Engine) inLiquidation() bool {
	return e.liquidations > 0
}
