// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/account"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/rpc/auth"
	"github.com/fractiond/fractiond/rpc/ratelimit"
)

// Registry
// --------

const (
	rateLimitRegistry = 200
	rateBurstRegistry = 100
)

// Handles - the registry collaborators
type Handles struct {
	RegisterAsset  func(owner string, metadata string) (uint64, error)
	CheckInAsset   func(assetId uint64, actor string) error
	VerifyAsset    func(assetId uint64, actor string) error
	RegisterOracle func(oracleAccount string) error
	ApproveOracle  func(oracleAccount string, actor string) error
	Deposit        func(account string, amount uint64) error
	Withdraw       func(account string, amount uint64) error
	PaymentBalance func(account string) uint64
	VaultDeposit   func(assetId uint64, amount uint64) error
	ChargeFee      func(assetId uint64, amount uint64) error
	VaultBalance   func(assetId uint64) (uint64, uint64)
}

// Registry - type for RPC
type Registry struct {
	Log             *logger.L
	Limiter         *rate.Limiter
	IsNormalMode    func(mode.Mode) bool
	ProtocolAccount string
	Handles         Handles
}

func New(log *logger.L,
	isNormalMode func(mode.Mode) bool,
	protocolAccount string,
	handles Handles,
) *Registry {
	return &Registry{
		Log:             log,
		Limiter:         rate.NewLimiter(rateLimitRegistry, rateBurstRegistry),
		IsNormalMode:    isNormalMode,
		ProtocolAccount: protocolAccount,
		Handles:         handles,
	}
}

// checked - common validation for signed mutating calls
func (registry *Registry) checked(owner *account.Account, signature account.Signature, operation string, parts ...interface{}) (string, error) {
	if err := ratelimit.Limit(registry.Limiter); nil != err {
		return "", err
	}
	if nil == owner {
		return "", fault.InvalidItem
	}
	if !registry.IsNormalMode(mode.Normal) {
		return "", fault.NotAvailableDuringStartup
	}

	actor := owner.String()
	err := auth.Verify(owner, signature, operation, append([]interface{}{actor}, parts...)...)
	if nil != err {
		return "", err
	}
	return actor, nil
}

// Asset custody lifecycle
// -----------------------

// RegisterAssetArguments - arguments for RPC
type RegisterAssetArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Metadata  string            `json:"metadata"`
	Signature account.Signature `json:"signature"`
}

// RegisterAssetReply - identity of the new asset
type RegisterAssetReply struct {
	AssetId uint64 `json:"assetId"`
}

// RegisterAsset - record a new custody asset for the caller
func (registry *Registry) RegisterAsset(arguments *RegisterAssetArguments, reply *RegisterAssetReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.RegisterAsset: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.registerAsset", arguments.Metadata)
	if nil != err {
		return err
	}

	assetId, err := registry.Handles.RegisterAsset(actor, arguments.Metadata)
	if nil != err {
		return err
	}

	reply.AssetId = assetId
	return nil
}

// AssetArguments - signed request naming only an asset
type AssetArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	AssetId   uint64            `json:"assetId"`
	Signature account.Signature `json:"signature"`
}

// AssetReply - empty result
type AssetReply struct{}

// CheckIn - the owner surrenders the asset to custody
func (registry *Registry) CheckIn(arguments *AssetArguments, _ *AssetReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.CheckIn: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.checkIn", arguments.AssetId)
	if nil != err {
		return err
	}

	return registry.Handles.CheckInAsset(arguments.AssetId, actor)
}

// Verify - the protocol account confirms custody inspection
func (registry *Registry) Verify(arguments *AssetArguments, _ *AssetReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.Verify: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.verify", arguments.AssetId)
	if nil != err {
		return err
	}

	return registry.Handles.VerifyAsset(arguments.AssetId, actor)
}

// Oracle registry
// ---------------

// RegisterOracleArguments - arguments for RPC
type RegisterOracleArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Signature account.Signature `json:"signature"`
}

// RegisterOracleReply - empty result
type RegisterOracleReply struct{}

// RegisterOracle - the caller registers its own account as an oracle
func (registry *Registry) RegisterOracle(arguments *RegisterOracleArguments, _ *RegisterOracleReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.RegisterOracle: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.registerOracle")
	if nil != err {
		return err
	}

	return registry.Handles.RegisterOracle(actor)
}

// ApproveOracleArguments - arguments for RPC
type ApproveOracleArguments struct {
	Owner     *account.Account  `json:"owner"`  // base58
	Oracle    *account.Account  `json:"oracle"` // base58
	Signature account.Signature `json:"signature"`
}

// ApproveOracleReply - empty result
type ApproveOracleReply struct{}

// ApproveOracle - the protocol account approves a registered oracle
func (registry *Registry) ApproveOracle(arguments *ApproveOracleArguments, _ *ApproveOracleReply) error {
	if nil == arguments || nil == arguments.Oracle {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.ApproveOracle: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.approveOracle", arguments.Oracle.String())
	if nil != err {
		return err
	}

	return registry.Handles.ApproveOracle(arguments.Oracle.String(), actor)
}

// Exchange token balances
// -----------------------

// AmountArguments - signed request naming only an amount
type AmountArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// AmountReply - empty result
type AmountReply struct{}

// Deposit - credit the caller's exchange token balance
func (registry *Registry) Deposit(arguments *AmountArguments, _ *AmountReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.Deposit: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.deposit", arguments.Amount)
	if nil != err {
		return err
	}

	return registry.Handles.Deposit(actor, arguments.Amount)
}

// Withdraw - debit the caller's exchange token balance
func (registry *Registry) Withdraw(arguments *AmountArguments, _ *AmountReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.Withdraw: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.withdraw", arguments.Amount)
	if nil != err {
		return err
	}

	return registry.Handles.Withdraw(actor, arguments.Amount)
}

// BalanceArguments - unsigned balance query
type BalanceArguments struct {
	Owner *account.Account `json:"owner"` // base58
}

// BalanceReply - exchange token balance of an account
type BalanceReply struct {
	Balance uint64 `json:"balance"`
}

// Balance - exchange token balance of an account
func (registry *Registry) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(registry.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.InvalidItem
	}

	reply.Balance = registry.Handles.PaymentBalance(arguments.Owner.String())
	return nil
}

// Vault escrow
// ------------

// VaultArguments - signed request naming an asset and an amount
type VaultArguments struct {
	Owner     *account.Account  `json:"owner"` // base58
	AssetId   uint64            `json:"assetId"`
	Amount    uint64            `json:"amount"`
	Signature account.Signature `json:"signature"`
}

// VaultReply - empty result
type VaultReply struct{}

// VaultDeposit - the protocol account records an escrow deposit
func (registry *Registry) VaultDeposit(arguments *VaultArguments, _ *VaultReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.VaultDeposit: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.vaultDeposit", arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}
	if actor != registry.ProtocolAccount {
		return fault.NotProtocolAccount
	}

	return registry.Handles.VaultDeposit(arguments.AssetId, arguments.Amount)
}

// ChargeFee - the protocol account records a custody fee as debt
func (registry *Registry) ChargeFee(arguments *VaultArguments, _ *VaultReply) error {
	if nil == arguments {
		return fault.InvalidItem
	}

	registry.Log.Infof("Registry.ChargeFee: %+v", arguments)

	actor, err := registry.checked(arguments.Owner, arguments.Signature,
		"registry.chargeFee", arguments.AssetId, arguments.Amount)
	if nil != err {
		return err
	}
	if actor != registry.ProtocolAccount {
		return fault.NotProtocolAccount
	}

	return registry.Handles.ChargeFee(arguments.AssetId, arguments.Amount)
}

// VaultBalanceArguments - unsigned vault query
type VaultBalanceArguments struct {
	AssetId uint64 `json:"assetId"`
}

// VaultBalanceReply - escrow and debt recorded against an asset
type VaultBalanceReply struct {
	Escrow uint64 `json:"escrow"`
	Debt   uint64 `json:"debt"`
}

// VaultBalance - escrow and debt recorded against an asset
func (registry *Registry) VaultBalance(arguments *VaultBalanceArguments, reply *VaultBalanceReply) error {
	if err := ratelimit.Limit(registry.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.InvalidItem
	}

	reply.Escrow, reply.Debt = registry.Handles.VaultBalance(arguments.AssetId)
	return nil
}
