// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccessDeniedError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyFractionalised        = ExistsError("already fractionalised")
	AlreadyInitialised           = ProcessError("already initialised")
	AlreadyRedeemed              = InvalidError("already redeemed")
	AssetNotFound                = NotFoundError("asset not found")
	AuctionEnded                 = InvalidError("auction ended")
	AuctionNotFound              = NotFoundError("auction not found")
	AuctionNotStarted            = InvalidError("auction not started")
	AuctionOngoing               = InvalidError("auction ongoing")
	AuctionReserved              = InvalidError("auction reserved")
	BidBelowExitPrice            = InvalidError("bid below exit price")
	BidRemovalNotAllowed         = InvalidError("bid removal not allowed")
	CannotDecodeAccount          = InvalidError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = InvalidError("checksum mismatch")
	EpochNotFound                = NotFoundError("epoch not found")
	EpochNotSettled              = InvalidError("epoch not settled")
	InsufficientBalance          = InvalidError("insufficient balance")
	InsufficientFunds            = InvalidError("insufficient funds")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidBid                   = InvalidError("invalid bid")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCustodyState          = InvalidError("invalid custody state")
	InvalidDuration              = InvalidError("invalid duration")
	InvalidExitPrice             = InvalidError("invalid exit price")
	InvalidFractionAmount        = InvalidError("invalid fraction amount")
	InvalidIpAddress             = InvalidError("invalid ip address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidLoggerChannel         = ProcessError("invalid logger channel")
	InvalidNetwork               = InvalidError("invalid network")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidProposal              = InvalidError("invalid proposal")
	InvalidSignature             = InvalidError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidUnlockThreshold       = InvalidError("invalid unlock threshold")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MaxBidderCannotVote          = AccessDeniedError("max bidder cannot vote")
	MissingParameters            = InvalidError("missing parameters")
	NoBids                       = InvalidError("no bids")
	NoFractions                  = InvalidError("no fractions")
	NoFractionsAvailable         = InvalidError("no fractions available")
	NotAssetOwner                = AccessDeniedError("not asset owner")
	NotAvailableDuringStartup    = ProcessError("not available during startup")
	NotEnoughLockedVotes         = InvalidError("not enough locked votes")
	NotInitialised               = ProcessError("not initialised")
	NotMaxBidder                 = AccessDeniedError("not max bidder")
	NotOracleAccount             = AccessDeniedError("not oracle account")
	NotProtocolAccount           = AccessDeniedError("not protocol account")
	NotPublicKey                 = InvalidError("not public key")
	OracleNotApproved            = AccessDeniedError("oracle not approved")
	OutOfDateDatabase            = ProcessError("out of date database")
	ProposalAlreadyFinalized     = InvalidError("proposal already finalized")
	ProposalNotFound             = NotFoundError("proposal not found")
	ProposalStillActive          = InvalidError("proposal still active")
	RateLimiting                 = ProcessError("rate limiting")
	TokenNotFractionalised       = InvalidError("token not fractionalised")
	TransactionAlreadyExists     = ExistsError("transaction already exists")
	WrongExchangeToken           = InvalidError("wrong exchange token")
	WrongNetworkForPrivateKey    = InvalidError("wrong network for private key")
	WrongPaymentAmount           = InvalidError("wrong payment amount")
	WrongPasswordOrInvalidInput  = InvalidError("wrong password or invalid input")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessDeniedError) Error() string { return string(e) }
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// IsErrAccessDenied - determine if an authorization class error
func IsErrAccessDenied(e error) bool { _, ok := e.(AccessDeniedError); return ok }

// IsErrExists - determine if a duplicate class error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine if a value/state class error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine if a missing item class error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine if a processing class error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
