// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// marketplace state errors - keep in alphabetic order
var (
	AlreadyInitialised     = ExistsError("already initialised")
	AlreadyListed          = ExistsError("asset is already listed by this seller")
	AssetAlreadyIssued     = ExistsError("asset already issued")
	AssetNotFound          = NotFoundError("asset not found")
	CustodyNotFound        = NotFoundError("custody record not found")
	EscrowMismatch         = RecordError("custody delegate does not match listing state")
	FeeOutOfRange          = InvalidError("fee rate out of range")
	InsufficientBalance    = InvalidError("insufficient balance for delegation")
	InvalidCallerData      = PermissionError("caller is not the deployer")
	InvalidTokenAmount     = InvalidError("custody amount must be exactly one")
	NotInitialised         = NotFoundError("not initialised")
	NotListed              = NotFoundError("asset is not listed by this seller")
	RegistryCorrupt        = RecordError("listing registry does not match listing records")
	RegistryFull           = LengthError("listing registry is full")
	RegistrySpaceExhausted = LengthError("listing registry space cannot grow further")
	Unauthorised           = PermissionError("caller is not authorised")
)

// common errors - keep in alphabetic order
var (
	AlreadyStarted              = ExistsError("already started")
	CannotDecodeAccount         = RecordError("cannot decode account")
	CannotDecodePrivateKey      = RecordError("cannot decode private key")
	CertificateFileExists       = ExistsError("certificate file already exists")
	ChecksumMismatch            = ProcessError("checksum mismatch")
	DatabaseIsNotSet            = ProcessError("database is not set")
	DatabaseVersionIncompatible = ProcessError("database version is incompatible")
	InvalidAddress              = InvalidError("invalid address")
	InvalidChain                = InvalidError("invalid chain")
	InvalidCount                = InvalidError("invalid count")
	InvalidCursor               = InvalidError("invalid cursor")
	InvalidIpAddress            = InvalidError("invalid IP Address")
	InvalidKeyLength            = InvalidError("invalid key length")
	InvalidKeyType              = InvalidError("invalid key type")
	InvalidLoggerChannel        = InvalidError("invalid logger channel")
	InvalidNonce                = InvalidError("invalid nonce")
	InvalidPortNumber           = InvalidError("invalid port number")
	InvalidPrivateKeyFile       = InvalidError("invalid private key file")
	InvalidPublicKeyFile        = InvalidError("invalid public key file")
	InvalidSignature            = InvalidError("invalid signature")
	InvalidStructPointer        = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists        = ExistsError("key file already exists")
	MissingParameters           = InvalidError("missing parameters")
	NameTooLong                 = LengthError("name too long")
	NameTooShort                = LengthError("name too short")
	NotAPublicKey               = InvalidError("not a public key")
	NotAPrivateKey              = InvalidError("not a private key")
	NotStarted                  = NotFoundError("not started")
	NotTestingAccount           = InvalidError("account network does not match chain")
	RateLimiting                = InvalidError("rate limiting")
	RecordTruncated             = RecordError("record is truncated")
	RecordHasExtraData          = RecordError("record has extra data")
	SignatureTooLong            = LengthError("signature too long")
	SymbolTooLong               = LengthError("symbol too long")
	SymbolTooShort              = LengthError("symbol too short")
	TransactionAlreadyInUse     = ProcessError("transaction already in use")
	TransactionNotInUse         = ProcessError("transaction not in use")
	UnknownRecordTag            = RecordError("unknown record tag")
	WrongRecordType             = RecordError("wrong record type")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
