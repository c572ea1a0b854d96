/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package rcode enumerates the response codes returned by consensus nodes,
// both as precheck results and as receipt statuses.
package rcode

import "strconv"

// Code is a network response code.
type Code int32

// Response codes. Values are the wire values of the network's
// ResponseCodeEnum.
const (
	OK                                   Code = 0
	InvalidTransaction                   Code = 1
	PayerAccountNotFound                 Code = 2
	InvalidNodeAccount                   Code = 3
	TransactionExpired                   Code = 4
	InvalidTransactionStart              Code = 5
	InvalidTransactionDuration           Code = 6
	InvalidSignature                     Code = 7
	MemoTooLong                          Code = 8
	InsufficientTxFee                    Code = 9
	InsufficientPayerBalance             Code = 10
	DuplicateTransaction                 Code = 11
	Busy                                 Code = 12
	NotSupported                         Code = 13
	InvalidFileID                        Code = 14
	InvalidAccountID                     Code = 15
	InvalidContractID                    Code = 16
	InvalidTransactionID                 Code = 17
	ReceiptNotFound                      Code = 18
	RecordNotFound                       Code = 19
	InvalidSolidityID                    Code = 20
	Unknown                              Code = 21
	Success                              Code = 22
	FailInvalid                          Code = 23
	FailFee                              Code = 24
	FailBalance                          Code = 25
	KeyRequired                          Code = 26
	BadEncoding                          Code = 27
	InsufficientAccountBalance           Code = 28
	InvalidSolidityAddress               Code = 29
	InsufficientGas                      Code = 30
	ContractSizeLimitExceeded            Code = 31
	LocalCallModificationException       Code = 32
	ContractRevertExecuted               Code = 33
	ContractExecutionException           Code = 34
	InvalidReceivingNodeAccount          Code = 35
	MissingQueryHeader                   Code = 36
	AccountUpdateFailed                  Code = 37
	InvalidKeyEncoding                   Code = 38
	NullSolidityAddress                  Code = 39
	ContractUpdateFailed                 Code = 40
	InvalidQueryHeader                   Code = 41
	InvalidFeeSubmitted                  Code = 42
	InvalidPayerSignature                Code = 43
	KeyNotProvided                       Code = 44
	InvalidExpirationTime                Code = 45
	NoWACLKey                            Code = 46
	FileContentEmpty                     Code = 47
	InvalidAccountAmounts                Code = 48
	EmptyTransactionBody                 Code = 49
	InvalidTransactionBody               Code = 50
	InvalidSignatureTypeMismatchingKey   Code = 51
	InvalidSignatureCountMismatchingKey  Code = 52
	EmptyLiveHashBody                    Code = 53
	EmptyLiveHash                        Code = 54
	EmptyLiveHashKeys                    Code = 55
	InvalidLiveHashSize                  Code = 56
	EmptyQueryBody                       Code = 57
	EmptyLiveHashQuery                   Code = 58
	LiveHashNotFound                     Code = 59
	AccountIDDoesNotExist                Code = 60
	LiveHashAlreadyExists                Code = 61
	InvalidFileWACL                      Code = 62
	SerializationFailed                  Code = 63
	TransactionOversize                  Code = 64
	TransactionTooManyLayers             Code = 65
	ContractDeleted                      Code = 66
	PlatformNotActive                    Code = 67
	KeyPrefixMismatch                    Code = 68
	PlatformTransactionNotCreated        Code = 69
	InvalidRenewalPeriod                 Code = 70
	InvalidPayerAccountID                Code = 71
	AccountDeleted                       Code = 72
	FileDeleted                          Code = 73
	AccountRepeatedInAccountAmounts      Code = 74
	SettingNegativeAccountBalance        Code = 75
	ObtainerRequired                     Code = 76
	ObtainerSameContractID               Code = 77
	ObtainerDoesNotExist                 Code = 78
	ModifyingImmutableContract           Code = 79
	FileSystemException                  Code = 80
	AutorenewDurationNotInRange          Code = 81
	ErrorDecodingBytestring              Code = 82
	ContractFileEmpty                    Code = 83
	ContractBytecodeEmpty                Code = 84
	InvalidInitialBalance                Code = 85
	InvalidTopicID                       Code = 150
	InvalidAdminKey                      Code = 155
	InvalidSubmitKey                     Code = 156
	Unauthorized                         Code = 157
	InvalidTopicMessage                  Code = 158
	InvalidAutorenewAccount              Code = 159
	AutorenewAccountNotAllowed           Code = 160
	TopicExpired                         Code = 162
	InvalidChunkNumber                   Code = 163
	InvalidChunkTransactionID            Code = 164
	AccountFrozenForToken                Code = 165
	TokensPerAccountLimitExceeded        Code = 166
	InvalidTokenID                       Code = 167
	InvalidTokenDecimals                 Code = 168
	InvalidTokenInitialSupply            Code = 169
	InvalidTreasuryAccountForToken       Code = 170
	InvalidTokenSymbol                   Code = 171
	TokenHasNoFreezeKey                  Code = 172
	TransfersNotZeroSumForToken          Code = 173
	MissingTokenSymbol                   Code = 174
	TokenSymbolTooLong                   Code = 175
	AccountKYCNotGrantedForToken         Code = 176
	TokenHasNoKYCKey                     Code = 177
	InsufficientTokenBalance             Code = 178
	TokenWasDeleted                      Code = 179
	TokenHasNoSupplyKey                  Code = 180
	TokenHasNoWipeKey                    Code = 181
	InvalidTokenMintAmount               Code = 182
	InvalidTokenBurnAmount               Code = 183
	TokenNotAssociatedToAccount          Code = 184
	CannotWipeTokenTreasuryAccount       Code = 185
	InvalidKYCKey                        Code = 186
	InvalidWipeKey                       Code = 187
	InvalidFreezeKey                     Code = 188
	InvalidSupplyKey                     Code = 189
	MissingTokenName                     Code = 190
	TokenNameTooLong                     Code = 191
	InvalidWipingAmount                  Code = 192
	TokenIsImmutable                     Code = 193
	TokenAlreadyAssociatedToAccount      Code = 194
	TransactionRequiresZeroTokenBalances Code = 195
	AccountIsTreasury                    Code = 196
)

var codeName = map[int32]string{
	0:   "OK",
	1:   "INVALID_TRANSACTION",
	2:   "PAYER_ACCOUNT_NOT_FOUND",
	3:   "INVALID_NODE_ACCOUNT",
	4:   "TRANSACTION_EXPIRED",
	5:   "INVALID_TRANSACTION_START",
	6:   "INVALID_TRANSACTION_DURATION",
	7:   "INVALID_SIGNATURE",
	8:   "MEMO_TOO_LONG",
	9:   "INSUFFICIENT_TX_FEE",
	10:  "INSUFFICIENT_PAYER_BALANCE",
	11:  "DUPLICATE_TRANSACTION",
	12:  "BUSY",
	13:  "NOT_SUPPORTED",
	14:  "INVALID_FILE_ID",
	15:  "INVALID_ACCOUNT_ID",
	16:  "INVALID_CONTRACT_ID",
	17:  "INVALID_TRANSACTION_ID",
	18:  "RECEIPT_NOT_FOUND",
	19:  "RECORD_NOT_FOUND",
	20:  "INVALID_SOLIDITY_ID",
	21:  "UNKNOWN",
	22:  "SUCCESS",
	23:  "FAIL_INVALID",
	24:  "FAIL_FEE",
	25:  "FAIL_BALANCE",
	26:  "KEY_REQUIRED",
	27:  "BAD_ENCODING",
	28:  "INSUFFICIENT_ACCOUNT_BALANCE",
	29:  "INVALID_SOLIDITY_ADDRESS",
	30:  "INSUFFICIENT_GAS",
	31:  "CONTRACT_SIZE_LIMIT_EXCEEDED",
	32:  "LOCAL_CALL_MODIFICATION_EXCEPTION",
	33:  "CONTRACT_REVERT_EXECUTED",
	34:  "CONTRACT_EXECUTION_EXCEPTION",
	35:  "INVALID_RECEIVING_NODE_ACCOUNT",
	36:  "MISSING_QUERY_HEADER",
	37:  "ACCOUNT_UPDATE_FAILED",
	38:  "INVALID_KEY_ENCODING",
	39:  "NULL_SOLIDITY_ADDRESS",
	40:  "CONTRACT_UPDATE_FAILED",
	41:  "INVALID_QUERY_HEADER",
	42:  "INVALID_FEE_SUBMITTED",
	43:  "INVALID_PAYER_SIGNATURE",
	44:  "KEY_NOT_PROVIDED",
	45:  "INVALID_EXPIRATION_TIME",
	46:  "NO_WACL_KEY",
	47:  "FILE_CONTENT_EMPTY",
	48:  "INVALID_ACCOUNT_AMOUNTS",
	49:  "EMPTY_TRANSACTION_BODY",
	50:  "INVALID_TRANSACTION_BODY",
	51:  "INVALID_SIGNATURE_TYPE_MISMATCHING_KEY",
	52:  "INVALID_SIGNATURE_COUNT_MISMATCHING_KEY",
	53:  "EMPTY_LIVE_HASH_BODY",
	54:  "EMPTY_LIVE_HASH",
	55:  "EMPTY_LIVE_HASH_KEYS",
	56:  "INVALID_LIVE_HASH_SIZE",
	57:  "EMPTY_QUERY_BODY",
	58:  "EMPTY_LIVE_HASH_QUERY",
	59:  "LIVE_HASH_NOT_FOUND",
	60:  "ACCOUNT_ID_DOES_NOT_EXIST",
	61:  "LIVE_HASH_ALREADY_EXISTS",
	62:  "INVALID_FILE_WACL",
	63:  "SERIALIZATION_FAILED",
	64:  "TRANSACTION_OVERSIZE",
	65:  "TRANSACTION_TOO_MANY_LAYERS",
	66:  "CONTRACT_DELETED",
	67:  "PLATFORM_NOT_ACTIVE",
	68:  "KEY_PREFIX_MISMATCH",
	69:  "PLATFORM_TRANSACTION_NOT_CREATED",
	70:  "INVALID_RENEWAL_PERIOD",
	71:  "INVALID_PAYER_ACCOUNT_ID",
	72:  "ACCOUNT_DELETED",
	73:  "FILE_DELETED",
	74:  "ACCOUNT_REPEATED_IN_ACCOUNT_AMOUNTS",
	75:  "SETTING_NEGATIVE_ACCOUNT_BALANCE",
	76:  "OBTAINER_REQUIRED",
	77:  "OBTAINER_SAME_CONTRACT_ID",
	78:  "OBTAINER_DOES_NOT_EXIST",
	79:  "MODIFYING_IMMUTABLE_CONTRACT",
	80:  "FILE_SYSTEM_EXCEPTION",
	81:  "AUTORENEW_DURATION_NOT_IN_RANGE",
	82:  "ERROR_DECODING_BYTESTRING",
	83:  "CONTRACT_FILE_EMPTY",
	84:  "CONTRACT_BYTECODE_EMPTY",
	85:  "INVALID_INITIAL_BALANCE",
	150: "INVALID_TOPIC_ID",
	155: "INVALID_ADMIN_KEY",
	156: "INVALID_SUBMIT_KEY",
	157: "UNAUTHORIZED",
	158: "INVALID_TOPIC_MESSAGE",
	159: "INVALID_AUTORENEW_ACCOUNT",
	160: "AUTORENEW_ACCOUNT_NOT_ALLOWED",
	162: "TOPIC_EXPIRED",
	163: "INVALID_CHUNK_NUMBER",
	164: "INVALID_CHUNK_TRANSACTION_ID",
	165: "ACCOUNT_FROZEN_FOR_TOKEN",
	166: "TOKENS_PER_ACCOUNT_LIMIT_EXCEEDED",
	167: "INVALID_TOKEN_ID",
	168: "INVALID_TOKEN_DECIMALS",
	169: "INVALID_TOKEN_INITIAL_SUPPLY",
	170: "INVALID_TREASURY_ACCOUNT_FOR_TOKEN",
	171: "INVALID_TOKEN_SYMBOL",
	172: "TOKEN_HAS_NO_FREEZE_KEY",
	173: "TRANSFERS_NOT_ZERO_SUM_FOR_TOKEN",
	174: "MISSING_TOKEN_SYMBOL",
	175: "TOKEN_SYMBOL_TOO_LONG",
	176: "ACCOUNT_KYC_NOT_GRANTED_FOR_TOKEN",
	177: "TOKEN_HAS_NO_KYC_KEY",
	178: "INSUFFICIENT_TOKEN_BALANCE",
	179: "TOKEN_WAS_DELETED",
	180: "TOKEN_HAS_NO_SUPPLY_KEY",
	181: "TOKEN_HAS_NO_WIPE_KEY",
	182: "INVALID_TOKEN_MINT_AMOUNT",
	183: "INVALID_TOKEN_BURN_AMOUNT",
	184: "TOKEN_NOT_ASSOCIATED_TO_ACCOUNT",
	185: "CANNOT_WIPE_TOKEN_TREASURY_ACCOUNT",
	186: "INVALID_KYC_KEY",
	187: "INVALID_WIPE_KEY",
	188: "INVALID_FREEZE_KEY",
	189: "INVALID_SUPPLY_KEY",
	190: "MISSING_TOKEN_NAME",
	191: "TOKEN_NAME_TOO_LONG",
	192: "INVALID_WIPING_AMOUNT",
	193: "TOKEN_IS_IMMUTABLE",
	194: "TOKEN_ALREADY_ASSOCIATED_TO_ACCOUNT",
	195: "TRANSACTION_REQUIRES_ZERO_TOKEN_BALANCES",
	196: "ACCOUNT_IS_TREASURY",
}

// String returns the network name of the code, or its number when the code
// is not known to the SDK.
func (c Code) String() string {
	if s, ok := codeName[int32(c)]; ok {
		return s
	}
	return strconv.Itoa(int(c))
}

// FromName returns the code with the given network name.
func FromName(name string) (Code, bool) {
	for v, n := range codeName {
		if n == name {
			return Code(v), true
		}
	}
	return 0, false
}
