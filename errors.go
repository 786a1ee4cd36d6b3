package capycrypt

// Kind enumerates the error conditions of spec.md §4.10.
type Kind int

const (
	UnsupportedSecurityParameter Kind = iota
	SignatureVerificationFailure
	SHA3DecryptionFailure
	KeyDecryptionError
	SymNonceNotSet
	DigestNotSet
	SecurityParameterNotSet
	SignatureNotSet
	XORFailure
	AESDecryptionFailure
)

var kindText = map[Kind]string{
	UnsupportedSecurityParameter: "unsupported security parameter",
	SignatureVerificationFailure: "signature verification failure",
	SHA3DecryptionFailure:        "sha3 decryption failure: authentication tag mismatch",
	KeyDecryptionError:           "key decryption error: authentication tag mismatch",
	SymNonceNotSet:               "symmetric nonce not set",
	DigestNotSet:                 "digest not set",
	SecurityParameterNotSet:      "security parameter not set",
	SignatureNotSet:              "signature not set",
	XORFailure:                   "xor failure: operand length mismatch",
	AESDecryptionFailure:         "aes-ctr decryption failure: authentication tag mismatch",
}

// OperationError is the error type this package's operations return
// for the conditions listed under Kind; errors from other packages
// (an invalid AES key size, a random-source failure, a malformed JSON
// document) are returned unchanged. It carries a Kind so callers can
// branch with errors.Is against the exported sentinels below.
type OperationError struct {
	Kind Kind
}

func (e *OperationError) Error() string {
	if s, ok := kindText[e.Kind]; ok {
		return "capycrypt: " + s
	}
	return "capycrypt: unknown error"
}

// Is reports whether target is an *OperationError with the same Kind,
// so errors.Is(err, ErrXxx) works against the sentinels below.
func (e *OperationError) Is(target error) bool {
	other, ok := target.(*OperationError)
	return ok && other.Kind == e.Kind
}

func newErr(k Kind) *OperationError { return &OperationError{Kind: k} }

// Sentinel errors, one per spec.md §4.10 row (plus AESDecryptionFailure,
// the supplemented AES-CTR alternate cipher's equivalent of
// SHA3DecryptionFailure/KeyDecryptionError).
var (
	ErrUnsupportedSecurityParameter = newErr(UnsupportedSecurityParameter)
	ErrSignatureVerificationFailure = newErr(SignatureVerificationFailure)
	ErrSHA3DecryptionFailure        = newErr(SHA3DecryptionFailure)
	ErrKeyDecryptionError           = newErr(KeyDecryptionError)
	ErrSymNonceNotSet               = newErr(SymNonceNotSet)
	ErrDigestNotSet                 = newErr(DigestNotSet)
	ErrSecurityParameterNotSet      = newErr(SecurityParameterNotSet)
	ErrSignatureNotSet              = newErr(SignatureNotSet)
	ErrXORFailure                   = newErr(XORFailure)
	ErrAESDecryptionFailure         = newErr(AESDecryptionFailure)
)
