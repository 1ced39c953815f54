package registry

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SL-Lee/simple-ciphers-go/pkg/ciphers"
)

// OperationType tells an encrypting operation from a decrypting one.
type OperationType string

const (
	OperationTypeEncrypt OperationType = "encrypt"
	OperationTypeDecrypt OperationType = "decrypt"
)

// Operation is a single cipher direction addressed by name, taking its key as
// text so that integer-keyed and string-keyed ciphers share one shape.
type Operation interface {
	// Name returns the unique identifier, e.g. "caesar_encrypt".
	Name() string

	// Cipher returns the cipher family, e.g. "caesar".
	Cipher() string

	// Type returns whether the operation encrypts or decrypts.
	Type() OperationType

	// Description returns a human-readable description.
	Description() string

	// ValidateKey checks key for use with input without transforming anything.
	ValidateKey(input, key string) error

	// Execute applies the operation to input.
	Execute(ctx context.Context, input, key string) (string, error)

	// Reverse returns the inverse operation, or false if the operation is
	// one-way.
	Reverse() (Operation, bool)
}

type transform func(input, key string) (string, error)

type cipherOp struct {
	cipher      string
	typ         OperationType
	description string
	run         transform
	validate    func(input, key string) error
	reverse     *cipherOp
}

func (o *cipherOp) Name() string        { return o.cipher + "_" + string(o.typ) }
func (o *cipherOp) Cipher() string      { return o.cipher }
func (o *cipherOp) Type() OperationType { return o.typ }
func (o *cipherOp) Description() string { return o.description }

func (o *cipherOp) Reverse() (Operation, bool) {
	if o.reverse == nil {
		return nil, false
	}
	return o.reverse, true
}

func (o *cipherOp) ValidateKey(input, key string) error {
	return o.validate(input, key)
}

func (o *cipherOp) Execute(ctx context.Context, input, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return o.run(input, key)
}

// pair builds the encrypt/decrypt operations of one cipher, each the other's
// reverse.
func pair(cipher, description string, encrypt, decrypt transform, validate func(input, key string) error) (Operation, Operation) {
	enc := &cipherOp{
		cipher:      cipher,
		typ:         OperationTypeEncrypt,
		description: "Encrypt with the " + description,
		run:         encrypt,
		validate:    validate,
	}
	dec := &cipherOp{
		cipher:      cipher,
		typ:         OperationTypeDecrypt,
		description: "Decrypt with the " + description,
		run:         decrypt,
		validate:    validate,
	}
	enc.reverse, dec.reverse = dec, enc
	return enc, dec
}

// intKey adapts a cipher taking an integer key. A key that is not a decimal
// integer is reported as kind, the same as an out-of-range one.
func intKey(fn func(string, int) (string, error), kind ciphers.Kind, op string) transform {
	return func(input, key string) (string, error) {
		n, err := parseIntKey(key, kind, op)
		if err != nil {
			return "", err
		}
		return fn(input, n)
	}
}

func intValidator(fn func(int) (int, error), kind ciphers.Kind, op string) func(string, string) error {
	return func(_, key string) error {
		n, err := parseIntKey(key, kind, op)
		if err != nil {
			return err
		}
		_, err = fn(n)
		return err
	}
}

func parseIntKey(key string, kind ciphers.Kind, op string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, fmt.Errorf("parse key: %w", ciphers.NewError(kind, op))
	}
	return n, nil
}
