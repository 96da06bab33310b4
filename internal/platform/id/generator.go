package id

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// InviteCodeAlphabet leaves out glyphs that are easy to misread (0/O, 1/I).
const InviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeGenerator produces short human-friendly codes.
type CodeGenerator interface {
	NewCode(length int) (string, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) NewCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be > 0")
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, length)
	for i := range buf {
		out[i] = InviteCodeAlphabet[int(buf[i])%len(InviteCodeAlphabet)]
	}

	return string(out), nil
}
