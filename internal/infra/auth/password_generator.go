package auth

import (
	"crypto/rand"
	"io"
	"math/big"

	"schoolhub/config"
	domainerrors "schoolhub/internal/domain/errors"
	"schoolhub/internal/domain/service"
)

// MinPasswordLength is the shortest password the generator will produce.
const MinPasswordLength = 10

// Character classes without look-alikes (0/O, 1/l/I).
const (
	upperChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerChars  = "abcdefghijkmnopqrstuvwxyz"
	digitChars  = "23456789"
	symbolChars = "!@#$%^&*-_=+?"
)

var passwordClasses = []string{upperChars, lowerChars, digitChars, symbolChars}

var passwordAlphabet = upperChars + lowerChars + digitChars + symbolChars

type randomPasswordGenerator struct {
	length int
	random io.Reader
}

// NewPasswordGenerator returns a crypto/rand backed generator using cfg.Auth.PasswordLength.
func NewPasswordGenerator(cfg *config.Config) service.PasswordGenerator {
	length := 0
	if cfg.Auth != nil {
		length = cfg.Auth.PasswordLength
	}

	return newPasswordGenerator(length, rand.Reader)
}

func newPasswordGenerator(length int, random io.Reader) *randomPasswordGenerator {
	if length < MinPasswordLength {
		length = MinPasswordLength
	}

	return &randomPasswordGenerator{length: length, random: random}
}

// Generate returns a password holding at least one character of every class,
// with positions shuffled.
func (g *randomPasswordGenerator) Generate() (string, error) {
	password := make([]byte, g.length)

	for i, class := range passwordClasses {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	for i := len(passwordClasses); i < g.length; i++ {
		c, err := g.pick(passwordAlphabet)
		if err != nil {
			return "", err
		}
		password[i] = c
	}

	// Fisher-Yates
	for i := len(password) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func (g *randomPasswordGenerator) pick(chars string) (byte, error) {
	n, err := g.intn(len(chars))
	if err != nil {
		return 0, err
	}

	return chars[n], nil
}

func (g *randomPasswordGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, domainerrors.ErrRandomnessUnavailable.WithDetails(err.Error())
	}

	return int(v.Int64()), nil
}
