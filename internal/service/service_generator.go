package service

import (
	"fmt"
	"strings"

	"github.com/mlevansky/go-cred-vault/internal/utils"
	"github.com/mlevansky/go-cred-vault/models"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are visually ambiguous in common fonts and are stripped
	// from their classes when ExcludeSimilar is set.
	similarChars = "loIO01"

	minPasswordLength = 4
	maxPasswordLength = 128
)

// generatorService implements GeneratorService. It holds no state; every
// call draws fresh bytes from the crypto-grade random source.
type generatorService struct{}

// NewGeneratorService constructs the password generator.
func NewGeneratorService() GeneratorService {
	return &generatorService{}
}

// Generate produces a random password per the given settings.
//
// Every enabled character class is guaranteed to appear at least once.
// That is done by construction: one character from each enabled class is
// placed at a distinct random position first, then the remaining positions
// are filled from the combined alphabet. The result has no positional bias
// because the reserved positions themselves are chosen at random.
func (g *generatorService) Generate(settings models.GeneratorSettings) (string, error) {
	if settings.Length < minPasswordLength || settings.Length > maxPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	classes := enabledClasses(settings)
	if len(classes) == 0 {
		return "", ErrNoCharactersSelected
	}
	if settings.Length < len(classes) {
		// Cannot fit one character of every enabled class. Unreachable
		// with the current minimum length of 4 and at most 4 classes,
		// kept as a guard should either constant change.
		return "", ErrInvalidPasswordLength
	}

	combined := strings.Join(classes, "")

	password := make([]byte, settings.Length)
	reserved := make(map[int]struct{}, len(classes))

	for _, class := range classes {
		pos, err := randomFreePosition(settings.Length, reserved)
		if err != nil {
			return "", fmt.Errorf("picking position: %w", err)
		}
		reserved[pos] = struct{}{}

		ch, err := utils.RandomChoice(class)
		if err != nil {
			return "", fmt.Errorf("picking character: %w", err)
		}
		password[pos] = ch
	}

	for i := range password {
		if _, taken := reserved[i]; taken {
			continue
		}
		ch, err := utils.RandomChoice(combined)
		if err != nil {
			return "", fmt.Errorf("picking character: %w", err)
		}
		password[i] = ch
	}

	return string(password), nil
}

// enabledClasses returns the alphabets selected by the settings, with
// ambiguous characters stripped when requested.
func enabledClasses(settings models.GeneratorSettings) []string {
	var classes []string

	add := func(class string) {
		if settings.ExcludeSimilar {
			class = stripChars(class, similarChars)
		}
		if class != "" {
			classes = append(classes, class)
		}
	}

	if settings.IncludeLowercase {
		add(lowercaseChars)
	}
	if settings.IncludeUppercase {
		add(uppercaseChars)
	}
	if settings.IncludeNumbers {
		add(digitChars)
	}
	if settings.IncludeSymbols {
		add(symbolChars)
	}

	return classes
}

// stripChars removes every occurrence of the characters in unwanted from s.
func stripChars(s, unwanted string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unwanted, r) {
			return -1
		}
		return r
	}, s)
}

// randomFreePosition picks a uniform random index in [0, length) that is
// not yet reserved.
func randomFreePosition(length int, reserved map[int]struct{}) (int, error) {
	for {
		pos, err := utils.RandomIndex(length)
		if err != nil {
			return 0, err
		}
		if _, taken := reserved[pos]; !taken {
			return pos, nil
		}
	}
}
