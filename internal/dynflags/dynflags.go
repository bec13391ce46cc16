// Package dynflags filters caller-supplied dynamic flags down to a safe
// allow-listed set before they reach the plan phase. The dynamic string is
// the one pipeline input that crosses a trust boundary, so rejection is the
// default and admission is the exception.
package dynflags

import (
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"

	"github.com/tfprep/tfprep/internal/errors"
	"github.com/tfprep/tfprep/internal/gha"
)

// allowedPrefixes is the fixed allow-list. Only resource targeting and
// variable overrides may enter from outside the repository.
var allowedPrefixes = []string{
	"--target=",
	"-target=",
	"-var=",
	"--var=",
}

// safeChars are the characters tolerated in an admitted token besides
// letters and digits.
const safeChars = "-_=. []"

// Sanitize tokenizes raw shell-style and returns the tokens that pass the
// allow-list and the character check. Rejected tokens are dropped with a
// warning and never abort the run; only an untokenizable string is an error.
func Sanitize(raw string, log gha.Logger) ([]string, error) {
	if log == nil {
		log = gha.Noop()
	}
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	tokens, err := shellquote.Split(raw)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrUsage,
			"Dynamic flags are not valid shell tokens",
			"Balance the quotes in the extra flags input")
	}

	admitted := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !allowed(token) {
			log.Warn("dropping disallowed flag: %s", token)
			continue
		}
		if !safeToken(token) {
			log.Warn("dropping flag with unsafe characters: %s", token)
			continue
		}
		admitted = append(admitted, token)
	}
	return admitted, nil
}

// allowed reports whether token starts with one of the admitted prefixes.
// Bare forms like "--target foo" never match; the value must be attached
// with '='.
func allowed(token string) bool {
	for _, prefix := range allowedPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

// safeToken checks the token against the accepted character class.
// Quotes are gone by this point (the tokenizer consumed them), so any
// quote or shell metacharacter left in the token is suspicious.
func safeToken(token string) bool {
	for _, c := range token {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || strings.ContainsRune(safeChars, c) {
			continue
		}
		return false
	}
	return true
}
