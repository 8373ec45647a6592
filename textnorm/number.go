// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Number Normalizer
// =============================================================================

var fractionWords = map[string]string{
	"%": "百分之",
	"‰": "千分之",
	"‱": "万分之",
}

type numberNormalizer struct {
	logger commons.Logger
	rules  map[string]SuffixRule
	// configured suffixes, longest first
	suffixes []string
	exclude  string
	pattern  *regexp2.Regexp
	clock    func() time.Time
}

// NewNumberNormalizer converts bare numbers and numbers with a configured
// unit suffix. Tokens carrying an excluded symbol are left for the sign and
// symbol passes. Nil rules and an empty symbol set fall back to the stock
// tables.
func NewNumberNormalizer(logger commons.Logger, rules map[string]SuffixRule, excludeSymbols string) Normalizer {
	if rules == nil {
		rules = DefaultSuffixRules()
	}
	if excludeSymbols == "" {
		excludeSymbols = DefaultExcludeSymbols
	}
	n := &numberNormalizer{
		logger:   logger,
		rules:    rules,
		suffixes: sortedSuffixes(rules),
		exclude:  excludeSymbols,
		clock:    time.Now,
	}
	n.pattern = regexp2.MustCompile(n.buildPattern(), regexp2.None)
	return n
}

func (n *numberNormalizer) Normalize(text string) string {
	out, err := n.pattern.ReplaceFunc(text, func(m regexp2.Match) string {
		token := m.String()
		if strings.ContainsAny(token, n.exclude) {
			// signed tokens are the sign pass's business
			return token
		}
		spoken, err := n.convertNumber(token)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert number %q: %v", token, err)
			return token
		}
		return spoken
	}, -1, -1)
	if err != nil {
		n.logger.Errorf("normalizer: number replacement failed: %v", err)
		return text
	}
	return out
}

// buildPattern assembles two alternatives: a number followed by a configured
// suffix with optional spaces in between, or a bare number that is not glued
// to more digits, a unit character or an excluded symbol. Alphabetic suffixes
// match case-insensitively.
func (n *numberNormalizer) buildPattern() string {
	alternatives := make([]string, len(n.suffixes))
	for i, suffix := range n.suffixes {
		quoted := regexp.QuoteMeta(suffix)
		if isASCIILetters(suffix) {
			quoted = "(?i:" + quoted + ")"
		}
		alternatives[i] = quoted
	}
	return `[+-]?\d+(?:\.\d+)?(?:\s*(?:` + strings.Join(alternatives, "|") + `))` +
		`|(?<!\d)[+-]?\d+(?:\.\d+)?(?!` + n.guardClass() + `)`
}

// guardClass builds the character class for the bare-number lookahead from
// every rune appearing in a suffix or in the excluded symbol set.
func (n *numberNormalizer) guardClass() string {
	seen := map[rune]bool{}
	var runes []rune
	collect := func(s string) {
		for _, r := range s {
			if !seen[r] {
				seen[r] = true
				runes = append(runes, r)
			}
		}
	}
	for _, suffix := range n.suffixes {
		collect(suffix)
	}
	collect(n.exclude)
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	var b strings.Builder
	b.WriteString("[")
	for _, r := range runes {
		b.WriteString(escapeForClass(r))
	}
	b.WriteString(`\d]`)
	return b.String()
}

// convertNumber renders one matched token, resolving any trailing unit
// suffix. Percent family suffixes read as fractions, everything else keeps
// the suffix in its original spelling after the converted number.
func (n *numberNormalizer) convertNumber(token string) (string, error) {
	token = strings.ReplaceAll(token, " ", "")

	numberPart, suffix, rule, matched := n.resolveSuffix(token)
	if !matched {
		return n.convertBare(token)
	}

	if word, ok := fractionWords[suffix]; ok {
		sign, magnitude := splitSignPrefix(numberPart)
		spoken, err := chinese.Convert(magnitude, chinese.ModeCardinal)
		if err != nil {
			return "", err
		}
		return sign + word + spoken, nil
	}

	mode := rule.Mode
	if len(rule.Lengths) > 0 && !slices.Contains(rule.Lengths, magnitudeLength(numberPart)) {
		mode = chinese.ModeCardinal
	}
	spoken, err := chinese.Convert(numberPart, mode)
	if err != nil {
		return "", err
	}
	return spoken + suffix, nil
}

// resolveSuffix returns the number part, the matched tail in its original
// spelling and the rule it resolved to. The longest configured suffix wins,
// alphabetic suffixes compare case-insensitively.
func (n *numberNormalizer) resolveSuffix(token string) (string, string, SuffixRule, bool) {
	for _, suffix := range n.suffixes {
		if len(token) <= len(suffix) {
			continue
		}
		tail := token[len(token)-len(suffix):]
		if strings.EqualFold(tail, suffix) {
			return token[:len(token)-len(suffix)], tail, n.rules[suffix], true
		}
	}
	return token, "", SuffixRule{}, false
}

// convertBare applies the fallback ladder: a four digit number within one
// year of today reads digit by digit, zero-padded whole numbers read digit
// by digit, everything else reads as a cardinal. A decimal is never
// ID-like, so a leading zero there does not force digit reading.
func (n *numberNormalizer) convertBare(token string) (string, error) {
	magnitude := strings.TrimLeft(token, "+-")
	mode := chinese.ModeCardinal
	if len(magnitude) == 4 && n.withinYearWindow(magnitude) {
		mode = chinese.ModeDigit
	} else if strings.HasPrefix(magnitude, "0") && !strings.Contains(magnitude, ".") {
		mode = chinese.ModeDigit
	}
	return chinese.Convert(token, mode)
}

func (n *numberNormalizer) withinYearWindow(digits string) bool {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return false
	}
	year := n.clock().Year()
	return value >= year-1 && value <= year+1
}

func sortedSuffixes(rules map[string]SuffixRule) []string {
	suffixes := make([]string, 0, len(rules))
	for suffix := range rules {
		suffixes = append(suffixes, suffix)
	}
	sort.Slice(suffixes, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(suffixes[i]), utf8.RuneCountInString(suffixes[j])
		if li != lj {
			return li > lj
		}
		return suffixes[i] < suffixes[j]
	})
	return suffixes
}

// magnitudeLength measures the number part without its sign. The decimal
// point counts, so 20.5 satisfies a rule asking for four characters.
func magnitudeLength(numberPart string) int {
	return len(strings.TrimLeft(numberPart, "+-"))
}

func splitSignPrefix(s string) (string, string) {
	switch {
	case strings.HasPrefix(s, "+"):
		return "正", s[1:]
	case strings.HasPrefix(s, "-"):
		return "负", s[1:]
	}
	return "", s
}

func isASCIILetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}

// escapeForClass escapes the four characters that are special inside a
// character class.
func escapeForClass(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}
