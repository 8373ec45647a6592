// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

// Package chinese renders ASCII digit strings as spoken Mandarin number words.
package chinese

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNumeral reports input that is not a digit string with at most one
// leading sign and one decimal point.
var ErrInvalidNumeral = errors.New("invalid numeral")

// =============================================================================
// Render Modes
// =============================================================================

// Mode selects how a digit string is read aloud.
type Mode int

const (
	// ModeCardinal reads the number with positional magnitude words,
	// e.g. 123 becomes 一百二十三.
	ModeCardinal Mode = iota
	// ModeDigit reads every digit independently, e.g. 2025 becomes 二零二五.
	// Used for years, phone numbers and ID-like sequences.
	ModeDigit
)

func (m Mode) String() string {
	switch m {
	case ModeCardinal:
		return "cardinal"
	case ModeDigit:
		return "digit"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a configuration string to a Mode. Both the descriptive names
// ("cardinal", "digit") and the short legacy names ("low", "direct") are
// accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "cardinal", "low":
		return ModeCardinal, nil
	case "digit", "direct":
		return ModeDigit, nil
	}
	return ModeCardinal, fmt.Errorf("unknown render mode %q", s)
}

// =============================================================================
// Spoken Words
// =============================================================================

const (
	wordZero     = "零"
	wordPoint    = "点"
	wordPositive = "正"
	wordNegative = "负"
)

var digitWords = [...]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}

// positionUnits is indexed by a digit's position from the right. The table
// bounds cardinal reading to 13 integer digits (up to the 万亿 position).
var positionUnits = [...]string{"", "十", "百", "千", "万", "十", "百", "千", "亿", "十", "百", "千", "万"}

// =============================================================================
// Conversion
// =============================================================================

// Convert renders number as spoken Mandarin. A leading "+" becomes 正 and a
// leading "-" becomes 负; the magnitude may contain one decimal point. The
// fractional part is always read digit by digit after 点, in either mode.
func Convert(number string, mode Mode) (string, error) {
	sign, magnitude := splitSign(number)
	integer, fraction, hasFraction, err := splitMagnitude(magnitude)
	if err != nil {
		return "", err
	}

	var spoken string
	switch mode {
	case ModeDigit:
		spoken = digitReading(integer, fraction, hasFraction)
	case ModeCardinal:
		spoken, err = cardinalReading(integer, fraction, hasFraction)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown render mode %d", int(mode))
	}
	return sign + spoken, nil
}

func splitSign(s string) (string, string) {
	switch {
	case strings.HasPrefix(s, "+"):
		return wordPositive, s[1:]
	case strings.HasPrefix(s, "-"):
		return wordNegative, s[1:]
	}
	return "", s
}

// splitMagnitude validates the digit shape and separates the fraction.
func splitMagnitude(s string) (string, string, bool, error) {
	integer, fraction, hasFraction := strings.Cut(s, ".")
	if integer == "" || !isDigits(integer) {
		return "", "", false, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
	}
	if hasFraction && (fraction == "" || !isDigits(fraction)) {
		return "", "", false, fmt.Errorf("%w: %q", ErrInvalidNumeral, s)
	}
	return integer, fraction, hasFraction, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// digitReading spells out every digit. A whole number consisting only of
// zeros collapses to a single 零; otherwise leading zeros are spoken.
func digitReading(integer, fraction string, hasFraction bool) string {
	if !hasFraction && strings.Count(integer, "0") == len(integer) {
		return wordZero
	}
	var b strings.Builder
	for i := 0; i < len(integer); i++ {
		b.WriteString(digitWords[integer[i]-'0'])
	}
	if hasFraction {
		b.WriteString(wordPoint)
		for i := 0; i < len(fraction); i++ {
			b.WriteString(digitWords[fraction[i]-'0'])
		}
	}
	return b.String()
}

func cardinalReading(integer, fraction string, hasFraction bool) (string, error) {
	out, err := cardinalInteger(integer)
	if err != nil {
		return "", err
	}
	if hasFraction {
		out += wordPoint
		for i := 0; i < len(fraction); i++ {
			out += digitWords[fraction[i]-'0']
		}
	}
	return out, nil
}

// cardinalInteger renders the integer part with magnitude words. Interior
// zero runs collapse to a single 零, section boundaries keep their 万/亿
// words, and a leading 一十 is shortened to 十 (14 reads 十四, not 一十四).
func cardinalInteger(digits string) (string, error) {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return wordZero, nil
	}
	if len(trimmed) > len(positionUnits) {
		return "", fmt.Errorf("%w: %q exceeds %d integer digits", ErrInvalidNumeral, digits, len(positionUnits))
	}

	out := ""
	n := len(trimmed)
	for i := 0; i < n; i++ {
		d := int(trimmed[i] - '0')
		position := n - i - 1
		if d != 0 {
			out += digitWords[d] + positionUnits[position]
			continue
		}
		if position%4 == 0 {
			out += wordZero + positionUnits[position]
		}
		if i > 0 && !strings.HasSuffix(out, wordZero) {
			out += wordZero
		}
	}

	out = strings.ReplaceAll(out, "零零", "零")
	out = strings.ReplaceAll(out, "零万", "万")
	out = strings.ReplaceAll(out, "零亿", "亿")
	out = strings.ReplaceAll(out, "亿万", "亿")
	out = strings.Trim(out, wordZero)
	if strings.HasPrefix(out, "一十") {
		out = strings.TrimPrefix(out, "一")
	}
	if out == "" {
		out = wordZero
	}
	return out, nil
}
