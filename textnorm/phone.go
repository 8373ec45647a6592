// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"regexp"
	"strings"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Phone Number Normalizer
// =============================================================================

// phonePattern covers mainland mobile numbers with an optional +86 country
// prefix, domestic landlines with an area code, and generic international
// numbers. Alternatives are ordered longest prefix first so +86-139... is
// never split into a sign and a bare number.
var phonePattern = regexp.MustCompile(`(?:\+?86-?1[3-9]\d{9}|1[3-9]\d{9}|\d{3,4}-\d{7,8}|\+\d{1,4}-\d{6,14})`)

var phoneStripper = strings.NewReplacer("+", "", "-", "")

type phoneNormalizer struct {
	logger commons.Logger
}

// NewPhoneNormalizer reads phone numbers digit by digit with the plus sign
// and hyphens dropped. Leading zeros in area codes are kept.
func NewPhoneNormalizer(logger commons.Logger) Normalizer {
	return &phoneNormalizer{logger: logger}
}

func (n *phoneNormalizer) Normalize(text string) string {
	return phonePattern.ReplaceAllStringFunc(text, func(match string) string {
		spoken, err := chinese.Convert(phoneStripper.Replace(match), chinese.ModeDigit)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert phone number %q: %v", match, err)
			return match
		}
		return spoken
	})
}
