// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Datetime Normalizer
// =============================================================================

// errMalformedDatetime reports a matched span whose fields did not split as
// expected.
var errMalformedDatetime = errors.New("malformed datetime token")

// datetimePattern claims YYYY-MM-DD and YYYY/MM/DD stamps with an optional
// HH:MM[:SS[,mmm]] clock part. Running this pass first keeps later passes
// from reading a date fragment as a phone number or a bare number.
var datetimePattern = regexp.MustCompile(`\d{4}[/-]\d{1,2}[/-]\d{1,2}(?:\s\d{1,2}:\d{1,2}(?::\d{1,2}(?:,\d{1,3})?)?)?`)

type datetimeNormalizer struct {
	logger commons.Logger
}

// NewDatetimeNormalizer reads full timestamps aloud: the year digit by digit,
// every other field as a cardinal number with its unit word.
func NewDatetimeNormalizer(logger commons.Logger) Normalizer {
	return &datetimeNormalizer{logger: logger}
}

func (n *datetimeNormalizer) Normalize(text string) string {
	return datetimePattern.ReplaceAllStringFunc(text, func(match string) string {
		spoken, err := n.convert(match)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert datetime %q: %v", match, err)
			return match
		}
		return spoken
	})
}

func (n *datetimeNormalizer) convert(match string) (string, error) {
	datePart, timePart, hasTime := strings.Cut(match, " ")

	separator := "-"
	if !strings.Contains(datePart, separator) {
		separator = "/"
	}
	fields := strings.Split(datePart, separator)
	if len(fields) != 3 {
		return "", fmt.Errorf("%w: %q", errMalformedDatetime, match)
	}

	// the year reads digit by digit exactly as written, no zero stripping
	year, err := chinese.Convert(fields[0], chinese.ModeDigit)
	if err != nil {
		return "", err
	}
	month, err := convertDatetimeField(fields[1], chinese.ModeCardinal)
	if err != nil {
		return "", err
	}
	day, err := convertDatetimeField(fields[2], chinese.ModeCardinal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(year + "年")
	b.WriteString(month + "月")
	b.WriteString(day + "日")

	if !hasTime {
		return b.String(), nil
	}

	clock, millis, hasMillis := strings.Cut(timePart, ",")
	clockFields := strings.Split(clock, ":")
	labels := []string{"时", "分", "秒"}
	if len(clockFields) > len(labels) {
		return "", fmt.Errorf("%w: %q", errMalformedDatetime, match)
	}
	for i, field := range clockFields {
		spoken, err := convertDatetimeField(field, chinese.ModeCardinal)
		if err != nil {
			return "", err
		}
		b.WriteString(spoken + labels[i])
	}
	if hasMillis {
		spoken, err := convertDatetimeField(millis, chinese.ModeCardinal)
		if err != nil {
			return "", err
		}
		b.WriteString(spoken + "毫秒")
	}
	return b.String(), nil
}

// convertDatetimeField strips leading zeros before conversion; a field that
// was all zeros reads 零.
func convertDatetimeField(field string, mode chinese.Mode) (string, error) {
	trimmed := strings.TrimLeft(field, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return chinese.Convert(trimmed, mode)
}
