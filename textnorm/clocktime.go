// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Clock Time Normalizers
// =============================================================================

var (
	// timeRangePattern must run before clockPattern, otherwise the hyphen in
	// 8:00-23:00 would later be read as a minus or a dash.
	timeRangePattern = regexp.MustCompile(`\d{1,2}:\d{2}-\d{1,2}:\d{2}`)
	clockPattern     = regexp.MustCompile(`\d{1,2}:\d{2}`)
)

type timeRangeNormalizer struct {
	logger commons.Logger
}

// NewTimeRangeNormalizer reads H:MM-H:MM spans as two clock readings joined
// by 到.
func NewTimeRangeNormalizer(logger commons.Logger) Normalizer {
	return &timeRangeNormalizer{logger: logger}
}

func (n *timeRangeNormalizer) Normalize(text string) string {
	return timeRangePattern.ReplaceAllStringFunc(text, func(match string) string {
		start, end, _ := strings.Cut(match, "-")
		spokenStart, err := convertClock(start)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert time range %q: %v", match, err)
			return match
		}
		spokenEnd, err := convertClock(end)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert time range %q: %v", match, err)
			return match
		}
		return spokenStart + "到" + spokenEnd
	})
}

type clockTimeNormalizer struct {
	logger commons.Logger
}

// NewClockTimeNormalizer reads a standalone H:MM as 点, dropping the minute
// part entirely on the full hour.
func NewClockTimeNormalizer(logger commons.Logger) Normalizer {
	return &clockTimeNormalizer{logger: logger}
}

func (n *clockTimeNormalizer) Normalize(text string) string {
	return clockPattern.ReplaceAllStringFunc(text, func(match string) string {
		spoken, err := convertClock(match)
		if err != nil {
			n.logger.Warnf("normalizer: failed to convert clock time %q: %v", match, err)
			return match
		}
		return spoken
	})
}

func convertClock(token string) (string, error) {
	hoursRaw, minutesRaw, ok := strings.Cut(token, ":")
	if !ok {
		return "", fmt.Errorf("%w: %q", errMalformedDatetime, token)
	}
	hours, err := strconv.Atoi(hoursRaw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errMalformedDatetime, token)
	}
	minutes, err := strconv.Atoi(minutesRaw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errMalformedDatetime, token)
	}

	spokenHours, err := chinese.Convert(strconv.Itoa(hours), chinese.ModeCardinal)
	if err != nil {
		return "", err
	}
	if minutes == 0 {
		return spokenHours + "点", nil
	}
	spokenMinutes, err := chinese.Convert(strconv.Itoa(minutes), chinese.ModeCardinal)
	if err != nil {
		return "", err
	}
	return spokenHours + "点" + spokenMinutes, nil
}
