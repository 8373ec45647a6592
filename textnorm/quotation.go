// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/vocalabs/textprep/pkg/commons"
)

// =============================================================================
// Quotation Normalizer
// =============================================================================

// quotingPunctuation disqualifies a keyword match whose neighbour is any
// bracket or quote, including the curly quotes this pass inserts itself.
const quotingPunctuation = `[\[\]（）【】《》“”‘’]`

var (
	bracketReplacer    = strings.NewReplacer("（", "“", "）", "”", "【", "“", "】", "”")
	cornerMarkReplacer = strings.NewReplacer("²", "平方", "³", "立方")
)

type quotationNormalizer struct {
	logger commons.Logger
	// keywords sorted longest first so 北京大学 wins over 北京
	keywords  []string
	patterns  []*regexp2.Regexp
	minLength int
}

// NewQuotationNormalizer wraps dictionary keywords in curly quotes so the
// synthesis model sets them off prosodically. Keywords shorter than
// minLength runes are ignored, and spans already inside quotes are never
// touched.
func NewQuotationNormalizer(logger commons.Logger, keywords []string, minLength int) Normalizer {
	if minLength <= 0 {
		minLength = 2
	}

	sorted := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if utf8.RuneCountInString(keyword) >= minLength {
			sorted = append(sorted, keyword)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i]) > utf8.RuneCountInString(sorted[j])
	})

	patterns := make([]*regexp2.Regexp, len(sorted))
	for i, keyword := range sorted {
		patterns[i] = regexp2.MustCompile(
			`(?<!`+quotingPunctuation+`)`+regexp.QuoteMeta(keyword)+`(?!`+quotingPunctuation+`)`,
			regexp2.IgnoreCase,
		)
	}

	return &quotationNormalizer{
		logger:    logger,
		keywords:  sorted,
		patterns:  patterns,
		minLength: minLength,
	}
}

func (n *quotationNormalizer) Normalize(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = removeLooseBlanks(text)
	text = bracketReplacer.Replace(text)
	text = cornerMarkReplacer.Replace(text)

	for i, keyword := range n.keywords {
		text = n.quoteKeyword(text, keyword, n.patterns[i])
	}
	return text
}

// quoteKeyword rewrites keyword occurrences outside existing quotes to the
// canonical dictionary spelling wrapped in curly quotes. The text is re-split
// per keyword because each pass introduces new quoted spans.
func (n *quotationNormalizer) quoteKeyword(text, keyword string, pattern *regexp2.Regexp) string {
	var b strings.Builder
	for _, segment := range splitQuotedSpans(text) {
		if segment.quoted {
			b.WriteString(segment.text)
			continue
		}
		replaced, err := pattern.ReplaceFunc(segment.text, func(regexp2.Match) string {
			return "“" + keyword + "”"
		}, -1, -1)
		if err != nil {
			n.logger.Warnf("normalizer: quotation replacement failed for %q: %v", keyword, err)
			b.WriteString(segment.text)
			continue
		}
		b.WriteString(replaced)
	}
	return b.String()
}

type quotedSegment struct {
	text   string
	quoted bool
}

// splitQuotedSpans cuts text into alternating plain and “…” segments. Each
// quoted span pairs an opening quote with the nearest closing one; a lone
// opening quote stays in the plain remainder.
func splitQuotedSpans(text string) []quotedSegment {
	var segments []quotedSegment
	rest := text
	for {
		open := strings.Index(rest, "“")
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open:], "”")
		if closing < 0 {
			break
		}
		end := open + closing + len("”")
		if open > 0 {
			segments = append(segments, quotedSegment{text: rest[:open]})
		}
		segments = append(segments, quotedSegment{text: rest[open:end], quoted: true})
		rest = rest[end:]
	}
	if rest != "" {
		segments = append(segments, quotedSegment{text: rest})
	}
	return segments
}

// removeLooseBlanks drops every space whose neighbours are not both
// non-space ASCII, closing up CJK text while keeping spacing like "v2 beta"
// intact.
func removeLooseBlanks(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes))
	for i, r := range runes {
		if r != ' ' {
			out = append(out, r)
			continue
		}
		if i > 0 && i < len(runes)-1 && keepsBlank(runes[i-1]) && keepsBlank(runes[i+1]) {
			out = append(out, r)
		}
	}
	return string(out)
}

func keepsBlank(r rune) bool {
	return r != ' ' && r < utf8.RuneSelf
}
