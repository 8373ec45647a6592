// Copyright (c) 2024-2026 Vocalabs
// Author: Wei Shan <wei@vocalabs.dev>
//
// Licensed under GPL-2.0 with Vocalabs Additional Terms.
// See LICENSE.md or contact sales@vocalabs.dev for commercial usage.

package textnorm

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/vocalabs/textprep/pkg/chinese"
)

// =============================================================================
// Mock Logger Implementation
// =============================================================================

type mockLogger struct {
	warnMessages []string
}

func newMockLogger() *mockLogger {
	return &mockLogger{
		warnMessages: make([]string, 0),
	}
}

func (m *mockLogger) Level() zapcore.Level                        { return zapcore.DebugLevel }
func (m *mockLogger) Debug(args ...interface{})                   {}
func (m *mockLogger) Debugf(template string, args ...interface{}) {}
func (m *mockLogger) Info(args ...interface{})                    {}
func (m *mockLogger) Infof(template string, args ...interface{})  {}
func (m *mockLogger) Warn(args ...interface{})                    {}
func (m *mockLogger) Warnf(template string, args ...interface{}) {
	m.warnMessages = append(m.warnMessages, fmt.Sprintf(template, args...))
}
func (m *mockLogger) Error(args ...interface{})                    {}
func (m *mockLogger) Errorf(template string, args ...interface{})  {}
func (m *mockLogger) DPanic(args ...interface{})                   {}
func (m *mockLogger) DPanicf(template string, args ...interface{}) {}
func (m *mockLogger) Panic(args ...interface{})                    {}
func (m *mockLogger) Panicf(template string, args ...interface{})  {}
func (m *mockLogger) Fatal(args ...interface{})                    {}
func (m *mockLogger) Fatalf(template string, args ...interface{})  {}
func (m *mockLogger) Benchmark(functionName string, duration time.Duration) {
}
func (m *mockLogger) Tracef(ctx context.Context, format string, args ...interface{}) {
}
func (m *mockLogger) Sync() error { return nil }

// =============================================================================
// Datetime Normalizer Tests
// =============================================================================

func TestDatetimeNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewDatetimeNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full timestamp with milliseconds",
			input:    "2025-04-14 22:58:46,965",
			expected: "二零二五年四月十四日二十二时五十八分四十六秒九百六十五毫秒",
		},
		{
			name:     "date only",
			input:    "2024-01-05",
			expected: "二零二四年一月五日",
		},
		{
			name:     "slash separated date",
			input:    "2025/12/31",
			expected: "二零二五年十二月三十一日",
		},
		{
			name:     "date with hours and minutes",
			input:    "2025-04-14 09:05",
			expected: "二零二五年四月十四日九时五分",
		},
		{
			name:     "date with full clock",
			input:    "2025-04-14 22:58:46",
			expected: "二零二五年四月十四日二十二时五十八分四十六秒",
		},
		{
			name:     "timestamp inside a sentence",
			input:    "会议定于2025-04-14 22:58开始",
			expected: "会议定于二零二五年四月十四日二十二时五十八分开始",
		},
		{
			name:     "zero month reads as zero",
			input:    "2025-00-01",
			expected: "二零二五年零月一日",
		},
		{
			name:     "no datetime in text",
			input:    "今天天气很好",
			expected: "今天天气很好",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Time Range Normalizer Tests
// =============================================================================

func TestTimeRangeNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewTimeRangeNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full hour range",
			input:    "8:00-23:00",
			expected: "八点到二十三点",
		},
		{
			name:     "range with minutes",
			input:    "10:30-11:45",
			expected: "十点三十到十一点四十五",
		},
		{
			name:     "range inside a sentence",
			input:    "营业时间9:00-18:00欢迎光临",
			expected: "营业时间九点到十八点欢迎光临",
		},
		{
			name:     "single time left alone",
			input:    "现在是8:00",
			expected: "现在是8:00",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Clock Time Normalizer Tests
// =============================================================================

func TestClockTimeNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewClockTimeNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full hour drops minutes",
			input:    "8:00",
			expected: "八点",
		},
		{
			name:     "minutes read as a plain cardinal",
			input:    "8:05",
			expected: "八点五",
		},
		{
			name:     "late evening",
			input:    "23:59",
			expected: "二十三点五十九",
		},
		{
			name:     "noon",
			input:    "12:00",
			expected: "十二点",
		},
		{
			name:     "zero padded hour",
			input:    "09:30",
			expected: "九点三十",
		},
		{
			name:     "clock inside a sentence",
			input:    "明天8:30见",
			expected: "明天八点三十见",
		},
		{
			name:     "no clock in text",
			input:    "没有时间",
			expected: "没有时间",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Phone Normalizer Tests
// =============================================================================

func TestPhoneNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewPhoneNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "mobile with country code",
			input:    "+86-13987654321",
			expected: "八六一三九八七六五四三二一",
		},
		{
			name:     "bare mobile number",
			input:    "13987654321",
			expected: "一三九八七六五四三二一",
		},
		{
			name:     "landline keeps leading zero",
			input:    "010-12345678",
			expected: "零一零一二三四五六七八",
		},
		{
			name:     "service hotline",
			input:    "客服电话400-1234567",
			expected: "客服电话四零零一二三四五六七",
		},
		{
			name:     "international number",
			input:    "+1-8005551234",
			expected: "一八零零五五五一二三四",
		},
		{
			name:     "short digit run is not a phone number",
			input:    "12345",
			expected: "12345",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Math Normalizer Tests
// =============================================================================

func TestMathNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewMathNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "addition with trailing comparison",
			input:    "3+5=8",
			expected: "三加五=8", // =8 is left for the number and symbol passes
		},
		{
			name:     "multiplication",
			input:    "10*3",
			expected: "十乘三",
		},
		{
			name:     "subtraction",
			input:    "7-2",
			expected: "七减二",
		},
		{
			name:     "division of decimals",
			input:    "3.5/0.5",
			expected: "三点五除零点五",
		},
		{
			name:     "spaces around the operator",
			input:    "100 - 50",
			expected: "一百减五十",
		},
		{
			name:     "negative left operand",
			input:    "-2+3",
			expected: "负二加三",
		},
		{
			name:     "equality without left digits",
			input:    "x=5",
			expected: "x=5",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Number Normalizer Tests
// =============================================================================

func numberNormalizerAt(logger *mockLogger, year int) Normalizer {
	n := NewNumberNormalizer(logger, nil, "").(*numberNormalizer)
	n.clock = func() time.Time {
		return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return n
}

func TestNumberNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := numberNormalizerAt(logger, 2025)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "percent reads as a fraction",
			input:    "100%",
			expected: "百分之一百",
		},
		{
			name:     "bare and suffixed numbers in one sentence",
			input:    "1句话测试100%通过",
			expected: "一句话测试百分之一百通过",
		},
		{
			name:     "decimal percent",
			input:    "99.5%",
			expected: "百分之九十九点五",
		},
		{
			name:     "counter suffix",
			input:    "3个",
			expected: "三个",
		},
		{
			name:     "space between number and unit",
			input:    "100 个",
			expected: "一百个",
		},
		{
			name:     "currency in a sentence",
			input:    "价格是50元",
			expected: "价格是五十元",
		},
		{
			name:     "four digit year with suffix",
			input:    "2025年",
			expected: "二零二五年",
		},
		{
			name:     "two digit year reads cardinal",
			input:    "95年",
			expected: "九十五年", // length constraint of 年 not met
		},
		{
			name:     "decade term",
			input:    "80后",
			expected: "八零后",
		},
		{
			name:     "decade suffix with wrong length",
			input:    "123后",
			expected: "一百二十三后",
		},
		{
			name:     "uppercase unit keeps its spelling",
			input:    "3KG",
			expected: "三KG",
		},
		{
			name:     "lowercase unit keeps its spelling",
			input:    "3kg",
			expected: "三kg",
		},
		{
			name:     "temperature",
			input:    "25℃",
			expected: "二十五℃",
		},
		{
			name:     "bare current year",
			input:    "2025",
			expected: "二零二五",
		},
		{
			name:     "bare previous year",
			input:    "2024",
			expected: "二零二四",
		},
		{
			name:     "bare next year",
			input:    "2026",
			expected: "二零二六",
		},
		{
			name:     "four digits outside the year window",
			input:    "2023",
			expected: "二千零二十三",
		},
		{
			name:     "leading zero reads digit by digit",
			input:    "007",
			expected: "零零七",
		},
		{
			name:     "zero padded decimal reads cardinal",
			input:    "0123.5",
			expected: "一百二十三点五",
		},
		{
			name:     "plain decimal",
			input:    "3.14",
			expected: "三点一四",
		},
		{
			name:     "large quantity",
			input:    "1000000次",
			expected: "一百万次",
		},
		{
			name:     "signed token deferred to the sign pass",
			input:    "+5",
			expected: "+5",
		},
		{
			name:     "digits after a currency symbol still convert",
			input:    "$100",
			expected: "$一百", // the symbol itself survives this pass
		},
		{
			name:     "digits glued to an unconfigured unit character",
			input:    "3千",
			expected: "3千",
		},
		{
			name:     "decimal year within length constraint",
			input:    "20.5年",
			expected: "二零点五年", // the decimal point counts toward the length
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}

	t.Run("year window tracks the clock", func(t *testing.T) {
		future := numberNormalizerAt(logger, 2031)
		assert.Equal(t, "二零三零", future.Normalize("2030"))
		assert.Equal(t, "二零三二", future.Normalize("2032"))
		assert.Equal(t, "二千零二十九", future.Normalize("2029"))
	})

	t.Run("custom suffix rules replace the stock table", func(t *testing.T) {
		rules := map[string]SuffixRule{
			"楼": {Mode: chinese.ModeCardinal},
		}
		custom := NewNumberNormalizer(logger, rules, "")
		assert.Equal(t, "十八楼", custom.Normalize("18楼"))
		// 元 is not in the custom table, the bare number still converts
		assert.Equal(t, "十八元", custom.Normalize("18元"))
	})
}

// =============================================================================
// Sign Normalizer Tests
// =============================================================================

func TestSignNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewSignNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "positive number",
			input:    "+5",
			expected: "正五",
		},
		{
			name:     "negative decimal",
			input:    "-3.14",
			expected: "负三点一四",
		},
		{
			name:     "signed reading inside a sentence",
			input:    "体温-0.3度",
			expected: "体温负零点三度",
		},
		{
			name:     "two signed tokens",
			input:    "a+1 and -2",
			expected: "a正一 and 负二",
		},
		{
			name:     "subtraction is not a sign",
			input:    "1-2",
			expected: "1-2",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Symbol Normalizer Tests
// =============================================================================

func TestSymbolNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewSymbolNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "equals sign",
			input:    "三加五=八",
			expected: "三加五等于八",
		},
		{
			name:     "slash between letters",
			input:    "A/B",
			expected: "A斜杠B",
		},
		{
			name:     "doubled plus",
			input:    "C++",
			expected: "C加加",
		},
		{
			name:     "hyphen reads as a dash",
			input:    "a-b",
			expected: "a杠b",
		},
		{
			name:     "digits are not this pass's business",
			input:    "3*4",
			expected: "3星4",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// English Number Normalizer Tests
// =============================================================================

func TestEnglishNumberNormalizer(t *testing.T) {
	logger := newMockLogger()
	normalizer := NewEnglishNumberNormalizer(logger)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single digit",
			input:    "I have 5 apples",
			expected: "I have five apples",
		},
		{
			name:     "teens",
			input:    "There are 15 students",
			expected: "There are fifteen students",
		},
		{
			name:     "compound number",
			input:    "We need 42 items",
			expected: "We need forty-two items",
		},
		{
			name:     "zero spells out",
			input:    "Score is 0",
			expected: "Score is zero",
		},
		{
			name:     "three digits unchanged",
			input:    "Population is 100",
			expected: "Population is 100",
		},
		{
			name:     "digits glued to words unchanged",
			input:    "item1 2items 3",
			expected: "item1 2items three",
		},
		{
			name:     "chapter number",
			input:    "Chapter 11",
			expected: "Chapter eleven",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Integration Tests - Combined Passes
// =============================================================================

func TestNormalizerChain(t *testing.T) {
	logger := newMockLogger()

	normalizers := BuildNormalizerPipeline(logger, mandarinPipelineNames, DefaultConfig())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "arithmetic resolved across three passes",
			input:    "3+5=8",
			expected: "三加五等于八",
		},
		{
			name:     "timestamp claimed before phone and number",
			input:    "2025-04-14 22:58:46,965",
			expected: "二零二五年四月十四日二十二时五十八分四十六秒九百六十五毫秒",
		},
		{
			name:     "time range claimed before clock and sign",
			input:    "8:00-23:00",
			expected: "八点到二十三点",
		},
		{
			name:     "country code claimed before sign",
			input:    "+86-13987654321",
			expected: "八六一三九八七六五四三二一",
		},
		{
			name:     "bare number and percent",
			input:    "1句话测试100%通过",
			expected: "一句话测试百分之一百通过",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.input
			for _, n := range normalizers {
				result = n.Normalize(result)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

// =============================================================================
// Nil and Empty Input Tests
// =============================================================================

func TestNilSafeNormalizers(t *testing.T) {
	logger := newMockLogger()

	normalizers := map[string]Normalizer{
		"datetime":      NewDatetimeNormalizer(logger),
		"time-range":    NewTimeRangeNormalizer(logger),
		"clock":         NewClockTimeNormalizer(logger),
		"phone":         NewPhoneNormalizer(logger),
		"math":          NewMathNormalizer(logger),
		"number":        NewNumberNormalizer(logger, nil, ""),
		"sign":          NewSignNormalizer(logger),
		"symbol":        NewSymbolNormalizer(logger),
		"number-en":     NewEnglishNumberNormalizer(logger),
		"quotation":     NewQuotationNormalizer(logger, nil, 0),
		"pronunciation": NewPronunciationNormalizer(logger, nil),
	}

	for name, normalizer := range normalizers {
		t.Run(name+"_empty_string", func(t *testing.T) {
			result := normalizer.Normalize("")
			assert.Equal(t, "", result)
		})

		t.Run(name+"_no_digits", func(t *testing.T) {
			result := normalizer.Normalize("纯文本输入")
			assert.Equal(t, "纯文本输入", result)
		})
	}
}
