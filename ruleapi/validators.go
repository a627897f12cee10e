// Copyright 2026 The oaslint Authors
// SPDX-License-Identifier: MIT

package ruleapi

import "regexp"

// Validator checks one string value and returns a human-readable problem
// description, or "" if the value is acceptable.
type Validator func(value string, present bool) string

// Required reports msg when the field is absent.
func Required(msg string) Validator {
	return func(_ string, present bool) string {
		if !present {
			return msg
		}
		return ""
	}
}

// ForbidPatterns reports msg when value matches any of patterns. Absent
// values pass; combine with Required to forbid absence too.
func ForbidPatterns(patterns []*regexp.Regexp, msg string) Validator {
	return func(value string, present bool) string {
		if !present {
			return ""
		}
		for _, p := range patterns {
			if p.MatchString(value) {
				return msg
			}
		}
		return ""
	}
}

// MustMatch reports msg unless value matches pattern. Absent values pass;
// combine with Required to demand presence too.
func MustMatch(pattern *regexp.Regexp, msg string) Validator {
	return func(value string, present bool) string {
		if !present {
			return ""
		}
		if !pattern.MatchString(value) {
			return msg
		}
		return ""
	}
}

// All runs validators in order and returns the first non-empty message.
func All(validators ...Validator) Validator {
	return func(value string, present bool) string {
		for _, v := range validators {
			if msg := v(value, present); msg != "" {
				return msg
			}
		}
		return ""
	}
}
