// Copyright (c) 2026 Gallerim. All rights reserved.
// Author: lim.soyoung.dev@gmail.com

/*
Package i18n defines the closed set of languages the catalogue is maintained in.

Every artwork, genre, and series carries one translation row per supported
language once complete. The set is fixed at compile time — adding a language is
a schema migration plus a backfill, not a runtime concern.

The package also negotiates a display language for the public gallery from the
Accept-Language header using x/text's matcher.
*/
package i18n

import "golang.org/x/text/language"

// Lang is a supported content language code.
type Lang string

const (
	// Korean is the primary authoring language of the catalogue.
	Ko Lang = "ko"
	En Lang = "en"
	Ja Lang = "ja"
)

// DefaultLang is used wherever no explicit language preference exists
// (error-message identifiers, gallery fallback).
const DefaultLang = Ko

// supported is the canonical ordering of the language set. Iteration order
// matters: translation rows and validation field paths are emitted in this
// order so responses are deterministic.
var supported = []Lang{Ko, En, Ja}

// Supported returns the supported language set in canonical order.
// The returned slice is a copy; callers may not mutate the canonical set.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code is one of the supported languages.
func IsSupported(code Lang) bool {
	for _, lang := range supported {
		if lang == code {
			return true
		}
	}
	return false
}

// matcher resolves arbitrary BCP 47 tags against the supported set.
// Order mirrors [supported] so Korean wins ties.
var matcher = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
	language.Japanese,
})

// Negotiate picks the best supported language for an Accept-Language header
// value. An empty or unparsable header yields [DefaultLang].
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return DefaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLang
	}

	return supported[index]
}
