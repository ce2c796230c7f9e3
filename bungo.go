// Package bungo collects place-name mentions from Japanese literary works.
// It fetches work texts, extracts place names with their surrounding
// sentences, stores them, and enriches them with coordinates.
//
// This package contains domain types, interfaces and the text algorithms
// shared by every extractor, following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, kagome/, gemini/).
package bungo
