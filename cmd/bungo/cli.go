package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/bungo"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Works    bungo.WorkService
	Mentions bungo.MentionService
	Stats    bungo.StatsService
	Source   bungo.DocumentSource
	Geocoder bungo.Geocoder

	// NewRecognizer loads the recognizer for the entity path on first use.
	NewRecognizer func() (bungo.Recognizer, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool   `short:"v" help:"Log every fetch, recognizer and geocoder call"`
	UserAgent    string `name:"user-agent" env:"BUNGO_USER_AGENT" default:"bungo/1.0 (+https://github.com/fwojciec/bungo)" help:"User-Agent for Aozora Bunko and geocoding requests"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" hidden:"" help:"Gemini API key for --recognizer=gemini"`

	Add     AddCmd     `cmd:"" help:"Fetch a work from Aozora Bunko and register it"`
	Refresh RefreshCmd `cmd:"" help:"Re-fetch the text of a registered work"`
	Works   WorksCmd   `cmd:"" help:"List registered works"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a work and its place mentions"`
	Extract ExtractCmd `cmd:"" help:"Extract place mentions from registered works"`
	Geocode GeocodeCmd `cmd:"" help:"Add coordinates to place mentions"`
	Places  PlacesCmd  `cmd:"" help:"List place mentions"`
	Export  ExportCmd  `cmd:"" help:"Write geocoded mentions as GeoJSON or CSV"`
	Stats   StatsCmd   `cmd:"" help:"Show collection statistics"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Title  string `arg:"" help:"Work title"`
	Author string `arg:"" help:"Author name"`
	URL    string `arg:"" help:"Aozora Bunko XHTML or text URL"`
	Force  bool   `short:"f" help:"Replace an existing work with the same title and author"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	ID string `arg:"" help:"Work ID"`
}

// WorksCmd is the "works" subcommand.
type WorksCmd struct {
	Author string `short:"a" help:"Only works by this author"`
	Search string `short:"s" help:"Only works whose title or author contains this text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Work ID"`
	Force bool   `help:"Confirm deletion"`
}

// Recognizer names accepted by --recognizer.
const (
	recognizerKagome = "kagome"
	recognizerGemini = "gemini"
)

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Work       string `short:"w" help:"Only the work with this ID"`
	Entity     bool   `default:"true" negatable:"" help:"Run the entity extractor"`
	Pattern    bool   `default:"true" negatable:"" help:"Run the pattern extractor"`
	Replace    bool   `help:"Replace the stored mentions of each work with the new results"`
	Recognizer string `enum:"kagome,gemini" default:"kagome" help:"Entity recognizer (kagome, gemini)"`
	Model      string `default:"gemini-2.5-flash" help:"Gemini model for --recognizer=gemini"`
	ChunkBytes int    `name:"chunk-bytes" default:"40000" help:"Largest text chunk passed to the recognizer"`
}

// GeocodeCmd is the "geocode" subcommand.
type GeocodeCmd struct {
	Limit         int     `short:"n" default:"0" help:"Maximum mentions to geocode (0 for all)"`
	Concurrency   int     `short:"c" default:"4" help:"Concurrent lookups"`
	MinConfidence float64 `name:"min-confidence" default:"0" help:"Ignore matches below this confidence"`
}

// PlacesCmd is the "places" subcommand.
type PlacesCmd struct {
	Work          string  `short:"w" help:"Only mentions from the work with this ID"`
	Place         string  `short:"p" help:"Only mentions whose place name contains this text"`
	MinConfidence float64 `name:"min-confidence" default:"0" help:"Only mentions with at least this confidence"`
	Context       bool    `help:"Show the sentence around each mention"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output        string  `arg:"" help:"Output file"`
	Format        string  `enum:"geojson,csv" default:"geojson" help:"Output format (geojson, csv)"`
	Work          string  `short:"w" help:"Only mentions from the work with this ID"`
	MinConfidence float64 `name:"min-confidence" default:"0" help:"Only mentions with at least this confidence"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}
