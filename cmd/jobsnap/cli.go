package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Jobs    jobsnap.JobService
	Resumes jobsnap.ResumeService

	// Scraper serves single scrapes and selection capture; Batch serves
	// multi-URL scrapes. Both are set only for commands that open pages.
	Scraper jobsnap.JobScraper
	Batch   *scrape.Scraper

	Analyzer  jobsnap.Analyzer
	Converter jobsnap.Converter

	// NewJobStore opens the export store for the given directory.
	NewJobStore func(dir string) jobsnap.JobStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB         string `name:"db" env:"JOBSNAP_DB" help:"Database path (default ~/.jobsnap/jobsnap.db)"`
	BrowserURL string `name:"browser-url" env:"JOBSNAP_BROWSER_URL" help:"DevTools URL of a running Chrome to attach to instead of launching one"`
	Verbose    bool   `short:"v" help:"Log operations to stderr"`

	Scrape  ScrapeCmd  `cmd:"" help:"Scrape one or more job postings"`
	Select  SelectCmd  `cmd:"" help:"Capture the text selected on a page as a job description"`
	Jobs    JobsCmd    `cmd:"" help:"List saved jobs, newest first"`
	Show    ShowCmd    `cmd:"" help:"Show a saved job and its analysis"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved job"`
	Resume  ResumeCmd  `cmd:"" help:"Manage resumes"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a saved job against the current resume"`
	Export  ExportCmd  `cmd:"" help:"Export saved jobs as Markdown files"`
	Serve   ServeCmd   `cmd:"" help:"Serve the scrape and storage API over HTTP"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Job posting URLs"`
	Save        bool     `short:"s" help:"Save successful scrapes"`
	Static      bool     `help:"Fetch pages over plain HTTP instead of Chrome"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit for multiple URLs"`
	JSON        bool     `help:"Print outcomes as JSON"`
}

// SelectCmd is the "select" subcommand.
type SelectCmd struct {
	URL string `arg:"" help:"URL of the page holding the selection"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct {
	Status string `help:"Only jobs with this status (New, High Match, Review)"`
	Site   string `help:"Only jobs from this site"`
	Limit  int    `short:"n" help:"Maximum number of jobs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Job ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Job ID"`
	Force bool   `help:"Confirm deletion"`
}

// ResumeCmd groups the resume subcommands.
type ResumeCmd struct {
	Add  ResumeAddCmd  `cmd:"" help:"Upload a resume and make it current"`
	List ResumeListCmd `cmd:"" help:"List uploaded resumes"`
	Use  ResumeUseCmd  `cmd:"" help:"Select the resume used for analysis"`
}

// ResumeAddCmd is the "resume add" subcommand.
type ResumeAddCmd struct {
	File string `arg:"" type:"existingfile" help:"Resume file (PDF, DOCX, TXT)"`
}

// ResumeListCmd is the "resume list" subcommand.
type ResumeListCmd struct{}

// ResumeUseCmd is the "resume use" subcommand.
type ResumeUseCmd struct {
	ID string `arg:"" help:"Resume ID"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	ID         string `arg:"" help:"Job ID"`
	Backend    string `enum:"graphql,gemini" default:"graphql" help:"Analysis backend (graphql, gemini)"`
	BackendURL string `name:"backend-url" env:"JOBSNAP_BACKEND_URL" help:"GraphQL endpoint of the analysis backend"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory, replaced atomically"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"127.0.0.1:8080" help:"Listen address"`
}
