// Package jobsnap scrapes job postings from career sites, keeps them in a
// local store, and sends them together with a resume to an analysis backend
// that scores how well the candidate fits.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/, gemini/).
package jobsnap
