// Package miner discovers and extracts business contact information for a
// target company domain. It uses web search results as the discovery
// mechanism, scores and filters the discovered URLs, extracts emails, phone
// numbers and explicit role labels from the fetched pages, and merges the
// fragments into a deduplicated, confidence-scored contact list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, zenrows/, sqlite/).
package miner
