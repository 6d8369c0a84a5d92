// Package fanza extracts structured game metadata and search results from
// the FANZA (DMM) game catalog for use by a media-library metadata provider.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package fanza
