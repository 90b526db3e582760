package server

// Package server exposes the WaveDial REST API: aggregated station listings,
// search, country groups, and per-user favorites. Station data comes from the
// radiobrowser aggregator, favorites from the store.
