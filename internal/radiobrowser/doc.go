package radiobrowser

// Package radiobrowser aggregates live station records from the community
// Radio-Browser directory: per-country queries ordered by click count, merged,
// filtered for playability, and truncated for the backend service.
