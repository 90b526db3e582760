package model

// Package model defines domain data structures used across the app: radio
// stations, favorites, region groups, and the player status enum. Structures
// are designed for direct binding in the UI and JSON exchange with the
// directory service.
