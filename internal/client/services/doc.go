// Package services contains the application services of the VibeLook
// client: wardrobe, AI suggestions, saved looks, profile, and auth. Each
// service owns the in-memory state for one backend collection, fetches and
// joins the backing data, and applies mutations through the collection
// store so optimistic updates follow one reviewed pattern.
//
// Backend and decode failures are converted to errors or placeholder
// fallbacks at this boundary; they never escape as panics, and a partial
// failure (photos missing, single entry malformed) degrades only the
// affected entries.
package services
