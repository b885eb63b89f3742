package model

import "time"

// Movie represents a film in the catalog.  Titles are unique within the
// catalog and showtimes reference movies by title.  Movies are created
// and edited through the admin endpoints and bulk-inserted by the seeder;
// they are never deleted in the normal flow except by reseeding.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – unique movie title.
//  Description – synopsis shown on browse pages.
//  Duration    – runtime in minutes (positive).
//  Genre       – free-form genre string (e.g. "ドラマ/ミステリー").
//  ReleaseYear – year of theatrical release.
//  Director    – director name.
//  ImageURL    – poster image URL or path.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Movie struct {
	ID          uint64    `json:"id"`           // movies.id
	Title       string    `json:"title"`        // movies.title
	Description string    `json:"description"`  // movies.description
	Duration    int       `json:"duration"`     // movies.duration (minutes)
	Genre       string    `json:"genre"`        // movies.genre
	ReleaseYear int       `json:"release_year"` // movies.release_year
	Director    string    `json:"director"`     // movies.director
	ImageURL    string    `json:"image_url"`    // movies.image_url
	CreatedAt   time.Time `json:"-"`            // movies.created_at
	UpdatedAt   time.Time `json:"-"`            // movies.updated_at
}
