package domain

import "time"

// Announcement is a company-wide publication.
type Announcement struct {
	ID          string
	Title       string
	Body        string
	ImageURL    string
	AuthorID    string
	AuthorName  string
	PublishedAt time.Time
}

// AnnouncementInput is the payload for creating or updating an announcement.
type AnnouncementInput struct {
	Title    string
	Body     string
	ImageURL string
}
