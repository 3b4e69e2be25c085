package catalog

import "time"

// Item is one searchable content unit mirrored from the upstream channel.
//
// ContentID is assigned by the channel, never generated locally. The counter
// fields are owned by the interaction ledger; ingestion upserts must not
// touch them.
type Item struct {
	ContentID     int64   `json:"content_id"`
	Title         string  `json:"title"`
	NormalizedKey string  `json:"-"`
	Language      *string `json:"language,omitempty"`
	Year          *int    `json:"year,omitempty"`
	PosterRef     *string `json:"poster_ref,omitempty"`
	ViewCount     int     `json:"view_count"`
	LikeCount     int     `json:"like_count"`
	DislikeCount  int     `json:"dislike_count"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// KeyRef pairs a normalized key with its representative item.
//
// When several items share a key, the representative is the one with the
// lowest ContentID, keeping fuzzy resolution deterministic.
type KeyRef struct {
	NormalizedKey string
	ContentID     int64
}

// IngestRequest is a content record arriving from the channel mirror.
type IngestRequest struct {
	ContentID int64   `json:"content_id"`
	RawText   string  `json:"raw_text"`
	PosterRef *string `json:"poster_ref,omitempty"`
}
