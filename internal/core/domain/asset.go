package domain

import "time"

// Asset is a 3D model hosted elsewhere; Icon is its preview image.
type Asset struct {
	ID         string
	Title      string
	Icon       string
	AssetURL   string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
