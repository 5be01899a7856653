package service

import "context"

// ManifestServiceInterface defines the contract for pickup manifest generation
type ManifestServiceInterface interface {
	RenderHTML(ctx context.Context, date string) (string, error)
	GeneratePDF(ctx context.Context, date string) ([]byte, error)
}
