package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/report"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ManifestService renders the pickup pick list for a collection day and
// prints it to PDF through headless Chrome. Implements
// ManifestServiceInterface.
type ManifestService struct {
	orderRepo    repository.OrderRepositoryInterface
	loc          *time.Location
	client       *http.Client
	templatePath string
}

// NewManifestService creates a new ManifestService
func NewManifestService(orderRepo repository.OrderRepositoryInterface, loc *time.Location) *ManifestService {
	return &ManifestService{
		orderRepo:    orderRepo,
		loc:          loc,
		client:       &http.Client{Timeout: 10 * time.Second},
		templatePath: filepath.Join("templates", "manifest.html"),
	}
}

// Ensure ManifestService implements ManifestServiceInterface
var _ ManifestServiceInterface = (*ManifestService)(nil)

type manifestItem struct {
	ProductName string
	Quantity    int
	// Data URI for the product thumbnail; empty when the image could not be
	// fetched, the template then falls back to a placeholder box.
	ImageDataURI template.URL
}

type manifestOrder struct {
	OrderNumber string
	Customer    string
	Email       string
	Status      string
	PlacedAt    string
	Items       []manifestItem
}

type manifestLocation struct {
	Name   string
	Orders []manifestOrder
}

// RenderHTML renders the manifest page for one calendar date: every pickup
// order placed that day, grouped by pickup location, with product thumbnails
// embedded so the page prints without network access.
func (s *ManifestService) RenderHTML(ctx context.Context, date string) (string, error) {
	start, end, err := report.Window(date, date, s.loc)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	orders, err := s.orderRepo.FetchPickupsInWindow(ctx, start, end)
	if err != nil {
		return "", fmt.Errorf("failed to fetch pickup orders: %w", err)
	}

	locations := groupByLocation(orders, s.fetchThumbnail)

	tmpl, err := template.ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	templateData := struct {
		Date       string
		Locations  []manifestLocation
		OrderCount int
	}{
		Date:       start.Format("Monday, January 2, 2006"),
		Locations:  locations,
		OrderCount: len(orders),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	log.Printf("📄 Manifest rendered for %s: %d pickup orders across %d locations", date, len(orders), len(locations))
	return buf.String(), nil
}

// groupByLocation regroups the repository's location-sorted order list into
// one block per pickup location, resolving each item's thumbnail as it goes
func groupByLocation(orders []models.Order, thumb func(string) template.URL) []manifestLocation {
	var locations []manifestLocation
	for _, o := range orders {
		name := o.PickupLocation
		if name == "" {
			name = "Unassigned location"
		}

		mo := manifestOrder{
			OrderNumber: o.OrderNumber,
			Customer:    customerDisplayName(o),
			Email:       o.CustomerEmail,
			Status:      utils.MapStatusToLabel(o.Status),
			PlacedAt:    o.CreatedAt.Format("Jan 2, 3:04 PM"),
		}
		for _, item := range o.Items {
			mi := manifestItem{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
			}
			if item.ImageURL != "" && thumb != nil {
				mi.ImageDataURI = thumb(item.ImageURL)
			}
			mo.Items = append(mo.Items, mi)
		}

		if len(locations) == 0 || locations[len(locations)-1].Name != name {
			locations = append(locations, manifestLocation{Name: name})
		}
		last := &locations[len(locations)-1]
		last.Orders = append(last.Orders, mo)
	}
	return locations
}

func customerDisplayName(o models.Order) string {
	name := o.ShippingFirstName
	if o.ShippingLastName != "" {
		if name != "" {
			name += " "
		}
		name += o.ShippingLastName
	}
	return name
}

// fetchThumbnail downloads a product image, shrinks it to thumbnail size and
// returns it as a JPEG data URI. Results land in the on-disk cache so the
// same product does not get re-fetched on every manifest run. A failed image
// never fails the manifest.
func (s *ManifestService) fetchThumbnail(imageURL string) template.URL {
	cachePath := CachePathForURL(imageURL, "thumb")
	if CacheExists(cachePath) {
		data, err := ReadFromCache(cachePath)
		if err == nil {
			return jpegDataURI(data)
		}
		log.Printf("⚠️  Warning: failed to read cached thumbnail %s: %v", cachePath, err)
	}

	resp, err := s.client.Get(imageURL)
	if err != nil {
		log.Printf("⚠️  Warning: failed to fetch image %s: %v", imageURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️  Warning: image %s returned status %d", imageURL, resp.StatusCode)
		return ""
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("⚠️  Warning: failed to read image %s: %v", imageURL, err)
		return ""
	}

	optimized, err := OptimizeImage(raw, "thumb")
	if err != nil {
		log.Printf("⚠️  Warning: failed to optimize image %s: %v", imageURL, err)
		return ""
	}

	if err := SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Warning: failed to cache thumbnail: %v", err)
	}

	return jpegDataURI(optimized)
}

func jpegDataURI(data []byte) template.URL {
	return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// GeneratePDF renders the manifest and prints it to a US Letter PDF using
// chromedp. The HTML goes through a temp file and a file:// navigation, so
// Chrome never needs to reach back into the admin server (the admin routes
// all sit behind the JWT guard).
func (s *ManifestService) GeneratePDF(ctx context.Context, date string) ([]byte, error) {
	htmlContent, err := s.RenderHTML(ctx, date)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "manifest-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(htmlContent); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Detect Chrome/Chromium path and configure chromedp
	chromePath := detectChromePath()
	var allocCtx context.Context
	var allocCancel context.CancelFunc

	if chromePath != "" {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(chromePath),
			chromedp.NoSandbox, // Required for running in Docker/containers
		)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, opts...)
		defer allocCancel()
	} else {
		// Let chromedp auto-detect (may fail in containers)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, chromedp.NoSandbox)
		defer allocCancel()
	}

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(816, 1056), // 8.5in x 11in at 96 DPI
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.Sleep(500*time.Millisecond), // Images are inline, layout only
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✅ Manifest PDF generated for %s (%d bytes)", date, len(pdfBuf))
	return pdfBuf, nil
}
