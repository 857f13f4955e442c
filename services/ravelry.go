package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// Sentinel errors the handler layer maps to responses.
var (
	ErrCatalogNotConfigured = errors.New("ravelry API credentials not configured")
	ErrInvalidPatternURL    = errors.New("invalid ravelry pattern URL")
	ErrPatternNotFound      = errors.New("pattern not found on ravelry")
	ErrBadCredentials       = errors.New("invalid ravelry API credentials")
)

// Ravelry pattern URLs look like:
// https://www.ravelry.com/patterns/library/pattern-slug
var patternSlugRe = regexp.MustCompile(`/patterns/library/([^/?]+)`)

// RavelryClient looks pattern metadata up in the Ravelry catalog. Lookups
// are search-then-fetch: the slug from the public URL finds the pattern id,
// the id fetches the full record.
type RavelryClient struct {
	username string
	password string
	baseURL  string
	client   *http.Client
}

// NewRavelryClient builds a client from API credentials. Either credential
// being empty leaves the client unconfigured; lookups then fail with
// ErrCatalogNotConfigured instead of hitting the API.
func NewRavelryClient(username, password string) *RavelryClient {
	return &RavelryClient{
		username: username,
		password: password,
		baseURL:  "https://api.ravelry.com",
		client:   &http.Client{},
	}
}

// Configured reports whether API credentials are present.
func (c *RavelryClient) Configured() bool {
	return c.username != "" && c.password != ""
}

// PatternImport is what a lookup hands back: the fields a pattern row stores
// directly, plus the metadata blob that is stored opaquely.
type PatternImport struct {
	Name      string            `json:"name"`
	Designer  string            `json:"designer"`
	SourceURL string            `json:"source_url"`
	Metadata  datatypes.JSONMap `json:"metadata"`
}

type ravelrySearchResponse struct {
	Patterns []struct {
		ID int `json:"id"`
	} `json:"patterns"`
}

type ravelryPatternResponse struct {
	Pattern *ravelryPattern `json:"pattern"`
}

type ravelryPattern struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Permalink string `json:"permalink"`
	Designer  *struct {
		Name string `json:"name"`
	} `json:"designer"`
	PatternAuthor *struct {
		Name string `json:"name"`
	} `json:"pattern_author"`
	Craft *struct {
		Name string `json:"name"`
	} `json:"craft"`
	PatternCategories []struct {
		Name string `json:"name"`
	} `json:"pattern_categories"`
	DifficultyAverage *float64 `json:"difficulty_average"`
	Yardage           *float64 `json:"yardage"`
	YardageMax        *float64 `json:"yardage_max"`
	Gauge             *float64 `json:"gauge"`
	GaugeDivisor      *int     `json:"gauge_divisor"`
	GaugePattern      string   `json:"gauge_pattern"`
	SizesAvailable    string   `json:"sizes_available"`
	NotesHTML         string   `json:"notes_html"`
	PatternType       *struct {
		Name string `json:"name"`
	} `json:"pattern_type"`
	Free         bool     `json:"free"`
	Price        *float64 `json:"price"`
	Currency     string   `json:"currency"`
	Downloadable bool     `json:"downloadable"`
	Photos       []struct {
		SmallURL     string `json:"small_url"`
		MediumURL    string `json:"medium_url"`
		ThumbnailURL string `json:"thumbnail_url"`
	} `json:"photos"`
}

// LookupPattern resolves a public pattern URL to importable metadata.
func (c *RavelryClient) LookupPattern(ctx context.Context, patternURL string) (*PatternImport, error) {
	if !c.Configured() {
		return nil, ErrCatalogNotConfigured
	}

	match := patternSlugRe.FindStringSubmatch(patternURL)
	if match == nil {
		return nil, ErrInvalidPatternURL
	}
	slug := match[1]

	patternID, err := c.searchPatternID(ctx, slug)
	if err != nil {
		return nil, err
	}

	pattern, err := c.fetchPattern(ctx, patternID)
	if err != nil {
		return nil, err
	}

	imported := &PatternImport{
		Name:      pattern.Name,
		Designer:  pattern.designerName(),
		SourceURL: patternURL,
		Metadata:  pattern.metadata(),
	}

	log.Info().
		Int("ravelryID", pattern.ID).
		Str("name", pattern.Name).
		Msg("Imported pattern from Ravelry")

	return imported, nil
}

// searchPatternID finds the pattern id for a slug via the search endpoint.
func (c *RavelryClient) searchPatternID(ctx context.Context, slug string) (int, error) {
	searchURL := fmt.Sprintf("%s/patterns/search.json?query=%s&page_size=1", c.baseURL, url.QueryEscape(slug))

	var searchResp ravelrySearchResponse
	if err := c.getJSON(ctx, searchURL, &searchResp); err != nil {
		return 0, err
	}
	if len(searchResp.Patterns) == 0 {
		return 0, ErrPatternNotFound
	}
	return searchResp.Patterns[0].ID, nil
}

// fetchPattern loads the full pattern record by id.
func (c *RavelryClient) fetchPattern(ctx context.Context, patternID int) (*ravelryPattern, error) {
	fetchURL := fmt.Sprintf("%s/patterns/%d.json", c.baseURL, patternID)

	var patternResp ravelryPatternResponse
	if err := c.getJSON(ctx, fetchURL, &patternResp); err != nil {
		return nil, err
	}
	if patternResp.Pattern == nil {
		return nil, ErrPatternNotFound
	}
	return patternResp.Pattern, nil
}

func (c *RavelryClient) getJSON(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create Ravelry API request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Ravelry API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Ravelry API response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrBadCredentials
	case resp.StatusCode == http.StatusNotFound:
		return ErrPatternNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("Ravelry API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to parse Ravelry API response: %w", err)
	}
	return nil
}

func (p *ravelryPattern) designerName() string {
	if p.Designer != nil && p.Designer.Name != "" {
		return p.Designer.Name
	}
	if p.PatternAuthor != nil {
		return p.PatternAuthor.Name
	}
	return ""
}

// metadata flattens the catalog record into the opaque blob the pattern row
// stores. The backend never re-derives or validates these sub-fields.
func (p *ravelryPattern) metadata() datatypes.JSONMap {
	photos := make([]interface{}, 0, len(p.Photos))
	for _, photo := range p.Photos {
		photos = append(photos, map[string]interface{}{
			"small_url":     photo.SmallURL,
			"medium_url":    photo.MediumURL,
			"thumbnail_url": photo.ThumbnailURL,
		})
	}

	categories := make([]interface{}, 0, len(p.PatternCategories))
	for _, cat := range p.PatternCategories {
		categories = append(categories, cat.Name)
	}

	meta := datatypes.JSONMap{
		"ravelry_id":      p.ID,
		"permalink":       p.Permalink,
		"categories":      categories,
		"difficulty":      p.DifficultyAverage,
		"yardage":         p.Yardage,
		"yardage_max":     p.YardageMax,
		"gauge":           p.Gauge,
		"gauge_divisor":   p.GaugeDivisor,
		"gauge_pattern":   p.GaugePattern,
		"sizes_available": p.SizesAvailable,
		"notes":           p.NotesHTML,
		"free":            p.Free,
		"price":           p.Price,
		"currency":        p.Currency,
		"downloadable":    p.Downloadable,
		"photos":          photos,
	}
	if p.Craft != nil {
		meta["craft"] = p.Craft.Name
	}
	if p.PatternType != nil {
		meta["pattern_type"] = p.PatternType.Name
	}
	return meta
}
