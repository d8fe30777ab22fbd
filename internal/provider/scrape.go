package provider

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/famomatic/clipper/internal/innertube"
	"github.com/famomatic/clipper/internal/types"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// scrapeBasicMetadata extracts title, description and duration from the
// watch page microdata. Preview-path fallback only; it never yields formats.
func (p *InnertubeProvider) scrapeBasicMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error) {
	base := p.scrapeURL
	if base == "" {
		base = "https://" + innertube.WebClient.Host
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/watch?v="+videoID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMetadataUnavailable, err)
	}
	req.Header.Set("User-Agent", innertube.WebClient.UserAgent)
	if creds.Present() {
		req.Header.Set("Cookie", string(creds))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: watch page status %d", types.ErrMetadataUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse watch page: %v", types.ErrMetadataUnavailable, err)
	}

	duration, ok := parseISODuration(metaContent(doc, `meta[itemprop="duration"]`))
	if !ok {
		return nil, fmt.Errorf("%w: watch page carries no duration", types.ErrMetadataUnavailable)
	}

	title := metaContent(doc, `meta[itemprop="name"]`)
	if title == "" {
		title = metaContent(doc, `meta[property="og:title"]`)
	}
	description := metaContent(doc, `meta[itemprop="description"]`)
	if description == "" {
		description = metaContent(doc, `meta[property="og:description"]`)
	}

	return &types.Metadata{
		ID:          videoID,
		Title:       title,
		Description: description,
		Duration:    duration,
	}, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return content
}

// parseISODuration reads the PT#H#M#S shape used by watch-page microdata.
func parseISODuration(raw string) (int64, bool) {
	m := isoDurationPattern.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	var total int64
	for i, mult := range []int64{3600, 60, 1} {
		if m[i+1] == "" {
			continue
		}
		v, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return 0, false
		}
		total += v * mult
	}
	return total, true
}
