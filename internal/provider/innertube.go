package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/famomatic/clipper/internal/formats"
	"github.com/famomatic/clipper/internal/innertube"
	"github.com/famomatic/clipper/internal/playerjs"
	"github.com/famomatic/clipper/internal/types"
)

// InnertubeProvider fetches metadata from the platform's player endpoint.
type InnertubeProvider struct {
	client    *http.Client
	resolver  playerjs.Resolver
	baseURL   string // test override, defaults to https://<profile.Host>
	scrapeURL string // test override for the watch-page fallback
}

// NewInnertubeProvider returns a network-backed provider.
func NewInnertubeProvider(client *http.Client) *InnertubeProvider {
	return &InnertubeProvider{
		client:   client,
		resolver: playerjs.NewResolver(client, playerjs.NewMemoryCache(), playerjs.ResolverConfig{}),
	}
}

// profileFor picks the Innertube client identity for a request. Cookie
// credentials only take effect on profiles that honor them.
func profileFor(creds types.Credentials) innertube.ClientProfile {
	if creds.Present() {
		return innertube.WebClient
	}
	return innertube.AndroidClient
}

func (p *InnertubeProvider) GetBasicMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error) {
	resp, err := p.fetchPlayerResponse(ctx, videoID, creds)
	if err != nil {
		// The watch page often still renders microdata when the player
		// endpoint is unhappy; scrape it for the preview path.
		if meta, scrapeErr := p.scrapeBasicMetadata(ctx, videoID, creds); scrapeErr == nil {
			return meta, nil
		}
		return nil, err
	}
	return metadataFromResponse(resp, false), nil
}

func (p *InnertubeProvider) GetMetadata(ctx context.Context, videoID string, creds types.Credentials) (*types.Metadata, error) {
	resp, err := p.fetchPlayerResponse(ctx, videoID, creds)
	if err != nil {
		return nil, err
	}
	return metadataFromResponse(resp, true), nil
}

func (p *InnertubeProvider) fetchPlayerResponse(ctx context.Context, videoID string, creds types.Credentials) (*innertube.PlayerResponse, error) {
	profile := profileFor(creds)

	body, err := json.Marshal(innertube.NewPlayerRequest(profile, videoID))
	if err != nil {
		return nil, fmt.Errorf("%w: encode player request: %v", types.ErrMetadataUnavailable, err)
	}

	endpoint := p.playerEndpoint(profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMetadataUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", profile.UserAgent)
	req.Header.Set("X-Youtube-Client-Name", strconv.Itoa(profile.ContextNameID))
	req.Header.Set("X-Youtube-Client-Version", profile.Version)
	if creds.Present() && profile.SupportsCookies {
		req.Header.Set("Cookie", string(creds))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: player endpoint status %d", types.ErrMetadataUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrMetadataUnavailable, err)
	}

	var playerResp innertube.PlayerResponse
	if err := json.Unmarshal(raw, &playerResp); err != nil {
		return nil, fmt.Errorf("%w: decode player response: %v", types.ErrMetadataUnavailable, err)
	}
	if !playerResp.PlayabilityStatus.IsOK() {
		// Unplayable, private and deleted videos all surface the same way.
		return nil, fmt.Errorf("%w: playability %s", types.ErrMetadataUnavailable, playerResp.PlayabilityStatus.Status)
	}
	return &playerResp, nil
}

func (p *InnertubeProvider) playerEndpoint(profile innertube.ClientProfile) string {
	base := p.baseURL
	if base == "" {
		base = "https://" + profile.Host
	}
	return base + "/youtubei/v1/player?key=" + url.QueryEscape(profile.APIKey) + "&prettyPrint=false"
}

func metadataFromResponse(resp *innertube.PlayerResponse, withFormats bool) *types.Metadata {
	meta := &types.Metadata{
		ID:    resp.VideoDetails.VideoID,
		Title: resp.VideoDetails.Title,
		Description: firstNonEmptyString(
			resp.VideoDetails.ShortDescription,
			resp.Microformat.PlayerMicroformatRenderer.Description.SimpleText,
		),
		Duration: parseInt64String(firstNonEmptyString(
			resp.VideoDetails.LengthSeconds,
			resp.Microformat.PlayerMicroformatRenderer.LengthSeconds,
		)),
	}
	if withFormats {
		meta.Formats = formats.Parse(resp)
	}
	return meta
}

// ResolveStreamURL produces the final downloadable URL for a format.
// Direct URLs pass through with the throttling parameter rewritten when
// possible; ciphered formats require a solved signature.
func (p *InnertubeProvider) ResolveStreamURL(ctx context.Context, videoID string, format types.FormatInfo, creds types.Credentials) (string, error) {
	if format.URL != "" {
		return p.rewriteThrottleParam(ctx, videoID, format.URL), nil
	}
	if format.SignatureCipher == "" {
		return "", types.ErrChallengeNotSolved
	}

	params, err := url.ParseQuery(format.SignatureCipher)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrChallengeNotSolved, err)
	}
	rawURL := params.Get("url")
	if rawURL == "" {
		return "", types.ErrChallengeNotSolved
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrChallengeNotSolved, err)
	}

	if s := params.Get("s"); s != "" {
		decipherer, err := p.loadDecipherer(ctx, videoID)
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrChallengeNotSolved, err)
		}
		decSig, err := decipherer.DecipherSignature(s)
		if err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrChallengeNotSolved, err)
		}
		sp := params.Get("sp")
		if sp == "" {
			sp = "signature"
		}
		q := u.Query()
		q.Set(sp, decSig)
		u.RawQuery = q.Encode()
	}

	return p.rewriteThrottleParam(ctx, videoID, u.String()), nil
}

// rewriteThrottleParam replaces the 'n' query parameter when the player JS
// can be resolved. On any failure the original URL is kept; the transfer
// may be throttled but still succeeds.
func (p *InnertubeProvider) rewriteThrottleParam(ctx context.Context, videoID, rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	n := q.Get("n")
	if n == "" {
		return rawURL
	}
	decipherer, err := p.loadDecipherer(ctx, videoID)
	if err != nil {
		return rawURL
	}
	decN, err := decipherer.DecipherN(n)
	if err != nil {
		return rawURL
	}
	q.Set("n", decN)
	u.RawQuery = q.Encode()
	return u.String()
}

func (p *InnertubeProvider) loadDecipherer(ctx context.Context, videoID string) (*playerjs.Decipherer, error) {
	playerURL, err := p.resolver.GetPlayerURL(ctx, videoID)
	if err != nil {
		return nil, err
	}
	js, err := p.resolver.GetPlayerJS(ctx, playerURL)
	if err != nil {
		return nil, err
	}
	return playerjs.NewDecipherer(js), nil
}

func firstNonEmptyString(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseInt64String(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
