package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/famomatic/clipper/client"
	"github.com/famomatic/clipper/internal/types"
)

// ClipService is the slice of the pipeline client the HTTP layer consumes.
type ClipService interface {
	Preview(ctx context.Context, url string, creds types.Credentials) (*client.PreviewResult, error)
	Download(ctx context.Context, url string, creds types.Credentials) (*client.ClipResult, error)
	Clip(ctx context.Context, url string, startSeconds, endSeconds float64, creds types.Credentials) (*client.ClipResult, error)
}

type handler struct {
	clip ClipService
	log  zerolog.Logger
}

func newHandler(clip ClipService, log zerolog.Logger) *handler {
	return &handler{clip: clip, log: log}
}

// PreviewRequest asks for the metadata of one video. Cookies are an opaque
// credential string forwarded to the provider, never logged or inspected.
type PreviewRequest struct {
	URL     string `json:"url"`
	Cookies string `json:"cookies,omitempty"`
}

// PreviewResponse mirrors the fields the range picker needs.
type PreviewResponse struct {
	Duration    int64  `json:"duration"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// DownloadRequest fetches the full video, or a clip when both start and
// end are present.
type DownloadRequest struct {
	URL     string   `json:"url"`
	Start   *float64 `json:"startTime,omitempty"`
	End     *float64 `json:"endTime,omitempty"`
	Cookies string   `json:"cookies,omitempty"`
}

func (h *handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, client.ErrInvalidInput)
		return
	}

	result, err := h.clip.Preview(c.Request.Context(), req.URL, types.Credentials(req.Cookies))
	if err != nil {
		h.log.Warn().Err(err).Msg("preview failed")
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PreviewResponse{
		Duration:    result.DurationSeconds,
		Title:       result.Title,
		Description: result.Description,
	})
}

func (h *handler) Download(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, client.ErrInvalidInput)
		return
	}
	creds := types.Credentials(req.Cookies)

	var result *client.ClipResult
	var err error
	if req.Start != nil || req.End != nil {
		if req.Start == nil || req.End == nil {
			writeError(c, client.ErrInvalidInput)
			return
		}
		result, err = h.clip.Clip(c.Request.Context(), req.URL, *req.Start, *req.End, creds)
	} else {
		result, err = h.clip.Download(c.Request.Context(), req.URL, creds)
	}
	if err != nil {
		h.log.Warn().Err(err).Msg("download failed")
		writeError(c, err)
		return
	}

	attachment := fmt.Sprintf("video_%s.%s", result.VideoID, result.Container)
	c.Header("Content-Disposition", `attachment; filename="`+attachment+`"`)
	c.Data(http.StatusOK, result.MimeType, result.Data)
}
