package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"playlist-grid/domain/dto"
	"playlist-grid/domain/model"
	"playlist-grid/infrastructure/logger"
	"playlist-grid/interfaces/shortcode"
	"playlist-grid/interfaces/view"
	"playlist-grid/usecase"

	"github.com/gin-gonic/gin"
)

// ShortcodeTag is the tag authors place in page content
const ShortcodeTag = "youtube_playlist_grid"

const mimeHTML = "text/html; charset=utf-8"

// IPageRenderer renders full documents around shortcode output
type IPageRenderer interface {
	RenderPage(w io.Writer, title string, body string, customCSS string) error
	RenderSettings(w io.Writer, data view.SettingsFormView) error
}

type IPlaylistHandler interface {
	Page(ctx *gin.Context)
	Fragment(ctx *gin.Context)
	RefreshCache(ctx *gin.Context)
}

// PageContent is the document served at "/"
type PageContent struct {
	Title   string
	Content string
}

type PlaylistHandler struct {
	playlistUseCase usecase.IPlaylistUseCase
	settingsUseCase usecase.ISettingsUseCase
	registry        *shortcode.Registry
	renderer        IPageRenderer
	page            PageContent
}

func NewPlaylistHandler(
	playlistUseCase usecase.IPlaylistUseCase,
	settingsUseCase usecase.ISettingsUseCase,
	registry *shortcode.Registry,
	renderer IPageRenderer,
	page PageContent,
) IPlaylistHandler {
	return &PlaylistHandler{
		playlistUseCase: playlistUseCase,
		settingsUseCase: settingsUseCase,
		registry:        registry,
		renderer:        renderer,
		page:            page,
	}
}

// RegisterPlaylistShortcode binds ShortcodeTag to the playlist render path.
// The optional layout attribute overrides the configured layout.
func RegisterPlaylistShortcode(registry *shortcode.Registry, playlistUseCase usecase.IPlaylistUseCase) {
	registry.Add(ShortcodeTag, func(ctx context.Context, attrs map[string]string) string {
		return playlistUseCase.RenderGrid(ctx, attrs["layout"])
	})
}

// Page handles GET /
func (h *PlaylistHandler) Page(ctx *gin.Context) {
	settings, _ := h.settingsUseCase.GetSettings(ctx.Request.Context())
	body := h.registry.Expand(ctx.Request.Context(), h.page.Content)

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, h.page.Title, body, settings.CustomCSS); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while rendering page")
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	ctx.Data(http.StatusOK, mimeHTML, buf.Bytes())
}

// Fragment handles GET /shortcode/youtube_playlist_grid
func (h *PlaylistHandler) Fragment(ctx *gin.Context) {
	out := h.playlistUseCase.RenderGrid(ctx.Request.Context(), ctx.Query("layout"))
	ctx.Data(http.StatusOK, mimeHTML, []byte(out))
}

// RefreshCache handles POST /admin/cache/refresh
func (h *PlaylistHandler) RefreshCache(ctx *gin.Context) {
	res, err := h.playlistUseCase.RefreshCache(ctx.Request.Context())
	wantsHTML := ctx.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEHTML

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrConfigurationMissing) {
			status = http.StatusConflict
		}
		logger.GetLogger().WithField("error", err).Warn("Cache refresh failed")
		if wantsHTML {
			ctx.Redirect(http.StatusSeeOther, "/admin/settings?notice="+noticeRefreshFailed)
			return
		}
		ctx.JSON(status, dto.Res{ResponseCode: "ERR", ResponseMessage: err.Error(), Data: res})
		return
	}

	if wantsHTML {
		ctx.Redirect(http.StatusSeeOther, "/admin/settings?notice="+noticeRefreshed)
		return
	}
	ctx.JSON(http.StatusOK, dto.Res{ResponseCode: "00", ResponseMessage: "Cache cleared", Data: res})
}
