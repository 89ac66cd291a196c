package http

import (
	"bytes"
	"net/http"

	"playlist-grid/domain/dto"
	"playlist-grid/domain/model"
	"playlist-grid/infrastructure/logger"
	"playlist-grid/interfaces/view"
	"playlist-grid/usecase"

	"github.com/gin-gonic/gin"
)

const (
	noticeSaved         = "saved"
	noticeRefreshed     = "refreshed"
	noticeRefreshFailed = "refresh-failed"
)

var notices = map[string]string{
	noticeSaved:         "Settings saved.",
	noticeRefreshed:     "Cached videos cleared. The next page view fetches a fresh copy.",
	noticeRefreshFailed: "Cached videos could not be cleared. Check the API key and playlist settings.",
}

type ISettingsHandler interface {
	Form(ctx *gin.Context)
	Save(ctx *gin.Context)
}

type SettingsHandler struct {
	settingsUseCase usecase.ISettingsUseCase
	renderer        IPageRenderer
}

func NewSettingsHandler(settingsUseCase usecase.ISettingsUseCase, renderer IPageRenderer) ISettingsHandler {
	return &SettingsHandler{settingsUseCase: settingsUseCase, renderer: renderer}
}

// Form handles GET /admin/settings. JSON clients get the settings with the API key masked.
func (h *SettingsHandler) Form(ctx *gin.Context) {
	settings, err := h.settingsUseCase.GetSettings(ctx.Request.Context())

	if ctx.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "ERR", ResponseMessage: err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, dto.Res{ResponseCode: "00", ResponseMessage: "OK", Data: usecase.ToSettingsResponse(settings)})
		return
	}

	data := view.SettingsFormView{Settings: settings, Notice: notices[ctx.Query("notice")]}
	if err != nil {
		data.Error = "Stored settings could not be loaded; showing configured defaults."
	}
	h.renderForm(ctx, http.StatusOK, data)
}

// Save handles POST /admin/settings from the form or as JSON
func (h *SettingsHandler) Save(ctx *gin.Context) {
	wantsJSON := ctx.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON ||
		ctx.ContentType() == gin.MIMEJSON

	var req dto.SettingsFormRequest
	if err := ctx.ShouldBind(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		if wantsJSON {
			ctx.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
			return
		}
		h.renderForm(ctx, http.StatusBadRequest, view.SettingsFormView{
			Settings: submitted(req),
			Error:    "Number of videos must be between 1 and 50, and layout must be grid or masonry.",
		})
		return
	}

	settings, err := h.settingsUseCase.SaveSettings(ctx.Request.Context(), &req)
	if err != nil {
		if wantsJSON {
			ctx.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "ERR", ResponseMessage: err.Error()})
			return
		}
		h.renderForm(ctx, http.StatusInternalServerError, view.SettingsFormView{Settings: submitted(req), Error: err.Error()})
		return
	}

	if wantsJSON {
		ctx.JSON(http.StatusOK, dto.Res{ResponseCode: "00", ResponseMessage: "Settings saved", Data: usecase.ToSettingsResponse(settings)})
		return
	}
	h.renderForm(ctx, http.StatusOK, view.SettingsFormView{Settings: settings, Notice: notices[noticeSaved]})
}

func (h *SettingsHandler) renderForm(ctx *gin.Context, status int, data view.SettingsFormView) {
	var buf bytes.Buffer
	if err := h.renderer.RenderSettings(&buf, data); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while rendering settings form")
		ctx.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	ctx.Data(status, mimeHTML, buf.Bytes())
}

func submitted(req dto.SettingsFormRequest) model.Settings {
	return model.Settings{
		APIKey:     req.APIKey,
		PlaylistID: req.PlaylistID,
		MaxResults: req.MaxResults,
		CustomCSS:  req.CustomCSS,
		Layout:     model.Layout(req.Layout),
	}
}
