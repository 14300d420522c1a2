package intro

import (
	"net/http"

	"github.com/stoplaliga/stoplaliga.com/internal/services/web/content"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/publichandler"
	webtemplates "github.com/stoplaliga/stoplaliga.com/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	library *content.Library
}

func newHandlers(base publichandler.Base, library *content.Library) handlers {
	return handlers{Base: base, library: library}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := h.PageContext(r)
	intro := h.library.Localize(page.Locale).Intro
	h.WritePage(w, r, intro.Title, webtemplates.IntroPage(page, intro))
}
