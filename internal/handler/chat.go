package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arohealth/healthbot/internal/auth"
	"github.com/arohealth/healthbot/internal/domain"
)

const maxUploadBytes = 20 << 20

func chatID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
	return id, err == nil && id > 0
}

func chatJSON(c *domain.Chat) map[string]any {
	return map[string]any{
		"id":         c.ID,
		"title":      c.Title,
		"share_id":   c.ShareID,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	}
}

func (h *Handler) NewChat(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	chat, err := h.chats.Create(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, chatJSON(chat))
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())

	chats, err := h.chats.List(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]map[string]any, 0, len(chats))
	for i := range chats {
		out = append(out, chatJSON(&chats[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ChatMessages(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	msgs, err := h.chats.Messages(r.Context(), user.ID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]map[string]any, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, map[string]any{
			"id":         m.ID,
			"role":       m.Role,
			"content":    m.Content,
			"created_at": m.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) RenameChat(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	title, err := h.chats.Rename(r.Context(), user.ID, id, req.Title)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": title})
}

func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	if err := h.chats.Delete(r.Context(), user.ID, id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ShareChat(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	shareID, err := h.chats.Share(r.Context(), user.ID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"share_id": shareID})
}

func (h *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	doc, err := h.documents.Upload(r.Context(), user.ID, id, header.Filename, file)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       doc.ID,
		"filename": doc.Filename,
	})
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFrom(r.Context())
	id, ok := chatID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid chat id")
		return
	}

	var req struct {
		Message  string `json:"message"`
		Language string `json:"language"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.chats.Send(r.Context(), user.ID, id, req.Message, req.Language)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"reply":      res.Reply,
		"title":      res.Title,
		"updated_at": res.UpdatedAt,
	})
}
