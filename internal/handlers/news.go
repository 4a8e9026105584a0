package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"transparency/internal/apierror"
	"transparency/internal/catalog"
	"transparency/internal/query"
	"transparency/models"
)

const relatedArticles = 3

type articleResponse struct {
	Article models.NewsArticle   `json:"article"`
	Related []models.NewsArticle `json:"related"`
}

func (h *Handler) GetNewsHandler(w http.ResponseWriter, r *http.Request) {
	listHandler(h, catalog.NewsSchema, h.Catalog.News)(w, r)
}

func (h *Handler) GetNewsFacetsHandler(w http.ResponseWriter, r *http.Request) {
	facetsHandler(h, catalog.NewsSchema, h.Catalog.News)(w, r)
}

// GetArticleHandler returns an article plus the latest others from the same category.
func (h *Handler) GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "articleId")
	article, ok := h.Catalog.Article(id)
	if !ok {
		apierror.Write(w, apierror.NotFound("article", id))
		return
	}

	res := catalog.NewsSchema.RunLenient(h.Catalog.News(), query.Params{
		Filters: map[string]string{"category": article.Category},
	})
	related := make([]models.NewsArticle, 0, relatedArticles)
	for _, other := range res.Items {
		if other.ID == article.ID {
			continue
		}
		if len(related) == relatedArticles {
			break
		}
		related = append(related, other)
	}

	writeJSON(w, http.StatusOK, articleResponse{Article: article, Related: related})
}
