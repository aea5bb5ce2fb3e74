package chi

import (
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/category"
	"github.com/shelfwise/shelfwise/internal/domain/recommend/page"
)

// Error response codes.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeInternalError = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type itemResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Category           string `json:"category"`
	ClassificationCode string `json:"classification_code,omitempty"`
	CutterCode         string `json:"cutter_code,omitempty"`
	Genres             string `json:"genres,omitempty"`
	TopicalTerms       string `json:"topical_terms,omitempty"`
	AuthorName         string `json:"author_name,omitempty"`
}

type pageResponse struct {
	Items        []itemResponse `json:"items"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	TotalItems   int            `json:"total_items"`
	TotalPages   int            `json:"total_pages"`
	Personalized bool           `json:"personalized"`
}

type upsertItemRequest struct {
	Title              string `json:"title"`
	Category           string `json:"category"`
	ClassificationCode string `json:"classification_code"`
	CutterCode         string `json:"cutter_code"`
	Genres             string `json:"genres"`
	TopicalTerms       string `json:"topical_terms"`
	AuthorName         string `json:"author_name"`
	Withdrawn          bool   `json:"withdrawn"`
}

type batchItemEntry struct {
	ID string `json:"id"`
	upsertItemRequest
}

type batchItemsRequest struct {
	Items []batchItemEntry `json:"items"`
}

type interactionRequest struct {
	ItemID       string `json:"item_id"`
	Borrowed     bool   `json:"borrowed"`
	BorrowCount  int    `json:"borrow_count"`
	Reserved     bool   `json:"reserved"`
	ReserveCount int    `json:"reserve_count"`
	Favorite     bool   `json:"favorite"`
	Rating       int    `json:"rating"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func itemToResponse(item domain.CatalogItem) itemResponse {
	return itemResponse{
		ID:                 item.ID,
		Title:              item.Title,
		Category:           string(item.Category),
		ClassificationCode: item.ClassificationCode,
		CutterCode:         item.CutterCode,
		Genres:             item.Genres,
		TopicalTerms:       item.TopicalTerms,
		AuthorName:         item.AuthorName,
	}
}

func pageToResponse(p page.Page) pageResponse {
	items := make([]itemResponse, len(p.Items()))
	for i, item := range p.Items() {
		items[i] = itemToResponse(item)
	}
	return pageResponse{
		Items:        items,
		Page:         p.PageIndex(),
		PageSize:     p.PageSize(),
		TotalItems:   p.TotalItems(),
		TotalPages:   p.TotalPages(),
		Personalized: p.Personalized(),
	}
}

func itemFromUpsert(id string, req upsertItemRequest) domain.CatalogItem {
	return domain.CatalogItem{
		ID:                 id,
		Title:              req.Title,
		Category:           category.Parse(req.Category),
		ClassificationCode: req.ClassificationCode,
		CutterCode:         req.CutterCode,
		Genres:             req.Genres,
		TopicalTerms:       req.TopicalTerms,
		AuthorName:         req.AuthorName,
		Withdrawn:          req.Withdrawn,
	}
}

func interactionFromRequest(req interactionRequest) domain.Interaction {
	return domain.Interaction{
		ItemID:       req.ItemID,
		Borrowed:     req.Borrowed,
		BorrowCount:  req.BorrowCount,
		Reserved:     req.Reserved,
		ReserveCount: req.ReserveCount,
		Favorite:     req.Favorite,
		Rating:       req.Rating,
	}
}
