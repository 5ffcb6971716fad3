package ports

import "travel-order-service/internal/domain"

// Port: serializes a composed Document into a portable paginated format.
// The composed Document is rendered verbatim; renderers add no content.
type DocumentRenderer interface {
	Render(doc *domain.Document) ([]byte, error)
}
