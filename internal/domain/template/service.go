package template

import "context"

type TemplateService interface {
	List(ctx context.Context) ([]Response, error)
	Create(ctx context.Context, req CreateTemplateRequest, createdBy int64) (Response, error)
	// Delete always returns ErrDeleteNotSupported: no deletion contract
	// has been defined for stored templates.
	Delete(ctx context.Context, id int64) error
}
