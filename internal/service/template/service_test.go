package template

import (
	"context"
	"testing"

	"github.com/campushr/letters-backend-go/internal/domain/template"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTemplateRepo struct{ mock.Mock }

func (m *mockTemplateRepo) List(ctx context.Context) ([]template.LetterTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]template.LetterTemplate), args.Error(1)
}

func (m *mockTemplateRepo) Create(ctx context.Context, newTemplate template.LetterTemplate) (template.LetterTemplate, error) {
	args := m.Called(ctx, newTemplate)
	return args.Get(0).(template.LetterTemplate), args.Error(1)
}

func TestCreate_ValidTemplate(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(tpl template.LetterTemplate) bool {
		return tpl.LetterType == "offer_letter" &&
			tpl.TemplateName == "Standard Offer" &&
			tpl.CreatedBy != nil && *tpl.CreatedBy == 1
	})).Return(template.LetterTemplate{ID: 1, LetterType: "offer_letter", TemplateName: "Standard Offer"}, nil)

	resp, err := svc.Create(context.Background(), template.CreateTemplateRequest{
		LetterType:   "offer_letter",
		TemplateName: "Standard Offer",
		TemplatePath: "templates/offer.html",
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestCreate_UnknownLetterType(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)

	_, err := svc.Create(context.Background(), template.CreateTemplateRequest{
		LetterType:   "promotion_letter",
		TemplateName: "Promotion",
		TemplatePath: "templates/promotion.html",
	}, 1)

	var valErrs validator.ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelete_AlwaysUnsupported(t *testing.T) {
	svc := NewTemplateService(new(mockTemplateRepo))

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, template.ErrDeleteNotSupported)
}

func TestList(t *testing.T) {
	repo := new(mockTemplateRepo)
	svc := NewTemplateService(repo)

	repo.On("List", mock.Anything).Return([]template.LetterTemplate{
		{ID: 1, LetterType: "offer_letter", TemplateName: "Standard Offer"},
		{ID: 2, LetterType: "relieving_letter", TemplateName: "Standard Relieving"},
	}, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
