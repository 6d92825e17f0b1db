package usecase

import (
	"context"
	"net/url"
	"strconv"

	"heritageloom/internal/catalog"
	"heritageloom/internal/domain/entity"
	"heritageloom/internal/rest"
	"heritageloom/internal/validation"
	"heritageloom/pkg/errors"
	"heritageloom/pkg/logger"
)

// ContentUseCase is the admin gateway's write path to the storefront
// backend: validate the typed form, then drive the rest client. Reads pass
// through with no extra policy.
type ContentUseCase struct {
	products  *rest.Client[entity.Product]
	blogs     *rest.Client[entity.BlogPost]
	services  *rest.Client[entity.Service]
	inquiries *rest.Client[entity.Inquiry]
	validator *validation.Validator
}

func NewContentUseCase(transport *rest.Transport, validator *validation.Validator) *ContentUseCase {
	return &ContentUseCase{
		products:  rest.NewClient(transport, catalog.Products()),
		blogs:     rest.NewClient(transport, catalog.Blogs()),
		services:  rest.NewClient(transport, catalog.Services()),
		inquiries: rest.NewClient(transport, catalog.Inquiries()),
		validator: validator,
	}
}

func (uc *ContentUseCase) ListProducts(ctx context.Context, productType string) ([]entity.Product, error) {
	result, err := uc.products.List(ctx, catalog.TypeFilter(productType))
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (uc *ContentUseCase) GetProduct(ctx context.Context, id entity.ID) (entity.Product, error) {
	return uc.products.Get(ctx, id)
}

func (uc *ContentUseCase) CreateProduct(ctx context.Context, form catalog.ProductForm, images []rest.File) (entity.Product, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.Product{}, err
	}
	return uc.products.Create(ctx, form.Fields(), images)
}

func (uc *ContentUseCase) UpdateProduct(ctx context.Context, id entity.ID, form catalog.ProductForm, images []rest.File) (entity.Product, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.Product{}, err
	}
	return uc.products.Update(ctx, id, form.Fields(), images)
}

func (uc *ContentUseCase) DeleteProduct(ctx context.Context, id entity.ID) error {
	return alreadyGoneOK(uc.products.Remove(ctx, id), "product", id)
}

func (uc *ContentUseCase) ListBlogs(ctx context.Context, page int) ([]entity.BlogPost, *entity.PageInfo, error) {
	result, err := uc.blogs.List(ctx, pageQuery(page))
	if err != nil {
		return nil, nil, err
	}
	return result.Items, result.Page, nil
}

func (uc *ContentUseCase) GetBlog(ctx context.Context, id entity.ID) (entity.BlogPost, error) {
	return uc.blogs.Get(ctx, id)
}

func (uc *ContentUseCase) CreateBlog(ctx context.Context, form catalog.BlogForm, featured []rest.File) (entity.BlogPost, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.BlogPost{}, err
	}
	return uc.blogs.Create(ctx, form.Fields(), featured)
}

// UpdateBlog never sends the slug: it is immutable once the post exists.
func (uc *ContentUseCase) UpdateBlog(ctx context.Context, id entity.ID, form catalog.BlogForm, featured []rest.File) (entity.BlogPost, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.BlogPost{}, err
	}
	fields := form.Fields()
	fields.Del("slug")
	return uc.blogs.Update(ctx, id, fields, featured)
}

func (uc *ContentUseCase) DeleteBlog(ctx context.Context, id entity.ID) error {
	return alreadyGoneOK(uc.blogs.Remove(ctx, id), "blog", id)
}

// SetBlogStatus runs the narrow publish/unpublish transition instead of a
// full update.
func (uc *ContentUseCase) SetBlogStatus(ctx context.Context, id entity.ID, publish bool) (entity.BlogPost, error) {
	action := catalog.ActionUnpublish
	if publish {
		action = catalog.ActionPublish
	}
	return uc.blogs.Action(ctx, id, action)
}

func (uc *ContentUseCase) ListServices(ctx context.Context, serviceType string) ([]entity.Service, error) {
	result, err := uc.services.List(ctx, catalog.TypeFilter(serviceType))
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (uc *ContentUseCase) CreateService(ctx context.Context, form catalog.ServiceForm, image []rest.File) (entity.Service, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.Service{}, err
	}
	return uc.services.Create(ctx, form.Fields(), image)
}

func (uc *ContentUseCase) UpdateService(ctx context.Context, id entity.ID, form catalog.ServiceForm, image []rest.File) (entity.Service, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.Service{}, err
	}
	return uc.services.Update(ctx, id, form.Fields(), image)
}

func (uc *ContentUseCase) DeleteService(ctx context.Context, id entity.ID) error {
	return alreadyGoneOK(uc.services.Remove(ctx, id), "service", id)
}

// SubmitInquiry forwards a sell/exchange inquiry, capped at four photos.
func (uc *ContentUseCase) SubmitInquiry(ctx context.Context, form catalog.InquiryForm, photos []rest.File) (entity.Inquiry, error) {
	if err := uc.validator.First(uc.validator.Struct(form)); err != nil {
		return entity.Inquiry{}, err
	}
	if len(photos) > entity.MaxInquiryPhotos {
		return entity.Inquiry{}, errors.Validation("photos", "at most 4 photos allowed")
	}
	return uc.inquiries.Create(ctx, form.Fields(), photos)
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}

// alreadyGoneOK swallows NOT_FOUND on delete: the record is absent either
// way, and the caller's next refetch proves it.
func alreadyGoneOK(err error, name string, id entity.ID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, "NOT_FOUND") {
		logger.Info("%s %s already deleted", name, id)
		return nil
	}
	return err
}
