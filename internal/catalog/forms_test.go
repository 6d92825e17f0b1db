package catalog

import (
	"testing"
	"time"

	"heritageloom/internal/domain/entity"
	"heritageloom/internal/validation"
	"heritageloom/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFormDefaultsToInStock(t *testing.T) {
	form := NewProductForm()
	assert.Equal(t, entity.StockIn, form.StockStatus)
}

func TestProductFieldsAlwaysCarryFullColumnSet(t *testing.T) {
	form := NewProductForm()
	form.Title = "Rug A"
	form.RefNumber = "R-1"
	form.ProductType = "Carpet"

	fields := form.Fields()
	// empty optionals are sent too; the backend expects every column
	for _, key := range []string{
		"title", "ref_number", "product_type", "price_text", "description",
		"size_feet", "size_cms", "material", "colour", "stock_status",
	} {
		_, ok := fields[key]
		assert.True(t, ok, key)
	}
	assert.Equal(t, "Rug A", fields.Get("title"))
	assert.Equal(t, "", fields.Get("material"))
}

func TestBlogFormDefaults(t *testing.T) {
	form := NewBlogForm()
	assert.Equal(t, entity.BlogDraft, form.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), form.PostDate)
}

func TestRequiredFieldValidation(t *testing.T) {
	v := validation.New()

	err := v.First(v.Struct(ProductForm{RefNumber: "R-1", ProductType: "Carpet"}))
	require.Error(t, err)
	assert.Equal(t, "title", errors.FieldOf(err))

	err = v.First(v.Struct(BlogForm{Title: "X"}))
	require.Error(t, err)
	assert.Equal(t, "content", errors.FieldOf(err))

	err = v.First(v.Struct(ServiceForm{Title: "Wash", Type: "rug", LinkTo: "/x"}))
	require.Error(t, err)
	assert.Equal(t, "type", errors.FieldOf(err))

	assert.NoError(t, v.First(v.Struct(ServiceForm{Title: "Wash", Type: "carpet", LinkTo: "/x"})))
}

func TestEndpointPathsMatchBackendRoutes(t *testing.T) {
	products := Products()
	assert.Equal(t, "/products", products.ListPath)
	assert.Equal(t, "/product/7", products.ItemPath(7))

	blogs := Blogs()
	assert.True(t, blogs.Paginated)
	assert.Equal(t, "/blog/7", blogs.ItemPath(7))

	services := Services()
	assert.Equal(t, "/services/create", services.CreatePath)
	assert.Equal(t, "/services/update/7", services.UpdatePath(7))
	assert.Equal(t, "/services/delete/7", services.DeletePath(7))
}

func TestTypeFilter(t *testing.T) {
	assert.Equal(t, "Carpet", TypeFilter("Carpet").Get("type"))
	assert.Empty(t, TypeFilter(""))
}
